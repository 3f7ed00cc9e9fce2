package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-manager-api/internal/application/ports"
	"task-manager-api/internal/application/services"
	"task-manager-api/internal/infrastructure/jwt"
	"task-manager-api/internal/interface/api/rest/dto/user"
	"task-manager-api/internal/interface/api/rest/middleware"
	"task-manager-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	authService ports.Auth
	guard       ports.AccountGuard
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	authService ports.Auth,
	guard ports.AccountGuard,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		authService: authService,
		guard:       guard,
		logger:      logger,
	}

	auth := middleware.AuthMiddleware(jwtService)

	r.POST(RouteSignUp, uc.SignUpHandler)
	r.POST(RouteSignIn, uc.SignInHandler)
	r.GET(RouteVerify, uc.VerifyHandler)
	r.PATCH(RouteChangePass, auth, uc.ChangePasswordHandler)
	r.PATCH(RouteUpdateProfile, auth, uc.UpdateProfileHandler)
	r.GET(RouteHardDelete, auth, uc.HardDeleteHandler)
	r.GET(RouteSoftDelete, auth, uc.SoftDeleteHandler)
	r.GET(RouteLogout, auth, uc.LogoutHandler)

	return uc
}

func (uc *UserController) SignUpHandler(c *gin.Context) {
	var req user.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgInvalidBody,
			"errors":  err.Error(),
		})
		return
	}
	if errs := validator.Struct(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgValidationFailed,
			"errors":  errs,
		})
		return
	}

	u, err := uc.userService.SignUp(c.Request.Context(), user.ToDomainUser(req), req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			c.JSON(http.StatusOK, gin.H{"message": MsgUserExists})
			return
		}
		serverError(c, uc.logger, "SignUp() error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": MsgUserCreated,
		"user":    user.ToResponseUser(*u),
	})
}

func (uc *UserController) SignInHandler(c *gin.Context) {
	var req user.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgInvalidBody,
			"errors":  err.Error(),
		})
		return
	}
	if errs := validator.Struct(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgValidationFailed,
			"errors":  errs,
		})
		return
	}

	u, err := uc.userService.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		serverError(c, uc.logger, "FindByEmail() error", err)
		return
	}
	if u == nil || u.Deleted {
		msg := MsgSignInBadAccount
		if u != nil {
			msg = MsgAccountDeleted
		}
		c.JSON(http.StatusForbidden, gin.H{"message": msg})
		return
	}
	if !u.Verified {
		c.JSON(http.StatusUnauthorized, gin.H{"message": MsgMustVerify})
		return
	}

	if err = uc.authService.CheckPassword(u, req.Password); err != nil {
		c.JSON(http.StatusNotAcceptable, gin.H{"message": MsgPasswordIncorrect})
		return
	}

	token, err := uc.authService.SessionToken(u)
	if err != nil {
		serverError(c, uc.logger, "SessionToken() error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": MsgSignedIn,
		"token":   token,
	})
}

// VerifyHandler trusts link possession: no token is required, anyone
// holding a valid id can flip the verified flag. Repeat calls are
// idempotent.
func (uc *UserController) VerifyHandler(c *gin.Context) {
	ok, id := validator.IsHexID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": MsgUserIDInvalid})
		return
	}

	u, err := uc.userService.Verify(c.Request.Context(), id)
	if err != nil {
		serverError(c, uc.logger, "Verify() error", err)
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": MsgUserIDInvalid})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     MsgVerified,
		"updatedUser": user.ToResponseUser(*u),
	})
}

func (uc *UserController) ChangePasswordHandler(c *gin.Context) {
	var req user.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgInvalidBody,
			"errors":  err.Error(),
		})
		return
	}
	if errs := validator.Struct(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgValidationFailed,
			"errors":  errs,
		})
		return
	}

	subjectID := c.GetString(middleware.CtxUserID)
	u, err := uc.guard.Check(c.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) || errors.Is(err, services.ErrAccountDeleted) {
			respondAccountError(c, uc.authService, subjectID, u, err, http.StatusForbidden, true)
			return
		}
		serverError(c, uc.logger, "AccountGuard.Check() error", err)
		return
	}

	uRet, err := uc.userService.ChangePassword(c.Request.Context(), u.ID, req.Password)
	if err != nil || uRet == nil {
		serverError(c, uc.logger, "ChangePassword() error", err)
		return
	}

	token, err := uc.authService.SessionToken(uRet)
	if err != nil {
		serverError(c, uc.logger, "SessionToken() error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  MsgPasswordUpdated,
		"newToken": token,
	})
}

func (uc *UserController) UpdateProfileHandler(c *gin.Context) {
	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgInvalidBody,
			"errors":  err.Error(),
		})
		return
	}
	if errs := validator.Struct(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgValidationFailed,
			"errors":  errs,
		})
		return
	}

	subjectID := c.GetString(middleware.CtxUserID)
	u, err := uc.guard.Check(c.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) || errors.Is(err, services.ErrAccountDeleted) {
			respondAccountError(c, uc.authService, subjectID, u, err, http.StatusForbidden, true)
			return
		}
		serverError(c, uc.logger, "AccountGuard.Check() error", err)
		return
	}

	uRet, err := uc.userService.UpdateProfile(c.Request.Context(), u.ID, user.ToProfileUpdate(req))
	if err != nil || uRet == nil {
		serverError(c, uc.logger, "UpdateProfile() error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     MsgUserUpdated,
		"updatedUser": user.ToResponseUser(*uRet),
	})
}

// HardDeleteHandler removes the subject's tasks and then the subject.
// A soft-deleted account may still remove itself; only existence is
// checked here.
func (uc *UserController) HardDeleteHandler(c *gin.Context) {
	subjectID := c.GetString(middleware.CtxUserID)
	u, err := uc.guard.Check(c.Request.Context(), subjectID)
	if err != nil && !errors.Is(err, services.ErrAccountDeleted) {
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"message": MsgAccountMissingShort})
			return
		}
		serverError(c, uc.logger, "AccountGuard.Check() error", err)
		return
	}

	if _, err = uc.userService.HardDelete(c.Request.Context(), u.ID); err != nil {
		serverError(c, uc.logger, "HardDelete() error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": MsgAccountHardDeleted,
		"token":   uc.authService.InvalidationToken(u.ID.Hex()),
	})
}

// SoftDeleteHandler responds 403 on success: the caller is now locked
// out and the invalidation token tells the client to drop its session.
func (uc *UserController) SoftDeleteHandler(c *gin.Context) {
	subjectID := c.GetString(middleware.CtxUserID)
	u, err := uc.guard.Check(c.Request.Context(), subjectID)
	if err != nil && !errors.Is(err, services.ErrAccountDeleted) {
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"message": MsgAccountMissingShort})
			return
		}
		serverError(c, uc.logger, "AccountGuard.Check() error", err)
		return
	}

	uRet, err := uc.userService.SoftDelete(c.Request.Context(), u.ID)
	if err != nil || uRet == nil {
		serverError(c, uc.logger, "SoftDelete() error", err)
		return
	}

	c.JSON(http.StatusForbidden, gin.H{
		"message": MsgAccountSoftDeleted,
		"token":   uc.authService.InvalidationToken(uRet.ID.Hex()),
		"user":    user.ToResponseUser(*uRet),
	})
}

func (uc *UserController) LogoutHandler(c *gin.Context) {
	subjectID := c.GetString(middleware.CtxUserID)
	u, err := uc.guard.Check(c.Request.Context(), subjectID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusForbidden, gin.H{"message": MsgAccountMissingShort})
		case errors.Is(err, services.ErrAccountDeleted):
			c.JSON(http.StatusForbidden, gin.H{
				"message": MsgAccountDeleted,
				"token":   uc.authService.InvalidationToken(u.ID.Hex()),
			})
		default:
			serverError(c, uc.logger, "AccountGuard.Check() error", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": MsgLoggedOut,
		"token":   uc.authService.InvalidationToken(u.ID.Hex()),
	})
}
