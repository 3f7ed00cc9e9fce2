package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-manager-api/internal/application/ports"
	"task-manager-api/internal/application/services"
	"task-manager-api/internal/infrastructure/jwt"
	"task-manager-api/internal/interface/api/rest/dto/task"
	"task-manager-api/internal/interface/api/rest/middleware"
	"task-manager-api/internal/interface/api/rest/validator"
)

type TaskController struct {
	taskService ports.TaskService
	authService ports.Auth
	guard       ports.AccountGuard
	logger      *zap.Logger
}

func NewTaskController(
	r *gin.Engine,
	taskService ports.TaskService,
	authService ports.Auth,
	guard ports.AccountGuard,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *TaskController {
	tc := &TaskController{
		taskService: taskService,
		authService: authService,
		guard:       guard,
		logger:      logger,
	}

	auth := middleware.AuthMiddleware(jwtService)

	r.POST(RouteTasks, auth, tc.AddHandler)
	r.PATCH(RouteTasks, auth, tc.UpdateHandler)
	r.DELETE(RouteTasks, auth, tc.DeleteHandler)
	r.GET(RouteTasksWithUsers, tc.ListWithUsersHandler)
	r.GET(RouteOverdueTasks, tc.OverdueHandler)

	return tc
}

func (tc *TaskController) AddHandler(c *gin.Context) {
	var req task.AddRequest
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
	u, err := tc.guard.Check(c.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) || errors.Is(err, services.ErrAccountDeleted) {
			respondAccountError(c, tc.authService, subjectID, u, err, http.StatusNotFound, false)
			return
		}
		serverError(c, tc.logger, "AccountGuard.Check() error", err)
		return
	}

	tDomain, err := task.ToDomainTask(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgInvalidBody,
			"errors":  err.Error(),
		})
		return
	}
	tDomain.OwnerID = u.ID

	tRet, err := tc.taskService.Create(c.Request.Context(), tDomain)
	if err != nil {
		serverError(c, tc.logger, "Create() error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": MsgTaskAdded,
		"task":    task.ToResponseTask(*tRet),
	})
}

func (tc *TaskController) UpdateHandler(c *gin.Context) {
	var req task.UpdateRequest
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
	u, err := tc.guard.Check(c.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) || errors.Is(err, services.ErrAccountDeleted) {
			respondAccountError(c, tc.authService, subjectID, u, err, http.StatusNotFound, false)
			return
		}
		serverError(c, tc.logger, "AccountGuard.Check() error", err)
		return
	}

	ok, id := validator.IsHexID(req.ID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgValidationFailed,
			"errors":  validator.HexIDViolation("id"),
		})
		return
	}

	tRet, err := tc.taskService.Update(c.Request.Context(), id, u.ID, task.ToDomainUpdate(req))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": MsgTaskNotFound})
		case errors.Is(err, services.ErrNotTaskOwner):
			c.JSON(http.StatusBadRequest, gin.H{"message": MsgNoUpdatePermission})
		default:
			serverError(c, tc.logger, "Update() error", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     MsgTaskUpdated,
		"updatedTask": task.ToResponseTask(*tRet),
	})
}

func (tc *TaskController) DeleteHandler(c *gin.Context) {
	var req task.DeleteRequest
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
	u, err := tc.guard.Check(c.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) || errors.Is(err, services.ErrAccountDeleted) {
			respondAccountError(c, tc.authService, subjectID, u, err, http.StatusNotFound, false)
			return
		}
		serverError(c, tc.logger, "AccountGuard.Check() error", err)
		return
	}

	ok, id := validator.IsHexID(req.ID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgValidationFailed,
			"errors":  validator.HexIDViolation("id"),
		})
		return
	}

	tRet, err := tc.taskService.Delete(c.Request.Context(), id, u.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": MsgTaskNotFound})
		case errors.Is(err, services.ErrNotTaskOwner):
			c.JSON(http.StatusBadRequest, gin.H{"message": MsgNoDeletePermission})
		default:
			serverError(c, tc.logger, "Delete() error", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     MsgTaskDeleted,
		"deletedTask": task.ToResponseTask(*tRet),
	})
}

func (tc *TaskController) ListWithUsersHandler(c *gin.Context) {
	ts, err := tc.taskService.ListWithOwners(c.Request.Context())
	if err != nil {
		serverError(c, tc.logger, "ListWithOwners() error", err)
		return
	}

	msg := MsgTasksRetrieved
	if len(ts) == 0 {
		msg = MsgNoTasks
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msg,
		"tasks":   task.ToResponseTasksWithOwners(ts),
	})
}

func (tc *TaskController) OverdueHandler(c *gin.Context) {
	ts, err := tc.taskService.Overdue(c.Request.Context(), time.Now())
	if err != nil {
		serverError(c, tc.logger, "Overdue() error", err)
		return
	}

	msg := MsgTasksRetrieved
	if len(ts) == 0 {
		msg = MsgNoTasks
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msg,
		"tasks":   task.ToResponseTasks(ts),
	})
}
