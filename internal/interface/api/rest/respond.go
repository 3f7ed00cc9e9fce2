package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-manager-api/internal/application/ports"
	"task-manager-api/internal/application/services"
	domain "task-manager-api/internal/domain/user"
)

func serverError(c *gin.Context, logger *zap.Logger, op string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": MsgServerError})
	logger.Error(op, zap.Error(err))
}

// respondAccountError writes the response for an AccountGuard rejection.
// The two surfaces differ only in the status for a missing subject and
// in whether that case still carries an invalidation token: the user
// endpoints answer 403 with a token minted for whatever subject id the
// claims held, the task endpoints answer 404 with none. A soft-deleted
// subject always gets 403 plus a token for its record.
func respondAccountError(
	c *gin.Context,
	authService ports.Auth,
	subjectID string,
	u *domain.User,
	err error,
	missingStatus int,
	tokenOnMissing bool,
) {
	switch {
	case errors.Is(err, services.ErrAccountDeleted):
		c.JSON(http.StatusForbidden, gin.H{
			"message": MsgAccountDeleted,
			"token":   authService.InvalidationToken(u.ID.Hex()),
		})
	case errors.Is(err, services.ErrAccountNotFound):
		body := gin.H{"message": MsgAccountMissing}
		if tokenOnMissing {
			body["token"] = authService.InvalidationToken(subjectID)
		}
		c.JSON(missingStatus, body)
	}
}
