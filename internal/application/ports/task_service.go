package ports

import (
	"context"
	"time"

	"task-manager-api/internal/domain/task"
	"task-manager-api/internal/domain/user"
)

type TaskService interface {
	Create(ctx context.Context, req task.Task) (*task.Task, error)
	Update(ctx context.Context, id task.ID, callerID user.ID, upd task.Update) (*task.Task, error)
	Delete(ctx context.Context, id task.ID, callerID user.ID) (*task.Task, error)
	ListWithOwners(ctx context.Context) ([]*task.WithOwner, error)
	Overdue(ctx context.Context, now time.Time) (task.Tasks, error)
}
