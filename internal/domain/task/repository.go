package task

import (
	"context"
	"time"

	"task-manager-api/internal/domain/user"
)

type Repository interface {
	Create(ctx context.Context, req Task) (*Task, error)
	FetchByID(ctx context.Context, id ID) (*Task, error)
	Update(ctx context.Context, id ID, upd Update) (*Task, error)
	// Delete removes the task and returns its prior snapshot.
	Delete(ctx context.Context, id ID) (*Task, error)
	FetchWithOwners(ctx context.Context) ([]*WithOwner, error)
	FetchOverdue(ctx context.Context, now time.Time) (Tasks, error)
	// DeleteByOwner removes every task owned by the given user and
	// returns how many were removed.
	DeleteByOwner(ctx context.Context, ownerID user.ID) (int64, error)
}
