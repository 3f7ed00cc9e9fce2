package ports

import (
	"context"

	"task-manager-api/internal/domain/user"
)

type UserService interface {
	SignUp(ctx context.Context, req user.User, password string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Verify(ctx context.Context, id user.ID) (*user.User, error)
	ChangePassword(ctx context.Context, id user.ID, password string) (*user.User, error)
	UpdateProfile(ctx context.Context, id user.ID, upd user.ProfileUpdate) (*user.User, error)
	HardDelete(ctx context.Context, id user.ID) (*user.User, error)
	SoftDelete(ctx context.Context, id user.ID) (*user.User, error)
}

// AccountGuard is the single missing-or-soft-deleted policy every
// authenticated operation runs before touching storage.
type AccountGuard interface {
	Check(ctx context.Context, subjectID string) (*user.User, error)
}
