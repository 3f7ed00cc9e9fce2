package user

import (
	"context"
)

// Repository methods return (nil, nil) when no record matches, the way
// the storage layer distinguishes not-found from a driver failure.
type Repository interface {
	FetchByID(ctx context.Context, id ID) (*User, error)
	FetchByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, req User) (*User, error)
	MarkVerified(ctx context.Context, id ID) (*User, error)
	UpdatePassword(ctx context.Context, id ID, passwordHash string) (*User, error)
	ApplyProfile(ctx context.Context, id ID, upd ProfileUpdate) (*User, error)
	MarkDeleted(ctx context.Context, id ID) (*User, error)
	Delete(ctx context.Context, id ID) (*User, error)
}
