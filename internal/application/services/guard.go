package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-manager-api/internal/application/ports"
	domain "task-manager-api/internal/domain/user"
)

// AccountGuard re-resolves the caller's record and rejects subjects that
// are missing or soft-deleted. Both lifecycle managers run it before any
// mutating operation, so the policy lives in exactly one place.
type AccountGuard struct {
	userRepository domain.Repository
}

func NewAccountGuard(userRepository domain.Repository) ports.AccountGuard {
	return &AccountGuard{userRepository: userRepository}
}

// Check returns the subject's record on success. On ErrAccountDeleted
// the record is still returned so the caller can mint an invalidation
// token for its id.
func (g *AccountGuard) Check(ctx context.Context, subjectID string) (*domain.User, error) {
	id, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	u, err := g.userRepository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrAccountNotFound
	}
	if u.Deleted {
		return u, ErrAccountDeleted
	}

	return u, nil
}
