package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domain "task-manager-api/internal/domain/user"
)

func TestAccountGuard_MalformedSubjectID(t *testing.T) {
	g := NewAccountGuard(&FakeUserRepo{})

	u, err := g.Check(context.Background(), "not-a-hex-id")
	require.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, u)
}

func TestAccountGuard_UnknownSubject(t *testing.T) {
	repo := &FakeUserRepo{
		FetchByIDFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
			return nil, nil
		},
	}
	g := NewAccountGuard(repo)

	u, err := g.Check(context.Background(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, u)
}

// The record comes back alongside the error so the caller can mint an
// invalidation token for it.
func TestAccountGuard_SoftDeletedSubject(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &FakeUserRepo{
		FetchByIDFunc: func(ctx context.Context, got domain.ID) (*domain.User, error) {
			assert.Equal(t, id, got)
			return &domain.User{ID: id, Deleted: true}, nil
		},
	}
	g := NewAccountGuard(repo)

	u, err := g.Check(context.Background(), id.Hex())
	require.ErrorIs(t, err, ErrAccountDeleted)
	require.NotNil(t, u)
	assert.Equal(t, id, u.ID)
}

func TestAccountGuard_ActiveSubject(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &FakeUserRepo{
		FetchByIDFunc: func(ctx context.Context, got domain.ID) (*domain.User, error) {
			return &domain.User{ID: id, Name: "John"}, nil
		},
	}
	g := NewAccountGuard(repo)

	u, err := g.Check(context.Background(), id.Hex())
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "John", u.Name)
}
