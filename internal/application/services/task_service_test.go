package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domain "task-manager-api/internal/domain/task"
)

func TestTaskCreate_ForcesInitialStatus(t *testing.T) {
	var stored domain.Task
	repo := &FakeTaskRepo{
		CreateFunc: func(ctx context.Context, req domain.Task) (*domain.Task, error) {
			stored = req
			req.ID = primitive.NewObjectID()
			return &req, nil
		},
	}
	svc := NewTaskService(repo, newTestCounter())

	_, err := svc.Create(context.Background(), domain.Task{
		Title:  "write report",
		Status: domain.StatusDone, // client input must not win
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTodo, stored.Status)
}

func TestTaskUpdate_NotFound(t *testing.T) {
	repo := &FakeTaskRepo{
		FetchByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Task, error) {
			return nil, nil
		},
	}
	svc := NewTaskService(repo, newTestCounter())

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), domain.Update{})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskUpdate_RejectsNonOwner(t *testing.T) {
	owner := primitive.NewObjectID()
	caller := primitive.NewObjectID()
	updated := false
	repo := &FakeTaskRepo{
		FetchByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Task, error) {
			return &domain.Task{ID: id, OwnerID: owner}, nil
		},
		UpdateFunc: func(ctx context.Context, id domain.ID, upd domain.Update) (*domain.Task, error) {
			updated = true
			return nil, nil
		},
	}
	svc := NewTaskService(repo, newTestCounter())

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), caller, domain.Update{})
	require.ErrorIs(t, err, ErrNotTaskOwner)
	assert.False(t, updated, "the task must stay unchanged")
}

func TestTaskUpdate_OwnerPatchesFields(t *testing.T) {
	owner := primitive.NewObjectID()
	title := "new title"
	var got domain.Update
	repo := &FakeTaskRepo{
		FetchByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Task, error) {
			return &domain.Task{ID: id, OwnerID: owner}, nil
		},
		UpdateFunc: func(ctx context.Context, id domain.ID, upd domain.Update) (*domain.Task, error) {
			got = upd
			return &domain.Task{ID: id, OwnerID: owner, Title: *upd.Title}, nil
		},
	}
	svc := NewTaskService(repo, newTestCounter())

	tRet, err := svc.Update(context.Background(), primitive.NewObjectID(), owner, domain.Update{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new title", tRet.Title)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.Status)
}

func TestTaskDelete_RejectsNonOwner(t *testing.T) {
	owner := primitive.NewObjectID()
	deleted := false
	repo := &FakeTaskRepo{
		FetchByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Task, error) {
			return &domain.Task{ID: id, OwnerID: owner}, nil
		},
		DeleteFunc: func(ctx context.Context, id domain.ID) (*domain.Task, error) {
			deleted = true
			return nil, nil
		},
	}
	svc := NewTaskService(repo, newTestCounter())

	_, err := svc.Delete(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	require.ErrorIs(t, err, ErrNotTaskOwner)
	assert.False(t, deleted)
}

func TestTaskDelete_ReturnsPriorSnapshot(t *testing.T) {
	owner := primitive.NewObjectID()
	repo := &FakeTaskRepo{
		FetchByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Task, error) {
			return &domain.Task{ID: id, OwnerID: owner, Title: "old"}, nil
		},
		DeleteFunc: func(ctx context.Context, id domain.ID) (*domain.Task, error) {
			return &domain.Task{ID: id, OwnerID: owner, Title: "old"}, nil
		},
	}
	svc := NewTaskService(repo, newTestCounter())

	tRet, err := svc.Delete(context.Background(), primitive.NewObjectID(), owner)
	require.NoError(t, err)
	assert.Equal(t, "old", tRet.Title)
}

func TestOverdue_DelegatesCurrentTime(t *testing.T) {
	now := time.Now()
	repo := &FakeTaskRepo{
		FetchOverdueFunc: func(ctx context.Context, gotNow time.Time) (domain.Tasks, error) {
			assert.Equal(t, now, gotNow)
			return domain.Tasks{{Title: "late"}}, nil
		},
	}
	svc := NewTaskService(repo, newTestCounter())

	ts, err := svc.Overdue(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, "late", ts[0].Title)
}
