package services

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"task-manager-api/internal/application/ports"
	domain "task-manager-api/internal/domain/task"
	"task-manager-api/internal/domain/user"
)

type TaskService struct {
	taskRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewTaskService(
	taskRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		mCounter:       mCounter,
	}
}

func (ts *TaskService) Create(ctx context.Context, req domain.Task) (*domain.Task, error) {
	// every task starts at the initial status regardless of input
	req.Status = domain.StatusTodo

	tRet, err := ts.taskRepository.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	ts.mCounter.WithLabelValues("task_created_total").Inc()

	return tRet, nil
}

func (ts *TaskService) Update(ctx context.Context, id domain.ID, callerID user.ID, upd domain.Update) (*domain.Task, error) {
	t, err := ts.taskRepository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}
	if t.OwnerID != callerID {
		return nil, ErrNotTaskOwner
	}

	tRet, err := ts.taskRepository.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if tRet == nil {
		return nil, ErrTaskNotFound
	}

	ts.mCounter.WithLabelValues("task_updated_total").Inc()

	return tRet, nil
}

func (ts *TaskService) Delete(ctx context.Context, id domain.ID, callerID user.ID) (*domain.Task, error) {
	t, err := ts.taskRepository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}
	if t.OwnerID != callerID {
		return nil, ErrNotTaskOwner
	}

	tRet, err := ts.taskRepository.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if tRet == nil {
		return nil, ErrTaskNotFound
	}

	ts.mCounter.WithLabelValues("task_deleted_total").Inc()

	return tRet, nil
}

func (ts *TaskService) ListWithOwners(ctx context.Context) ([]*domain.WithOwner, error) {
	return ts.taskRepository.FetchWithOwners(ctx)
}

func (ts *TaskService) Overdue(ctx context.Context, now time.Time) (domain.Tasks, error) {
	return ts.taskRepository.FetchOverdue(ctx, now)
}
