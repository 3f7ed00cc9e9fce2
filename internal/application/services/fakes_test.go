package services

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	taskdomain "task-manager-api/internal/domain/task"
	domain "task-manager-api/internal/domain/user"
	"task-manager-api/internal/infrastructure/mq"
)

type FakeUserRepo struct {
	FetchByIDFunc      func(ctx context.Context, id domain.ID) (*domain.User, error)
	FetchByEmailFunc   func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc         func(ctx context.Context, req domain.User) (*domain.User, error)
	MarkVerifiedFunc   func(ctx context.Context, id domain.ID) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, id domain.ID, hash string) (*domain.User, error)
	ApplyProfileFunc   func(ctx context.Context, id domain.ID, upd domain.ProfileUpdate) (*domain.User, error)
	MarkDeletedFunc    func(ctx context.Context, id domain.ID) (*domain.User, error)
	DeleteFunc         func(ctx context.Context, id domain.ID) (*domain.User, error)
}

func (f *FakeUserRepo) FetchByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.FetchByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByIDFunc(ctx, id)
}
func (f *FakeUserRepo) FetchByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.FetchByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByEmailFunc(ctx, email)
}
func (f *FakeUserRepo) Create(ctx context.Context, req domain.User) (*domain.User, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, req)
}
func (f *FakeUserRepo) MarkVerified(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.MarkVerifiedFunc == nil {
		return nil, errors.New("not used")
	}
	return f.MarkVerifiedFunc(ctx, id)
}
func (f *FakeUserRepo) UpdatePassword(ctx context.Context, id domain.ID, hash string) (*domain.User, error) {
	if f.UpdatePasswordFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdatePasswordFunc(ctx, id, hash)
}
func (f *FakeUserRepo) ApplyProfile(ctx context.Context, id domain.ID, upd domain.ProfileUpdate) (*domain.User, error) {
	if f.ApplyProfileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ApplyProfileFunc(ctx, id, upd)
}
func (f *FakeUserRepo) MarkDeleted(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.MarkDeletedFunc == nil {
		return nil, errors.New("not used")
	}
	return f.MarkDeletedFunc(ctx, id)
}
func (f *FakeUserRepo) Delete(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.DeleteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteFunc(ctx, id)
}

type FakeTaskRepo struct {
	CreateFunc          func(ctx context.Context, req taskdomain.Task) (*taskdomain.Task, error)
	FetchByIDFunc       func(ctx context.Context, id taskdomain.ID) (*taskdomain.Task, error)
	UpdateFunc          func(ctx context.Context, id taskdomain.ID, upd taskdomain.Update) (*taskdomain.Task, error)
	DeleteFunc          func(ctx context.Context, id taskdomain.ID) (*taskdomain.Task, error)
	FetchWithOwnersFunc func(ctx context.Context) ([]*taskdomain.WithOwner, error)
	FetchOverdueFunc    func(ctx context.Context, now time.Time) (taskdomain.Tasks, error)
	DeleteByOwnerFunc   func(ctx context.Context, ownerID domain.ID) (int64, error)
}

func (f *FakeTaskRepo) Create(ctx context.Context, req taskdomain.Task) (*taskdomain.Task, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, req)
}
func (f *FakeTaskRepo) FetchByID(ctx context.Context, id taskdomain.ID) (*taskdomain.Task, error) {
	if f.FetchByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByIDFunc(ctx, id)
}
func (f *FakeTaskRepo) Update(ctx context.Context, id taskdomain.ID, upd taskdomain.Update) (*taskdomain.Task, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, id, upd)
}
func (f *FakeTaskRepo) Delete(ctx context.Context, id taskdomain.ID) (*taskdomain.Task, error) {
	if f.DeleteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteFunc(ctx, id)
}
func (f *FakeTaskRepo) FetchWithOwners(ctx context.Context) ([]*taskdomain.WithOwner, error) {
	if f.FetchWithOwnersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchWithOwnersFunc(ctx)
}
func (f *FakeTaskRepo) FetchOverdue(ctx context.Context, now time.Time) (taskdomain.Tasks, error) {
	if f.FetchOverdueFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchOverdueFunc(ctx, now)
}
func (f *FakeTaskRepo) DeleteByOwner(ctx context.Context, ownerID domain.ID) (int64, error) {
	if f.DeleteByOwnerFunc == nil {
		return 0, errors.New("not used")
	}
	return f.DeleteByOwnerFunc(ctx, ownerID)
}

type FakeMQ struct {
	in chan mq.Event
}

func NewFakeMQ() *FakeMQ { return &FakeMQ{in: make(chan mq.Event, 16)} }

func (f *FakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *FakeMQ) Init() error                                   { return nil }
func (f *FakeMQ) PublisherWorker(ctx context.Context)           {}
func (f *FakeMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *FakeMQ) GetConn() *amqp091.Connection                  { return nil }

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskmanager_test",
			Name:      "general_counters",
		},
		[]string{"result"})
}
