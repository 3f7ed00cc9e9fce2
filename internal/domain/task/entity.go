package task

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-manager-api/internal/domain/user"
)

type Status string

// Task lifecycle: StatusTodo on creation, StatusDone is terminal.
const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

type (
	ID   = primitive.ObjectID
	Task struct {
		ID          ID
		Title       string
		Description string
		Status      Status
		OwnerID     user.ID
		AssignTo    string
		Deadline    time.Time

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Tasks []*Task

	// Update carries the patchable fields; nil pointers leave the
	// stored value untouched.
	Update struct {
		Title       *string
		Description *string
		Status      *Status
	}

	// Owner holds the public fields of the owning user joined into
	// task listings.
	Owner struct {
		ID     user.ID
		Name   string
		Age    *int
		Gender string
		Phone  string
	}
	WithOwner struct {
		Task
		Owner *Owner
	}
)

// Overdue reports whether the task is past its deadline and not yet done.
func (t *Task) Overdue(now time.Time) bool {
	return t.Status != StatusDone && t.Deadline.Before(now)
}
