package task

import (
	"time"
)

type (
	Task struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Status      string    `json:"status"`
		UserID      string    `json:"userID"`
		AssignTo    string    `json:"assignTo"`
		Deadline    time.Time `json:"deadline"`

		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}
	Tasks []Task

	Owner struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Age    *int   `json:"age,omitempty"`
		Gender string `json:"gender,omitempty"`
		Phone  string `json:"phone,omitempty"`
	}
	TaskWithOwner struct {
		Task
		Owner *Owner `json:"user,omitempty"`
	}
	TasksWithOwners []TaskWithOwner
)
