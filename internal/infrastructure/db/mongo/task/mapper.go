package task

import (
	"task-manager-api/internal/domain/task"
)

func fromDBModel(t *Task) *task.Task {
	return &task.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      task.Status(t.Status),
		OwnerID:     t.UserID,
		AssignTo:    t.AssignTo,
		Deadline:    t.Deadline,

		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func fromDBModels(ts Tasks) task.Tasks {
	out := make(task.Tasks, len(ts))
	for idx, t := range ts {
		out[idx] = fromDBModel(t)
	}

	return out
}

func toDBModel(t task.Task) *Task {
	return &Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		UserID:      t.OwnerID,
		AssignTo:    t.AssignTo,
		Deadline:    t.Deadline,

		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func fromDBModelWithOwner(t *taskWithOwner) *task.WithOwner {
	out := &task.WithOwner{Task: *fromDBModel(&t.Task)}
	if len(t.Owner) > 0 {
		o := t.Owner[0]
		out.Owner = &task.Owner{
			ID:     o.ID,
			Name:   o.Name,
			Age:    o.Age,
			Gender: o.Gender,
			Phone:  o.Phone,
		}
	}

	return out
}
