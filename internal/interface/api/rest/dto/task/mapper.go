package task

import (
	"errors"
	"time"

	"task-manager-api/internal/domain/task"
)

const deadlineLayout = "2006-01-02"

func ToResponseTask(tDomain task.Task) Task {
	return Task{
		ID:          tDomain.ID.Hex(),
		Title:       tDomain.Title,
		Description: tDomain.Description,
		Status:      string(tDomain.Status),
		UserID:      tDomain.OwnerID.Hex(),
		AssignTo:    tDomain.AssignTo,
		Deadline:    tDomain.Deadline,

		CreatedAt: tDomain.CreatedAt,
		UpdatedAt: tDomain.UpdatedAt,
	}
}

func ToResponseTasks(tsDomain task.Tasks) Tasks {
	ts := make(Tasks, len(tsDomain))
	for idx, t := range tsDomain {
		ts[idx] = ToResponseTask(*t)
	}

	return ts
}

func ToResponseTasksWithOwners(tsDomain []*task.WithOwner) TasksWithOwners {
	ts := make(TasksWithOwners, len(tsDomain))
	for idx, t := range tsDomain {
		ts[idx] = TaskWithOwner{Task: ToResponseTask(t.Task)}
		if t.Owner != nil {
			ts[idx].Owner = &Owner{
				ID:     t.Owner.ID.Hex(),
				Name:   t.Owner.Name,
				Age:    t.Owner.Age,
				Gender: t.Owner.Gender,
				Phone:  t.Owner.Phone,
			}
		}
	}

	return ts
}

func ToDomainTask(req AddRequest) (task.Task, error) {
	d, err := time.Parse(deadlineLayout, req.Deadline)
	if err != nil {
		return task.Task{}, errors.New("invalid deadline format, want YYYY-MM-DD")
	}

	return task.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignTo:    req.AssignTo,
		Deadline:    d,
	}, nil
}

func ToDomainUpdate(req UpdateRequest) task.Update {
	upd := task.Update{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		s := task.Status(*req.Status)
		upd.Status = &s
	}

	return upd
}
