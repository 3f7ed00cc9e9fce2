package task

type (
	AddRequest struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"required"`
		AssignTo    string `json:"assignTo" validate:"required"`
		Deadline    string `json:"deadline" validate:"required,datetime=2006-01-02"`
	}
	UpdateRequest struct {
		ID          string  `json:"id" validate:"required,mongodb"`
		Title       *string `json:"title,omitempty"`
		Description *string `json:"description,omitempty"`
		Status      *string `json:"status,omitempty" validate:"omitempty,oneof=todo doing done"`
	}
	DeleteRequest struct {
		ID string `json:"id" validate:"required,mongodb"`
	}
)
