package task

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type (
	Task struct {
		ID          primitive.ObjectID `bson:"_id,omitempty"`
		Title       string             `bson:"title"`
		Description string             `bson:"description"`
		Status      string             `bson:"status"`
		UserID      primitive.ObjectID `bson:"user_id"`
		AssignTo    string             `bson:"assign_to"`
		Deadline    time.Time          `bson:"deadline"`

		CreatedAt time.Time `bson:"created_at"`
		UpdatedAt time.Time `bson:"updated_at"`
	}
	Tasks []*Task

	// owner is the projected shape produced by the users $lookup.
	owner struct {
		ID     primitive.ObjectID `bson:"_id"`
		Name   string             `bson:"name"`
		Age    *int               `bson:"age,omitempty"`
		Gender string             `bson:"gender,omitempty"`
		Phone  string             `bson:"phone,omitempty"`
	}
	taskWithOwner struct {
		Task  `bson:",inline"`
		Owner []owner `bson:"owner"`
	}
)
