package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type (
	ID   = primitive.ObjectID
	User struct {
		ID           ID
		Name         string
		Email        string
		PasswordHash string
		Age          *int
		Gender       string
		Phone        string
		Verified     bool
		Deleted      bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User

	// ProfileUpdate carries the optional profile fields of a partial
	// update; nil pointers leave the stored value untouched.
	ProfileUpdate struct {
		Name  *string
		Age   *int
		Phone *string
	}
)
