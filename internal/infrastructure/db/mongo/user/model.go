package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type (
	User struct {
		ID         primitive.ObjectID `bson:"_id,omitempty"`
		Name       string             `bson:"name"`
		Email      string             `bson:"email"`
		Password   string             `bson:"password"`
		Age        *int               `bson:"age,omitempty"`
		Gender     string             `bson:"gender,omitempty"`
		Phone      string             `bson:"phone,omitempty"`
		IsVerified bool               `bson:"is_verified"`
		IsDeleted  bool               `bson:"is_deleted"`

		CreatedAt time.Time `bson:"created_at"`
		UpdatedAt time.Time `bson:"updated_at"`
	}
	Users []*User
)
