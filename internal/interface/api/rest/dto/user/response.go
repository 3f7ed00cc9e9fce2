package user

import (
	"time"
)

type (
	User struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Age      *int   `json:"age,omitempty"`
		Gender   string `json:"gender,omitempty"`
		Phone    string `json:"phone,omitempty"`
		Verified bool   `json:"isVerified"`
		Deleted  bool   `json:"isDeleted"`

		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}
	Users []User
)
