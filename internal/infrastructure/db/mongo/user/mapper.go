package user

import (
	"task-manager-api/internal/domain/user"
)

func fromDBModel(u *User) *user.User {
	return &user.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.Password,
		Age:          u.Age,
		Gender:       u.Gender,
		Phone:        u.Phone,
		Verified:     u.IsVerified,
		Deleted:      u.IsDeleted,

		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toDBModel(u user.User) *User {
	return &User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Password:   u.PasswordHash,
		Age:        u.Age,
		Gender:     u.Gender,
		Phone:      u.Phone,
		IsVerified: u.Verified,
		IsDeleted:  u.Deleted,

		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
