package services

import "errors"

var (
	ErrUserExists        = errors.New("user already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountDeleted    = errors.New("account has been deleted")
	ErrPasswordIncorrect = errors.New("password is not correct")
	ErrTaskNotFound      = errors.New("task not found")
	ErrNotTaskOwner      = errors.New("caller does not own the task")

	ErrFailedToGenerateToken = errors.New("failed to generate token")
)
