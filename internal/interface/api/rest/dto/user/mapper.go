package user

import (
	"task-manager-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	return User{
		ID:       uDomain.ID.Hex(),
		Name:     uDomain.Name,
		Email:    uDomain.Email,
		Age:      uDomain.Age,
		Gender:   uDomain.Gender,
		Phone:    uDomain.Phone,
		Verified: uDomain.Verified,
		Deleted:  uDomain.Deleted,

		CreatedAt: uDomain.CreatedAt,
		UpdatedAt: uDomain.UpdatedAt,
	}
}

// ToDomainUser maps a signup payload; the password travels separately so
// only its hash ever reaches the domain entity.
func ToDomainUser(req SignUpRequest) user.User {
	return user.User{
		Name:   req.Name,
		Email:  req.Email,
		Age:    req.Age,
		Gender: req.Gender,
		Phone:  req.Phone,
	}
}

func ToProfileUpdate(req UpdateProfileRequest) user.ProfileUpdate {
	return user.ProfileUpdate{
		Name:  req.Name,
		Age:   req.Age,
		Phone: req.Phone,
	}
}
