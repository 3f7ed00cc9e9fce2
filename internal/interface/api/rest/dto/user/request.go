package user

type (
	SignUpRequest struct {
		Name     string `json:"name" validate:"required,humanname,min=3,max=30"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,alphanum,min=3,max=30"`
		Age      *int   `json:"age,omitempty"`
		Gender   string `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
		Phone    string `json:"phone,omitempty" validate:"omitempty,min=7,max=14"`
	}
	SignInRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,alphanum,min=3,max=30"`
	}
	ChangePasswordRequest struct {
		Password string `json:"password" validate:"required,alphanum,min=3,max=30"`
	}
	UpdateProfileRequest struct {
		Name  *string `json:"name,omitempty" validate:"required,humanname,min=3,max=30"`
		Age   *int    `json:"age,omitempty"`
		Phone *string `json:"phone,omitempty" validate:"omitempty,min=7,max=14"`
	}
)
