package request

import (
	"student-travels/internal/usecase/commands"
)

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=150"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=student advertiser"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	DateOfBirth *Date  `json:"date_of_birth,omitempty" swaggertype:"string" format:"date"`
}

func (r *RegisterRequest) ToCommand() commands.RegisterRequest {
	return commands.RegisterRequest{
		Username:    r.Username,
		Email:       r.Email,
		Password:    r.Password,
		Role:        r.Role,
		Phone:       r.Phone,
		DateOfBirth: r.DateOfBirth.Ptr(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{Email: r.Email, Password: r.Password}
}

// RefreshRequest: the body is optional when the refresh cookie is present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdateProfileRequest struct {
	Phone       *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	DateOfBirth *Date   `json:"date_of_birth,omitempty" swaggertype:"string" format:"date"`
}

func (r *UpdateProfileRequest) ToCommand() commands.UpdateProfileRequest {
	return commands.UpdateProfileRequest{
		Phone:       r.Phone,
		DateOfBirth: r.DateOfBirth.Ptr(),
	}
}
