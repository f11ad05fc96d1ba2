//go:build unit || e2e

package builder

import (
	reqdto "student-travels/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username string
	Email    string
	Password string
	Role     string
	Phone    string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "test_student",
		Email:    "test@example.com",
		Password: "password123",
		Role:     "student",
		Phone:    "+33 6 12 34 56 78",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: a.Username,
		Email:    a.Email,
		Password: a.Password,
		Role:     a.Role,
		Phone:    a.Phone,
	}
}
