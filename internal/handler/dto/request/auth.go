package request

import (
	"stayhub/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type RegisterRequest struct {
	Email           string  `json:"email" binding:"required,email,max=254"`
	Password        string  `json:"password" binding:"required,min=8"`
	PasswordConfirm string  `json:"password_confirm" binding:"required"`
	FirstName       string  `json:"first_name" binding:"required,notblank,max=150"`
	LastName        string  `json:"last_name" binding:"required,notblank,max=150"`
	PhoneNumber     *string `json:"phone_number" binding:"omitempty,max=20"`
	Role            string  `json:"role" binding:"omitempty,signup_role"`
}

func (r *RegisterRequest) ToCommand() (commands.RegisterRequest, error) {
	var cmd commands.RegisterRequest
	err := copier.Copy(&cmd, r)
	return cmd, err
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{Email: r.Email, Password: r.Password}
}

// RefreshRequest is optional; the refresh cookie is used when the body is empty.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name" binding:"omitempty,notblank,max=150"`
	LastName    *string `json:"last_name" binding:"omitempty,notblank,max=150"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
}

func (r *UpdateProfileRequest) ToCommand() (commands.UpdateProfileRequest, error) {
	var cmd commands.UpdateProfileRequest
	err := copier.Copy(&cmd, r)
	return cmd, err
}
