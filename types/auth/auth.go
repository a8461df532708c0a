package auth

import (
	"fmt"

	"transvert-logistics/types"
)

// RegisterRequest creates a local customer account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r RegisterRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return types.ValidateStruct(r)
}

// LoginRequest authenticates a user by username and password.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return fmt.Errorf("username and password are required")
	}
	return nil
}

// LoginData is the payload of a successful login: the signed token plus the
// panel the frontend should redirect to for the user's role.
type LoginData struct {
	Token    string      `json:"token"`
	Redirect string      `json:"redirect"`
	User     interface{} `json:"user"`
}
