package auth

import (
	"github.com/talentreach/outreach-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "Username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type TokenResponse struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expiresAt"`
	User      UserInfo `json:"user"`
}
