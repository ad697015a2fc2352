package auth

import (
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	// Email
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs.Add("email", "email must be a valid email address")
	}

	// Password
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	}

	return errs.Err()
}

type TokenResponse struct {
	AccessToken          string     `json:"access_token"`
	AccessTokenExpiresIn int64      `json:"access_token_expires_in"`
	User                 MeResponse `json:"user"`
}

// MeResponse describes the role context of the caller.
type MeResponse struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
	IsAdmin    bool    `json:"is_admin"`
}

func NewMeResponse(s user.Session) MeResponse {
	resp := MeResponse{
		UserID:  s.UserID,
		Name:    s.DisplayName,
		Role:    string(s.Role),
		IsAdmin: s.IsAdmin(),
	}
	if s.EmployeeID != "" {
		id := s.EmployeeID
		resp.EmployeeID = &id
	}
	return resp
}
