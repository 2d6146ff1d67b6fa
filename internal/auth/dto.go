package auth

import (
	"github.com/frahmantamala/job-portal/internal"
)

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenDTO for refresh token requests
type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

// ForgetPasswordDTO carries the email a reset link is requested for.
type ForgetPasswordDTO struct {
	Email string `json:"email"`
}

// ResetPasswordDTO carries the replacement password; uid and token travel as
// query parameters on the reset link.
type ResetPasswordDTO struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (d LoginDTO) Validate() error {
	if d.Email == "" {
		return internal.NewValidationFieldError("email", "email is required", internal.ErrCodeValidationFailed)
	}
	if d.Password == "" {
		return internal.NewValidationFieldError("password", "password is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (d RefreshTokenDTO) Validate() error {
	if d.RefreshToken == "" {
		return internal.NewValidationFieldError("refresh_token", "refresh_token is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (d ForgetPasswordDTO) Validate() error {
	if d.Email == "" {
		return internal.NewValidationFieldError("email", "email is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (d ResetPasswordDTO) Validate() error {
	return ValidatePassword(d.NewPassword, d.ConfirmPassword)
}

// ValidatePassword enforces the two registration/reset rules: minimum length
// and confirmation match.
func ValidatePassword(password, confirm string) error {
	if len(password) < 6 {
		return internal.NewValidationFieldError("password",
			"password must be at least 6 characters long", internal.ErrCodePasswordTooShort)
	}
	if password != confirm {
		return internal.NewValidationFieldError("confirm_password",
			"password and confirm password don't match", internal.ErrCodePasswordMismatch)
	}
	return nil
}
