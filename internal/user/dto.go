package user

import (
	"net/mail"
	"strings"
	"time"

	"github.com/frahmantamala/job-portal/internal"
	"github.com/frahmantamala/job-portal/internal/auth"
)

type RegisterDTO struct {
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Role            string `json:"role"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (d *RegisterDTO) Validate() error {
	d.Email = strings.TrimSpace(strings.ToLower(d.Email))

	if d.Email == "" {
		return internal.NewValidationFieldError("email", "email is required", internal.ErrCodeInvalidEmail)
	}
	if _, err := mail.ParseAddress(d.Email); err != nil {
		return internal.NewValidationFieldError("email", "email is not a valid address", internal.ErrCodeInvalidEmail)
	}

	role := auth.Role(d.Role)
	if !role.Valid() {
		return internal.NewValidationFieldError("role", "role must be CANDIDATE or RECRUITER", internal.ErrCodeInvalidRole)
	}

	return auth.ValidatePassword(d.Password, d.ConfirmPassword)
}

// UpdateUserDTO carries a partial update: nil fields are left untouched.
type UpdateUserDTO struct {
	Username        *string `json:"username"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Phone           *string `json:"phone"`
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirm_password"`
}

func (d *UpdateUserDTO) Validate() error {
	if d.Password != nil {
		confirm := ""
		if d.ConfirmPassword != nil {
			confirm = *d.ConfirmPassword
		}
		return auth.ValidatePassword(*d.Password, confirm)
	}
	return nil
}

type ProfileDTO struct {
	Photo       string `json:"photo"`
	Bio         string `json:"bio"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
}

func (d *ProfileDTO) Validate() error {
	if d.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", d.DateOfBirth); err != nil {
			return internal.NewValidationFieldError("date_of_birth", "date_of_birth must be formatted as YYYY-MM-DD", internal.ErrCodeValidationFailed)
		}
	}
	return nil
}

func (d *ProfileDTO) DateOfBirthTime() *time.Time {
	if d.DateOfBirth == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", d.DateOfBirth)
	if err != nil {
		return nil
	}
	return &t
}
