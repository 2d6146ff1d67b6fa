package user

import (
	"time"

	userDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/user"
)

type User struct {
	ID        int64      `json:"id"`
	UID       string     `json:"uid"`
	Username  string     `json:"username"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Role      string     `json:"role"`
	IsStaff   bool       `json:"is_staff"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Profile struct {
	UserID      int64      `json:"user_id"`
	Photo       string     `json:"photo,omitempty"`
	Bio         string     `json:"bio,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:        u.ID,
		UID:       u.UID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		IsStaff:   u.IsStaff,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromDataModelSlice(users []*userDatamodel.User) []*User {
	result := make([]*User, len(users))
	for i, u := range users {
		result[i] = FromDataModel(u)
	}
	return result
}

func ProfileFromDataModel(p *userDatamodel.UserProfile) *Profile {
	return &Profile{
		UserID:      p.UserID,
		Photo:       p.Photo,
		Bio:         p.Bio,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		UpdatedAt:   p.UpdatedAt,
	}
}
