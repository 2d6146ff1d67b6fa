package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/frahmantamala/job-portal/internal"
	userDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(u *userDatamodel.User) error {
	err := r.db.Create(u).Error
	if err != nil {
		if isUniqueViolation(err) {
			return internal.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *Repository) GetByID(userID int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByEmail(email string) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) List() ([]*userDatamodel.User, error) {
	var users []*userDatamodel.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) Update(userID int64, fields map[string]interface{}) error {
	return r.db.Model(&userDatamodel.User{}).
		Where("id = ?", userID).
		Updates(fields).Error
}

func (r *Repository) GetProfile(userID int64) (*userDatamodel.UserProfile, error) {
	var p userDatamodel.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) SaveProfile(p *userDatamodel.UserProfile) error {
	return r.db.Save(p).Error
}

// isUniqueViolation matches both the pgx duplicate-key error and the sqlite
// constraint text used by the in-memory test database.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
