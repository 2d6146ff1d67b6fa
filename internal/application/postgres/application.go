package postgres

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/job-portal/internal"
	applicationDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/application"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(a *applicationDatamodel.JobApplication) error {
	err := r.db.Create(a).Error
	if err != nil {
		if isUniqueViolation(err) {
			return internal.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *Repository) GetByID(applicationID string) (*applicationDatamodel.JobApplication, error) {
	var a applicationDatamodel.JobApplication
	err := r.db.Where("id = ?", applicationID).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrApplicationNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *Repository) List() ([]*applicationDatamodel.JobApplication, error) {
	var apps []*applicationDatamodel.JobApplication
	err := r.db.Order("applied_at DESC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *Repository) UpdateStatus(applicationID, status string, at time.Time) error {
	return r.db.Model(&applicationDatamodel.JobApplication{}).
		Where("id = ?", applicationID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": at,
		}).Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
