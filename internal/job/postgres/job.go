package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/frahmantamala/job-portal/internal"
	jobDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/job"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(j *jobDatamodel.Job) error {
	err := r.db.Create(j).Error
	if err != nil {
		if isUniqueViolation(err) {
			return internal.ErrJobTitleTaken
		}
		return err
	}
	return nil
}

func (r *Repository) GetByID(jobID string) (*jobDatamodel.Job, error) {
	var j jobDatamodel.Job
	err := r.db.Where("id = ?", jobID).First(&j).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrJobNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *Repository) List() ([]*jobDatamodel.Job, error) {
	var jobs []*jobDatamodel.Job
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *Repository) Update(jobID string, fields map[string]interface{}) error {
	err := r.db.Model(&jobDatamodel.Job{}).
		Where("id = ?", jobID).
		Updates(fields).Error
	if err != nil && isUniqueViolation(err) {
		return internal.ErrJobTitleTaken
	}
	return err
}

func (r *Repository) Delete(jobID string) error {
	return r.db.Where("id = ?", jobID).Delete(&jobDatamodel.Job{}).Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
