package application

import "time"

type JobApplication struct {
	ID          string    `gorm:"column:id;primaryKey"`
	JobID       string    `gorm:"column:job_id;not null;uniqueIndex:idx_candidate_job,priority:2"`
	CandidateID int64     `gorm:"column:candidate_id;not null;uniqueIndex:idx_candidate_job,priority:1"`
	Status      string    `gorm:"column:status;default:APPLIED"`
	AppliedAt   time.Time `gorm:"column:applied_at;default:now()"`
	UpdatedAt   time.Time `gorm:"column:updated_at;default:now()"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
