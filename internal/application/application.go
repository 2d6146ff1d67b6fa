package application

import (
	"time"

	applicationDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/application"
)

const (
	StatusApplied  = "APPLIED"
	StatusHired    = "HIRED"
	StatusRejected = "REJECTED"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusHired, StatusRejected:
		return true
	default:
		return false
	}
}

type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	CandidateID int64     `json:"candidate_id"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromDataModel(a *applicationDatamodel.JobApplication) *Application {
	return &Application{
		ID:          a.ID,
		JobID:       a.JobID,
		CandidateID: a.CandidateID,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromDataModelSlice(apps []*applicationDatamodel.JobApplication) []*Application {
	result := make([]*Application, len(apps))
	for i, a := range apps {
		result[i] = FromDataModel(a)
	}
	return result
}
