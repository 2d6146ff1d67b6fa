package job

import (
	"time"

	jobDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/job"
)

const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
)

func ValidStatus(s string) bool {
	return s == StatusOpen || s == StatusClosed
}

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      int64     `json:"salary"`
	Deadline    time.Time `json:"deadline"`
	Status      string    `json:"status"`
	RecruiterID int64     `json:"recruiter_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromDataModel(j *jobDatamodel.Job) *Job {
	return &Job{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		Salary:      j.Salary,
		Deadline:    j.Deadline,
		Status:      j.Status,
		RecruiterID: j.RecruiterID,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func FromDataModelSlice(jobs []*jobDatamodel.Job) []*Job {
	result := make([]*Job, len(jobs))
	for i, j := range jobs {
		result[i] = FromDataModel(j)
	}
	return result
}
