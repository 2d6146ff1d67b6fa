package application

import (
	"github.com/frahmantamala/job-portal/internal"
)

type ApplyDTO struct {
	JobID string `json:"job_id"`
}

func (d *ApplyDTO) Validate() error {
	if d.JobID == "" {
		return internal.NewValidationFieldError("job_id", "job_id is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateStatusDTO struct {
	Status string `json:"status"`
}

func (d *UpdateStatusDTO) Validate() error {
	if !ValidStatus(d.Status) {
		return internal.NewValidationFieldError("status",
			"status must be APPLIED, HIRED or REJECTED", internal.ErrCodeInvalidStatus)
	}
	return nil
}
