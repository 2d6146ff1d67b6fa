package job

import (
	"strings"
	"time"

	"github.com/frahmantamala/job-portal/internal"
)

const deadlineLayout = "2006-01-02"

type CreateJobDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Salary      int64  `json:"salary"`
	Deadline    string `json:"deadline"`
}

func (d *CreateJobDTO) Validate(now time.Time) error {
	d.Title = strings.TrimSpace(d.Title)

	if d.Title == "" {
		return internal.NewValidationFieldError("title", "title is required", internal.ErrCodeValidationFailed)
	}
	if d.Description == "" {
		return internal.NewValidationFieldError("description", "description is required", internal.ErrCodeValidationFailed)
	}
	if d.Salary <= 0 {
		return internal.NewValidationFieldError("salary", "salary must be greater than zero", internal.ErrCodeInvalidSalary)
	}
	if _, err := d.DeadlineTime(now); err != nil {
		return err
	}
	return nil
}

// DeadlineTime parses the deadline and rejects any date not strictly in the
// future relative to now's calendar date.
func (d *CreateJobDTO) DeadlineTime(now time.Time) (time.Time, error) {
	return parseFutureDate(d.Deadline, now)
}

// UpdateJobDTO is a partial update; nil fields keep their stored value.
type UpdateJobDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Salary      *int64  `json:"salary"`
	Deadline    *string `json:"deadline"`
	Status      *string `json:"status"`
}

func (d *UpdateJobDTO) Validate(now time.Time) error {
	if d.Title != nil && strings.TrimSpace(*d.Title) == "" {
		return internal.NewValidationFieldError("title", "title cannot be empty", internal.ErrCodeValidationFailed)
	}
	if d.Salary != nil && *d.Salary <= 0 {
		return internal.NewValidationFieldError("salary", "salary must be greater than zero", internal.ErrCodeInvalidSalary)
	}
	if d.Deadline != nil {
		if _, err := parseFutureDate(*d.Deadline, now); err != nil {
			return err
		}
	}
	if d.Status != nil && !ValidStatus(*d.Status) {
		return internal.NewValidationFieldError("status", "status must be OPEN or CLOSED", internal.ErrCodeInvalidStatus)
	}
	return nil
}

func parseFutureDate(value string, now time.Time) (time.Time, error) {
	t, err := time.Parse(deadlineLayout, value)
	if err != nil {
		return time.Time{}, internal.NewValidationFieldError("deadline",
			"deadline must be formatted as YYYY-MM-DD", internal.ErrCodeInvalidDeadline)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !t.After(today) {
		return time.Time{}, internal.NewValidationFieldError("deadline",
			"deadline must be a future date", internal.ErrCodeInvalidDeadline)
	}
	return t, nil
}
