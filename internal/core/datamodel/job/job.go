package job

import "time"

type Job struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title;uniqueIndex;not null"`
	Description string    `gorm:"column:description;not null"`
	Location    string    `gorm:"column:location"`
	Salary      int64     `gorm:"column:salary;not null"`
	Deadline    time.Time `gorm:"column:deadline;type:date;not null"`
	Status      string    `gorm:"column:status;default:OPEN"`
	RecruiterID int64     `gorm:"column:recruiter_id;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time `gorm:"column:updated_at;default:now()"`
}

func (Job) TableName() string {
	return "jobs"
}
