package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository issues plain aggregate queries; the dashboard never needs the
// ORM's object mapping, so it talks to the shared sqlx pool directly.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CountJobs(ctx context.Context, recruiterID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM jobs WHERE recruiter_id = $1`, recruiterID)
	return count, err
}

func (r *Repository) CountJobsByStatus(ctx context.Context, recruiterID int64, status string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM jobs WHERE recruiter_id = $1 AND status = $2`,
		recruiterID, status)
	return count, err
}

func (r *Repository) CountApplications(ctx context.Context, recruiterID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM job_applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE j.recruiter_id = $1`, recruiterID)
	return count, err
}

func (r *Repository) CountApplicationsByStatus(ctx context.Context, recruiterID int64, status string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM job_applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE j.recruiter_id = $1 AND a.status = $2`, recruiterID, status)
	return count, err
}
