package dashboard

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/job-portal/internal"
	"github.com/frahmantamala/job-portal/internal/auth"
)

// Stats is the recruiter dashboard payload. Every counter is scoped to the
// requesting recruiter: published is the total number of jobs they posted
// regardless of status, and the application counters cover only applications
// against those jobs.
type Stats struct {
	Published    int64 `json:"published"`
	Closed       int64 `json:"closed"`
	Applications int64 `json:"applications"`
	Hired        int64 `json:"hired"`
	Rejected     int64 `json:"rejected"`
}

type ServiceAPI interface {
	RecruiterStats(ctx context.Context, actor *auth.Actor) (*Stats, error)
}

type RepositoryAPI interface {
	CountJobs(ctx context.Context, recruiterID int64) (int64, error)
	CountJobsByStatus(ctx context.Context, recruiterID int64, status string) (int64, error)
	CountApplications(ctx context.Context, recruiterID int64) (int64, error)
	CountApplicationsByStatus(ctx context.Context, recruiterID int64, status string) (int64, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) RecruiterStats(ctx context.Context, actor *auth.Actor) (*Stats, error) {
	if !auth.IsRecruiter(actor) && (actor == nil || !actor.IsStaff) {
		return nil, internal.ErrForbidden
	}

	published, err := s.repo.CountJobs(ctx, actor.ID)
	if err != nil {
		return nil, internal.NewInternalError("failed to count published jobs", err)
	}

	closed, err := s.repo.CountJobsByStatus(ctx, actor.ID, "CLOSED")
	if err != nil {
		return nil, internal.NewInternalError("failed to count closed jobs", err)
	}

	applications, err := s.repo.CountApplications(ctx, actor.ID)
	if err != nil {
		return nil, internal.NewInternalError("failed to count applications", err)
	}

	hired, err := s.repo.CountApplicationsByStatus(ctx, actor.ID, "HIRED")
	if err != nil {
		return nil, internal.NewInternalError("failed to count hired applications", err)
	}

	rejected, err := s.repo.CountApplicationsByStatus(ctx, actor.ID, "REJECTED")
	if err != nil {
		return nil, internal.NewInternalError("failed to count rejected applications", err)
	}

	return &Stats{
		Published:    published,
		Closed:       closed,
		Applications: applications,
		Hired:        hired,
		Rejected:     rejected,
	}, nil
}
