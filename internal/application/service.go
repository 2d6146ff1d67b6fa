package application

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/job-portal/internal"
	"github.com/frahmantamala/job-portal/internal/auth"
	applicationDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/application"
	jobDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/job"
)

type ServiceAPI interface {
	Apply(actor *auth.Actor, dto ApplyDTO) (*Application, error)
	GetApplication(actor *auth.Actor, applicationID string) (*Application, error)
	ListApplications(actor *auth.Actor) ([]*Application, error)
	UpdateStatus(actor *auth.Actor, applicationID string, dto UpdateStatusDTO) (*Application, error)
}

type RepositoryAPI interface {
	Create(a *applicationDatamodel.JobApplication) error
	GetByID(applicationID string) (*applicationDatamodel.JobApplication, error)
	List() ([]*applicationDatamodel.JobApplication, error)
	UpdateStatus(applicationID, status string, at time.Time) error
}

// JobReaderAPI is the slice of the job repository applications need: resolving
// the posting an application points at and who owns it.
type JobReaderAPI interface {
	GetByID(jobID string) (*jobDatamodel.Job, error)
}

type Service struct {
	repo   RepositoryAPI
	jobs   JobReaderAPI
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo RepositoryAPI, jobs JobReaderAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		jobs:   jobs,
		logger: logger,
		now:    time.Now,
	}
}

// Apply records a candidate's application. The unique (candidate_id, job_id)
// index is the authority on duplicates; the repository maps its violation.
// A closed or past-deadline posting can still be applied to, matching the
// existing product behavior.
func (s *Service) Apply(actor *auth.Actor, dto ApplyDTO) (*Application, error) {
	if !auth.IsCandidate(actor) {
		return nil, internal.ErrForbidden
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.jobs.GetByID(dto.JobID); err != nil {
		return nil, internal.ErrJobNotFound
	}

	record := &applicationDatamodel.JobApplication{
		ID:          uuid.NewString(),
		JobID:       dto.JobID,
		CandidateID: actor.ID,
		Status:      StatusApplied,
		AppliedAt:   s.now(),
		UpdatedAt:   s.now(),
	}

	if err := s.repo.Create(record); err != nil {
		return nil, err
	}

	s.logger.Info("application submitted", "application_id", record.ID, "job_id", dto.JobID, "candidate_id", actor.ID)
	return FromDataModel(record), nil
}

func (s *Service) GetApplication(actor *auth.Actor, applicationID string) (*Application, error) {
	record, err := s.repo.GetByID(applicationID)
	if err != nil {
		return nil, internal.ErrApplicationNotFound
	}

	jobRecord, err := s.jobs.GetByID(record.JobID)
	if err != nil {
		return nil, internal.ErrApplicationNotFound
	}

	if !auth.CanViewApplication(actor, jobRecord.RecruiterID, record.CandidateID) {
		return nil, internal.ErrForbidden
	}

	return FromDataModel(record), nil
}

// ListApplications gives recruiters and staff the full system-wide list, not
// just applications against their own postings. That matches the existing
// product behavior. Candidates may only create applications, never list them.
func (s *Service) ListApplications(actor *auth.Actor) ([]*Application, error) {
	if !auth.IsRecruiter(actor) && (actor == nil || !actor.IsStaff) {
		return nil, internal.ErrForbidden
	}

	records, err := s.repo.List()
	if err != nil {
		return nil, internal.NewInternalError("failed to list applications", err)
	}

	return FromDataModelSlice(records), nil
}

// UpdateStatus moves an application to any of the three states. Transitions
// are unrestricted: a rejection can be reversed, a hire can be withdrawn.
func (s *Service) UpdateStatus(actor *auth.Actor, applicationID string, dto UpdateStatusDTO) (*Application, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(applicationID)
	if err != nil {
		return nil, internal.ErrApplicationNotFound
	}

	jobRecord, err := s.jobs.GetByID(record.JobID)
	if err != nil {
		return nil, internal.ErrApplicationNotFound
	}

	if !auth.CanReviewApplication(actor, jobRecord.RecruiterID) {
		return nil, internal.ErrForbidden
	}

	if err := s.repo.UpdateStatus(applicationID, dto.Status, s.now()); err != nil {
		return nil, internal.NewInternalError("failed to update application status", err)
	}

	record.Status = dto.Status
	record.UpdatedAt = s.now()

	s.logger.Info("application status updated", "application_id", applicationID, "status", dto.Status, "by", actor.ID)
	return FromDataModel(record), nil
}
