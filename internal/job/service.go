package job

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/job-portal/internal"
	"github.com/frahmantamala/job-portal/internal/auth"
	jobDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/job"
)

type ServiceAPI interface {
	CreateJob(actor *auth.Actor, dto CreateJobDTO) (*Job, error)
	GetJob(actor *auth.Actor, jobID string) (*Job, error)
	ListJobs(actor *auth.Actor) ([]*Job, error)
	UpdateJob(actor *auth.Actor, jobID string, dto UpdateJobDTO) (*Job, error)
	DeleteJob(actor *auth.Actor, jobID string) error
}

type RepositoryAPI interface {
	Create(j *jobDatamodel.Job) error
	GetByID(jobID string) (*jobDatamodel.Job, error)
	List() ([]*jobDatamodel.Job, error)
	Update(jobID string, fields map[string]interface{}) error
	Delete(jobID string) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) CreateJob(actor *auth.Actor, dto CreateJobDTO) (*Job, error) {
	if !auth.IsRecruiter(actor) && (actor == nil || !actor.IsStaff) {
		return nil, internal.ErrForbidden
	}

	if err := dto.Validate(s.now()); err != nil {
		return nil, err
	}
	deadline, err := dto.DeadlineTime(s.now())
	if err != nil {
		return nil, err
	}

	record := &jobDatamodel.Job{
		ID:          uuid.NewString(),
		Title:       dto.Title,
		Description: dto.Description,
		Location:    dto.Location,
		Salary:      dto.Salary,
		Deadline:    deadline,
		Status:      StatusOpen,
		RecruiterID: actor.ID,
		CreatedAt:   s.now(),
		UpdatedAt:   s.now(),
	}

	if err := s.repo.Create(record); err != nil {
		return nil, err
	}

	s.logger.Info("job posted", "job_id", record.ID, "recruiter_id", actor.ID)
	return FromDataModel(record), nil
}

func (s *Service) GetJob(actor *auth.Actor, jobID string) (*Job, error) {
	if actor == nil {
		return nil, internal.ErrForbidden
	}

	record, err := s.repo.GetByID(jobID)
	if err != nil {
		return nil, internal.ErrJobNotFound
	}

	return FromDataModel(record), nil
}

// ListJobs returns every posting for recruiters and staff. Candidates get an
// empty list: the listing endpoint has always been the recruiter's inventory
// view, and candidate browsing goes through other channels.
func (s *Service) ListJobs(actor *auth.Actor) ([]*Job, error) {
	if actor == nil {
		return nil, internal.ErrForbidden
	}

	if auth.IsCandidate(actor) && !actor.IsStaff {
		return []*Job{}, nil
	}

	records, err := s.repo.List()
	if err != nil {
		return nil, internal.NewInternalError("failed to list jobs", err)
	}

	return FromDataModelSlice(records), nil
}

func (s *Service) UpdateJob(actor *auth.Actor, jobID string, dto UpdateJobDTO) (*Job, error) {
	record, err := s.repo.GetByID(jobID)
	if err != nil {
		return nil, internal.ErrJobNotFound
	}

	if !auth.OwnsJob(actor, record.RecruiterID) {
		return nil, internal.ErrForbidden
	}

	if err := dto.Validate(s.now()); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"updated_at": s.now()}
	if dto.Title != nil {
		fields["title"] = *dto.Title
	}
	if dto.Description != nil {
		fields["description"] = *dto.Description
	}
	if dto.Location != nil {
		fields["location"] = *dto.Location
	}
	if dto.Salary != nil {
		fields["salary"] = *dto.Salary
	}
	if dto.Deadline != nil {
		deadline, err := parseFutureDate(*dto.Deadline, s.now())
		if err != nil {
			return nil, err
		}
		fields["deadline"] = deadline
	}
	if dto.Status != nil {
		fields["status"] = *dto.Status
	}

	if err := s.repo.Update(jobID, fields); err != nil {
		return nil, err
	}

	record, err = s.repo.GetByID(jobID)
	if err != nil {
		return nil, internal.ErrJobNotFound
	}

	return FromDataModel(record), nil
}

func (s *Service) DeleteJob(actor *auth.Actor, jobID string) error {
	record, err := s.repo.GetByID(jobID)
	if err != nil {
		return internal.ErrJobNotFound
	}

	if !auth.OwnsJob(actor, record.RecruiterID) {
		return internal.ErrForbidden
	}

	if err := s.repo.Delete(jobID); err != nil {
		return internal.NewInternalError("failed to delete job", err)
	}

	s.logger.Info("job deleted", "job_id", jobID, "by", actor.ID)
	return nil
}
