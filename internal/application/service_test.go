package application

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/job-portal/internal"
	"github.com/frahmantamala/job-portal/internal/auth"
	applicationDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/application"
	jobDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/job"
)

func TestApplication(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Application Module Suite")
}

type mockApplicationRepository struct {
	apps map[string]*applicationDatamodel.JobApplication
}

func newMockApplicationRepository() *mockApplicationRepository {
	return &mockApplicationRepository{apps: map[string]*applicationDatamodel.JobApplication{}}
}

func (m *mockApplicationRepository) Create(a *applicationDatamodel.JobApplication) error {
	for _, existing := range m.apps {
		if existing.JobID == a.JobID && existing.CandidateID == a.CandidateID {
			return internal.ErrDuplicateApplication
		}
	}
	m.apps[a.ID] = a
	return nil
}

func (m *mockApplicationRepository) GetByID(applicationID string) (*applicationDatamodel.JobApplication, error) {
	a, ok := m.apps[applicationID]
	if !ok {
		return nil, internal.ErrApplicationNotFound
	}
	return a, nil
}

func (m *mockApplicationRepository) List() ([]*applicationDatamodel.JobApplication, error) {
	result := make([]*applicationDatamodel.JobApplication, 0, len(m.apps))
	for _, a := range m.apps {
		result = append(result, a)
	}
	return result, nil
}

func (m *mockApplicationRepository) UpdateStatus(applicationID, status string, at time.Time) error {
	a, ok := m.apps[applicationID]
	if !ok {
		return internal.ErrApplicationNotFound
	}
	a.Status = status
	a.UpdatedAt = at
	return nil
}

type mockJobReader struct {
	jobs map[string]*jobDatamodel.Job
}

func (m *mockJobReader) GetByID(jobID string) (*jobDatamodel.Job, error) {
	j, ok := m.jobs[jobID]
	if !ok {
		return nil, internal.ErrJobNotFound
	}
	return j, nil
}

var _ = ginkgo.Describe("ApplicationService", func() {
	var (
		service  *Service
		mockRepo *mockApplicationRepository
		jobs     *mockJobReader
	)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	candidate := &auth.Actor{ID: 10, Role: auth.RoleCandidate}
	otherCandidate := &auth.Actor{ID: 11, Role: auth.RoleCandidate}
	owner := &auth.Actor{ID: 20, Role: auth.RoleRecruiter}
	otherRecruiter := &auth.Actor{ID: 21, Role: auth.RoleRecruiter}
	staff := &auth.Actor{ID: 30, Role: auth.RoleRecruiter, IsStaff: true}

	ginkgo.BeforeEach(func() {
		mockRepo = newMockApplicationRepository()
		jobs = &mockJobReader{jobs: map[string]*jobDatamodel.Job{
			"j1": {ID: "j1", Title: "Backend Engineer", RecruiterID: 20, Status: "OPEN"},
			"j2": {ID: "j2", Title: "Closed Role", RecruiterID: 20, Status: "CLOSED"},
		}}
		service = NewService(mockRepo, jobs, testLogger)
	})

	ginkgo.Describe("Apply", func() {
		ginkgo.It("should record an APPLIED application for the acting candidate", func() {
			created, err := service.Apply(candidate, ApplyDTO{JobID: "j1"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.Status).To(gomega.Equal(StatusApplied))
			gomega.Expect(created.CandidateID).To(gomega.Equal(int64(10)))
		})

		ginkgo.It("should deny recruiters", func() {
			_, err := service.Apply(owner, ApplyDTO{JobID: "j1"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})

		ginkgo.It("should report an unknown job", func() {
			_, err := service.Apply(candidate, ApplyDTO{JobID: "missing"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrJobNotFound))
		})

		ginkgo.It("should reject a second application to the same job", func() {
			_, err := service.Apply(candidate, ApplyDTO{JobID: "j1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Apply(candidate, ApplyDTO{JobID: "j1"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrDuplicateApplication))
		})

		ginkgo.It("should still accept applications to a closed posting", func() {
			_, err := service.Apply(candidate, ApplyDTO{JobID: "j2"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should allow different candidates on the same job", func() {
			_, err := service.Apply(candidate, ApplyDTO{JobID: "j1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Apply(otherCandidate, ApplyDTO{JobID: "j1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("ListApplications", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.Apply(candidate, ApplyDTO{JobID: "j1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			_, err = service.Apply(otherCandidate, ApplyDTO{JobID: "j1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should give any recruiter the system-wide list", func() {
			apps, err := service.ListApplications(otherRecruiter)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(apps).To(gomega.HaveLen(2))
		})

		ginkgo.It("should deny candidates", func() {
			_, err := service.ListApplications(candidate)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})

		ginkgo.It("should deny anonymous callers", func() {
			_, err := service.ListApplications(nil)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})
	})

	ginkgo.Describe("GetApplication", func() {
		var appID string

		ginkgo.BeforeEach(func() {
			created, err := service.Apply(candidate, ApplyDTO{JobID: "j1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			appID = created.ID
		})

		ginkgo.It("should admit the applicant", func() {
			found, err := service.GetApplication(candidate, appID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(found.ID).To(gomega.Equal(appID))
		})

		ginkgo.It("should admit the job owner", func() {
			_, err := service.GetApplication(owner, appID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should deny an unrelated candidate", func() {
			_, err := service.GetApplication(otherCandidate, appID)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})
	})

	ginkgo.Describe("UpdateStatus", func() {
		var appID string

		ginkgo.BeforeEach(func() {
			created, err := service.Apply(candidate, ApplyDTO{JobID: "j1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			appID = created.ID
		})

		ginkgo.It("should let the job owner hire", func() {
			updated, err := service.UpdateStatus(owner, appID, UpdateStatusDTO{Status: StatusHired})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Status).To(gomega.Equal(StatusHired))
		})

		ginkgo.It("should allow reversing a rejection", func() {
			_, err := service.UpdateStatus(owner, appID, UpdateStatusDTO{Status: StatusRejected})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			updated, err := service.UpdateStatus(owner, appID, UpdateStatusDTO{Status: StatusApplied})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Status).To(gomega.Equal(StatusApplied))
		})

		ginkgo.It("should deny a recruiter who does not own the job", func() {
			_, err := service.UpdateStatus(otherRecruiter, appID, UpdateStatusDTO{Status: StatusHired})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})

		ginkgo.It("should deny the applicant", func() {
			_, err := service.UpdateStatus(candidate, appID, UpdateStatusDTO{Status: StatusHired})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})

		ginkgo.It("should let staff review anything", func() {
			_, err := service.UpdateStatus(staff, appID, UpdateStatusDTO{Status: StatusHired})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should reject an unknown status", func() {
			_, err := service.UpdateStatus(owner, appID, UpdateStatusDTO{Status: "SHORTLISTED"})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})
