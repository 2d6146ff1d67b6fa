package job

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/job-portal/internal"
	"github.com/frahmantamala/job-portal/internal/auth"
	jobDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/job"
)

func TestJob(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Job Module Suite")
}

type mockJobRepository struct {
	jobs map[string]*jobDatamodel.Job
}

func newMockJobRepository() *mockJobRepository {
	return &mockJobRepository{jobs: map[string]*jobDatamodel.Job{}}
}

func (m *mockJobRepository) Create(j *jobDatamodel.Job) error {
	for _, existing := range m.jobs {
		if existing.Title == j.Title {
			return internal.ErrJobTitleTaken
		}
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepository) GetByID(jobID string) (*jobDatamodel.Job, error) {
	j, ok := m.jobs[jobID]
	if !ok {
		return nil, internal.ErrJobNotFound
	}
	return j, nil
}

func (m *mockJobRepository) List() ([]*jobDatamodel.Job, error) {
	result := make([]*jobDatamodel.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		result = append(result, j)
	}
	return result, nil
}

func (m *mockJobRepository) Update(jobID string, fields map[string]interface{}) error {
	j, ok := m.jobs[jobID]
	if !ok {
		return internal.ErrJobNotFound
	}
	if v, ok := fields["title"]; ok {
		j.Title = v.(string)
	}
	if v, ok := fields["salary"]; ok {
		j.Salary = v.(int64)
	}
	if v, ok := fields["status"]; ok {
		j.Status = v.(string)
	}
	if v, ok := fields["deadline"]; ok {
		j.Deadline = v.(time.Time)
	}
	return nil
}

func (m *mockJobRepository) Delete(jobID string) error {
	delete(m.jobs, jobID)
	return nil
}

var _ = ginkgo.Describe("JobService", func() {
	var (
		service  *Service
		mockRepo *mockJobRepository
	)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recruiter := &auth.Actor{ID: 20, Role: auth.RoleRecruiter}
	otherRecruiter := &auth.Actor{ID: 21, Role: auth.RoleRecruiter}
	candidate := &auth.Actor{ID: 10, Role: auth.RoleCandidate}
	staff := &auth.Actor{ID: 30, Role: auth.RoleRecruiter, IsStaff: true}

	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")

	validDTO := func() CreateJobDTO {
		return CreateJobDTO{
			Title:       "Backend Engineer",
			Description: "Go services",
			Location:    "Jakarta",
			Salary:      15_000_000,
			Deadline:    future,
		}
	}

	ginkgo.BeforeEach(func() {
		mockRepo = newMockJobRepository()
		service = NewService(mockRepo, testLogger)
	})

	ginkgo.Describe("CreateJob", func() {
		ginkgo.It("should create an OPEN posting owned by the recruiter", func() {
			created, err := service.CreateJob(recruiter, validDTO())

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.Status).To(gomega.Equal(StatusOpen))
			gomega.Expect(created.RecruiterID).To(gomega.Equal(int64(20)))
			gomega.Expect(created.ID).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should deny candidates", func() {
			_, err := service.CreateJob(candidate, validDTO())
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})

		ginkgo.It("should reject a non-positive salary", func() {
			dto := validDTO()
			dto.Salary = 0

			_, err := service.CreateJob(recruiter, dto)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should reject a past deadline", func() {
			dto := validDTO()
			dto.Deadline = "2020-01-01"

			_, err := service.CreateJob(recruiter, dto)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should reject today's date as deadline", func() {
			dto := validDTO()
			dto.Deadline = time.Now().Format("2006-01-02")

			_, err := service.CreateJob(recruiter, dto)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should accept tomorrow as deadline", func() {
			dto := validDTO()
			dto.Deadline = time.Now().AddDate(0, 0, 1).Format("2006-01-02")

			_, err := service.CreateJob(recruiter, dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should surface a duplicate title", func() {
			_, err := service.CreateJob(recruiter, validDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.CreateJob(otherRecruiter, validDTO())
			gomega.Expect(err).To(gomega.MatchError(internal.ErrJobTitleTaken))
		})
	})

	ginkgo.Describe("ListJobs", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.CreateJob(recruiter, validDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should give recruiters every posting", func() {
			jobs, err := service.ListJobs(otherRecruiter)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(jobs).To(gomega.HaveLen(1))
		})

		ginkgo.It("should give candidates an empty list", func() {
			jobs, err := service.ListJobs(candidate)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(jobs).To(gomega.BeEmpty())
		})

		ginkgo.It("should deny anonymous callers", func() {
			_, err := service.ListJobs(nil)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})
	})

	ginkgo.Describe("UpdateJob", func() {
		var jobID string

		ginkgo.BeforeEach(func() {
			created, err := service.CreateJob(recruiter, validDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			jobID = created.ID
		})

		ginkgo.It("should let the owner close the posting", func() {
			status := StatusClosed
			updated, err := service.UpdateJob(recruiter, jobID, UpdateJobDTO{Status: &status})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Status).To(gomega.Equal(StatusClosed))
		})

		ginkgo.It("should deny another recruiter", func() {
			status := StatusClosed
			_, err := service.UpdateJob(otherRecruiter, jobID, UpdateJobDTO{Status: &status})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})

		ginkgo.It("should let staff update any posting", func() {
			salary := int64(20_000_000)
			updated, err := service.UpdateJob(staff, jobID, UpdateJobDTO{Salary: &salary})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Salary).To(gomega.Equal(int64(20_000_000)))
		})

		ginkgo.It("should reject an unknown status", func() {
			status := "PAUSED"
			_, err := service.UpdateJob(recruiter, jobID, UpdateJobDTO{Status: &status})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should report a missing posting", func() {
			status := StatusClosed
			_, err := service.UpdateJob(recruiter, "missing", UpdateJobDTO{Status: &status})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrJobNotFound))
		})
	})

	ginkgo.Describe("DeleteJob", func() {
		var jobID string

		ginkgo.BeforeEach(func() {
			created, err := service.CreateJob(recruiter, validDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			jobID = created.ID
		})

		ginkgo.It("should let the owner delete", func() {
			gomega.Expect(service.DeleteJob(recruiter, jobID)).To(gomega.Succeed())

			_, err := service.GetJob(recruiter, jobID)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrJobNotFound))
		})

		ginkgo.It("should deny non-owners", func() {
			err := service.DeleteJob(otherRecruiter, jobID)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})
	})
})
