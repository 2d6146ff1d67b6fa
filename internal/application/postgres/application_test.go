package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/job-portal/internal"
	"github.com/frahmantamala/job-portal/internal/application"
	applicationPostgres "github.com/frahmantamala/job-portal/internal/application/postgres"
	applicationDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/application"
)

func TestApplicationPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Application Postgres Suite")
}

type SQLiteJobApplication struct {
	ID          string    `gorm:"column:id;primaryKey"`
	JobID       string    `gorm:"column:job_id;not null;uniqueIndex:idx_candidate_job,priority:2"`
	CandidateID int64     `gorm:"column:candidate_id;not null;uniqueIndex:idx_candidate_job,priority:1"`
	Status      string    `gorm:"column:status"`
	AppliedAt   time.Time `gorm:"column:applied_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (SQLiteJobApplication) TableName() string { return "job_applications" }

var _ = Describe("Application PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo application.RepositoryAPI
	)

	newApplication := func(id, jobID string, candidateID int64) *applicationDatamodel.JobApplication {
		return &applicationDatamodel.JobApplication{
			ID:          id,
			JobID:       jobID,
			CandidateID: candidateID,
			Status:      application.StatusApplied,
			AppliedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteJobApplication{})
		Expect(err).NotTo(HaveOccurred())

		repo = applicationPostgres.NewRepository(db)
	})

	Describe("Create", func() {
		It("should persist an application", func() {
			Expect(repo.Create(newApplication("a1", "j1", 10))).To(Succeed())

			found, err := repo.GetByID("a1")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(application.StatusApplied))
		})

		It("should reject the same candidate applying twice to one job", func() {
			Expect(repo.Create(newApplication("a1", "j1", 10))).To(Succeed())

			err := repo.Create(newApplication("a2", "j1", 10))
			Expect(err).To(MatchError(internal.ErrDuplicateApplication))
		})

		It("should allow the same candidate on different jobs", func() {
			Expect(repo.Create(newApplication("a1", "j1", 10))).To(Succeed())
			Expect(repo.Create(newApplication("a2", "j2", 10))).To(Succeed())
		})

		It("should allow different candidates on one job", func() {
			Expect(repo.Create(newApplication("a1", "j1", 10))).To(Succeed())
			Expect(repo.Create(newApplication("a2", "j1", 11))).To(Succeed())
		})
	})

	Describe("List", func() {
		It("should return every application regardless of candidate", func() {
			Expect(repo.Create(newApplication("a1", "j1", 10))).To(Succeed())
			Expect(repo.Create(newApplication("a2", "j1", 11))).To(Succeed())

			apps, err := repo.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(apps).To(HaveLen(2))
		})
	})

	Describe("UpdateStatus", func() {
		It("should persist the new status", func() {
			Expect(repo.Create(newApplication("a1", "j1", 10))).To(Succeed())

			err := repo.UpdateStatus("a1", application.StatusHired, time.Now())
			Expect(err).NotTo(HaveOccurred())

			found, err := repo.GetByID("a1")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(application.StatusHired))
		})
	})
})
