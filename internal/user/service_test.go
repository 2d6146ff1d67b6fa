package user

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/job-portal/internal"
	"github.com/frahmantamala/job-portal/internal/auth"
	userDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/user"
)

func TestUser(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "User Module Suite")
}

type mockUserRepository struct {
	users    map[int64]*userDatamodel.User
	profiles map[int64]*userDatamodel.UserProfile
	nextID   int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users: map[int64]*userDatamodel.User{
			1: {ID: 1, UID: "uid-1", Email: "candidate@example.com", Role: "CANDIDATE", IsActive: true},
			2: {ID: 2, UID: "uid-2", Email: "recruiter@example.com", Role: "RECRUITER", IsActive: true},
		},
		profiles: map[int64]*userDatamodel.UserProfile{},
		nextID:   3,
	}
}

func (m *mockUserRepository) Create(u *userDatamodel.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return internal.ErrEmailTaken
		}
	}
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepository) GetByID(userID int64) (*userDatamodel.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

func (m *mockUserRepository) List() ([]*userDatamodel.User, error) {
	result := make([]*userDatamodel.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, nil
}

func (m *mockUserRepository) Update(userID int64, fields map[string]interface{}) error {
	u, ok := m.users[userID]
	if !ok {
		return internal.ErrUserNotFound
	}
	if v, ok := fields["username"]; ok {
		u.Username = v.(string)
	}
	if v, ok := fields["first_name"]; ok {
		u.FirstName = v.(string)
	}
	if v, ok := fields["phone"]; ok {
		u.Phone = v.(string)
	}
	if v, ok := fields["password_hash"]; ok {
		u.PasswordHash = v.(string)
	}
	if v, ok := fields["is_active"]; ok {
		u.IsActive = v.(bool)
	}
	return nil
}

func (m *mockUserRepository) GetProfile(userID int64) (*userDatamodel.UserProfile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, errors.New("profile not found")
	}
	return p, nil
}

func (m *mockUserRepository) SaveProfile(p *userDatamodel.UserProfile) error {
	m.profiles[p.UserID] = p
	return nil
}

type stubHasher struct{}

func (stubHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

var _ = ginkgo.Describe("UserService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
	)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	candidate := &auth.Actor{ID: 1, Role: auth.RoleCandidate}
	recruiter := &auth.Actor{ID: 2, Role: auth.RoleRecruiter}

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		service = NewService(mockRepo, stubHasher{}, nil, testLogger)
	})

	ginkgo.Describe("Register", func() {
		validDTO := func() RegisterDTO {
			return RegisterDTO{
				Username:        "newbie",
				FirstName:       "New",
				Email:           "new@example.com",
				Role:            "CANDIDATE",
				Password:        "secret-enough",
				ConfirmPassword: "secret-enough",
			}
		}

		ginkgo.It("should create an active account with a generated uid", func() {
			created, err := service.Register(validDTO())

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.ID).To(gomega.BeNumerically(">", 0))
			gomega.Expect(created.UID).ToNot(gomega.BeEmpty())
			gomega.Expect(created.IsActive).To(gomega.BeTrue())
			gomega.Expect(mockRepo.users[created.ID].PasswordHash).To(gomega.Equal("hashed:secret-enough"))
		})

		ginkgo.It("should lowercase the email", func() {
			dto := validDTO()
			dto.Email = "New@Example.COM"

			created, err := service.Register(dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.Email).To(gomega.Equal("new@example.com"))
		})

		ginkgo.It("should reject a duplicate email", func() {
			dto := validDTO()
			dto.Email = "candidate@example.com"

			_, err := service.Register(dto)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrEmailTaken))
		})

		ginkgo.It("should reject an invalid role", func() {
			dto := validDTO()
			dto.Role = "ADMIN"

			_, err := service.Register(dto)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should reject a malformed email", func() {
			dto := validDTO()
			dto.Email = "not-an-email"

			_, err := service.Register(dto)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should reject a short password", func() {
			dto := validDTO()
			dto.Password = "abc"
			dto.ConfirmPassword = "abc"

			_, err := service.Register(dto)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("GetUser", func() {
		ginkgo.It("should deny a candidate reading another account", func() {
			_, err := service.GetUser(candidate, 2)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})

		ginkgo.It("should let a candidate read their own account", func() {
			found, err := service.GetUser(candidate, 1)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(found.Email).To(gomega.Equal("candidate@example.com"))
		})

		ginkgo.It("should let a recruiter read any account", func() {
			found, err := service.GetUser(recruiter, 1)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(found.ID).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("should report a missing account", func() {
			_, err := service.GetUser(recruiter, 99)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUserNotFound))
		})
	})

	ginkgo.Describe("ListUsers", func() {
		ginkgo.It("should give a recruiter the full directory", func() {
			users, err := service.ListUsers(recruiter)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(users).To(gomega.HaveLen(2))
		})

		ginkgo.It("should scope a candidate to their own record", func() {
			users, err := service.ListUsers(candidate)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(users).To(gomega.HaveLen(1))
			gomega.Expect(users[0].ID).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("should deny an anonymous caller", func() {
			_, err := service.ListUsers(nil)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})
	})

	ginkgo.Describe("UpdateUser", func() {
		ginkgo.It("should apply only the supplied fields", func() {
			name := "renamed"
			updated, err := service.UpdateUser(candidate, 1, UpdateUserDTO{Username: &name})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Username).To(gomega.Equal("renamed"))
			gomega.Expect(updated.Email).To(gomega.Equal("candidate@example.com"))
		})

		ginkgo.It("should rehash a changed password", func() {
			password := "fresh-password"
			_, err := service.UpdateUser(candidate, 1, UpdateUserDTO{
				Password:        &password,
				ConfirmPassword: &password,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.users[1].PasswordHash).To(gomega.Equal("hashed:fresh-password"))
		})

		ginkgo.It("should reject a password change without matching confirmation", func() {
			password := "fresh-password"
			other := "different"
			_, err := service.UpdateUser(candidate, 1, UpdateUserDTO{
				Password:        &password,
				ConfirmPassword: &other,
			})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should deny cross-account updates by candidates", func() {
			name := "sneaky"
			_, err := service.UpdateUser(candidate, 2, UpdateUserDTO{Username: &name})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})
	})

	ginkgo.Describe("DeactivateUser", func() {
		ginkgo.It("should flip is_active and keep the row", func() {
			err := service.DeactivateUser(recruiter, 1)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.users[1].IsActive).To(gomega.BeFalse())
		})

		ginkgo.It("should report a missing account", func() {
			err := service.DeactivateUser(recruiter, 99)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUserNotFound))
		})
	})

	ginkgo.Describe("Profiles", func() {
		ginkgo.It("should create an empty profile on first read", func() {
			profile, err := service.GetProfile(candidate, 1)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(profile.UserID).To(gomega.Equal(int64(1)))
			gomega.Expect(mockRepo.profiles).To(gomega.HaveKey(int64(1)))
		})

		ginkgo.It("should upsert profile fields", func() {
			_, err := service.UpsertProfile(candidate, 1, ProfileDTO{
				Bio:         "hello",
				DateOfBirth: "1995-04-02",
				Gender:      "F",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			profile, err := service.GetProfile(candidate, 1)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(profile.Bio).To(gomega.Equal("hello"))
			gomega.Expect(profile.DateOfBirth).ToNot(gomega.BeNil())
		})

		ginkgo.It("should reject a malformed date of birth", func() {
			_, err := service.UpsertProfile(candidate, 1, ProfileDTO{DateOfBirth: "02/04/1995"})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should deny candidates reading another user's profile", func() {
			_, err := service.GetProfile(candidate, 2)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrForbidden))
		})
	})
})
