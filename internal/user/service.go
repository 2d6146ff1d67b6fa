package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/job-portal/internal"
	"github.com/frahmantamala/job-portal/internal/auth"
	userDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/user"
	"github.com/frahmantamala/job-portal/internal/core/events"
)

type ServiceAPI interface {
	Register(dto RegisterDTO) (*User, error)
	GetUser(actor *auth.Actor, userID int64) (*User, error)
	ListUsers(actor *auth.Actor) ([]*User, error)
	UpdateUser(actor *auth.Actor, userID int64, dto UpdateUserDTO) (*User, error)
	DeactivateUser(actor *auth.Actor, userID int64) error
	GetProfile(actor *auth.Actor, userID int64) (*Profile, error)
	UpsertProfile(actor *auth.Actor, userID int64, dto ProfileDTO) (*Profile, error)
}

type RepositoryAPI interface {
	Create(u *userDatamodel.User) error
	GetByID(userID int64) (*userDatamodel.User, error)
	GetByEmail(email string) (*userDatamodel.User, error)
	List() ([]*userDatamodel.User, error)
	Update(userID int64, fields map[string]interface{}) error
	GetProfile(userID int64) (*userDatamodel.UserProfile, error)
	SaveProfile(p *userDatamodel.UserProfile) error
}

// PasswordHasher is satisfied by the auth service; registration delegates
// hashing so the bcrypt cost lives in one place.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   RepositoryAPI
	hasher PasswordHasher
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, hasher PasswordHasher, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		bus:    bus,
		logger: logger,
	}
}

// Register creates an account with a CANDIDATE or RECRUITER role. The email
// uniqueness check races with the unique index on users.email; the index is
// the authority and the repository maps its violation to the same error.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(dto.Email); err == nil {
		return nil, internal.ErrEmailTaken
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	record := &userDatamodel.User{
		UID:          uuid.NewString(),
		Username:     dto.Username,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		Phone:        dto.Phone,
		PasswordHash: hash,
		Role:         dto.Role,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.repo.Create(record); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", record.ID, "role", record.Role)

	if s.bus != nil {
		if err := s.bus.Publish(context.Background(), events.NewUserRegisteredEvent(record.Email, record.FirstName)); err != nil {
			s.logger.Error("failed to publish registration event", "user_id", record.ID, "error", err)
		}
	}

	return FromDataModel(record), nil
}

func (s *Service) GetUser(actor *auth.Actor, userID int64) (*User, error) {
	if !auth.CanAccessUser(actor, userID) {
		return nil, internal.ErrForbidden
	}

	record, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	return FromDataModel(record), nil
}

// ListUsers returns every account for staff and recruiters; a candidate only
// sees their own record.
func (s *Service) ListUsers(actor *auth.Actor) ([]*User, error) {
	if !auth.CanManageAccounts(actor) {
		return nil, internal.ErrForbidden
	}

	if auth.IsCandidate(actor) && !actor.IsStaff {
		record, err := s.repo.GetByID(actor.ID)
		if err != nil {
			return nil, internal.ErrUserNotFound
		}
		return []*User{FromDataModel(record)}, nil
	}

	records, err := s.repo.List()
	if err != nil {
		return nil, internal.NewInternalError("failed to list users", err)
	}

	return FromDataModelSlice(records), nil
}

func (s *Service) UpdateUser(actor *auth.Actor, userID int64, dto UpdateUserDTO) (*User, error) {
	if !auth.CanAccessUser(actor, userID) {
		return nil, internal.ErrForbidden
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(userID); err != nil {
		return nil, internal.ErrUserNotFound
	}

	fields := map[string]interface{}{"updated_at": time.Now()}
	if dto.Username != nil {
		fields["username"] = *dto.Username
	}
	if dto.FirstName != nil {
		fields["first_name"] = *dto.FirstName
	}
	if dto.LastName != nil {
		fields["last_name"] = *dto.LastName
	}
	if dto.Phone != nil {
		fields["phone"] = *dto.Phone
	}
	if dto.Password != nil {
		hash, err := s.hasher.HashPassword(*dto.Password)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		fields["password_hash"] = hash
	}

	if err := s.repo.Update(userID, fields); err != nil {
		return nil, internal.NewInternalError("failed to update user", err)
	}

	record, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	return FromDataModel(record), nil
}

// DeactivateUser soft-deletes: the row stays so applications keep their
// candidate reference, but the account can no longer log in.
func (s *Service) DeactivateUser(actor *auth.Actor, userID int64) error {
	if !auth.CanAccessUser(actor, userID) {
		return internal.ErrForbidden
	}

	if _, err := s.repo.GetByID(userID); err != nil {
		return internal.ErrUserNotFound
	}

	fields := map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now(),
	}
	if err := s.repo.Update(userID, fields); err != nil {
		return internal.NewInternalError("failed to deactivate user", err)
	}

	s.logger.Info("user deactivated", "user_id", userID, "by", actor.ID)
	return nil
}

// GetProfile creates an empty profile on first read, mirroring lazy
// profile creation on access.
func (s *Service) GetProfile(actor *auth.Actor, userID int64) (*Profile, error) {
	if !auth.CanAccessUser(actor, userID) {
		return nil, internal.ErrForbidden
	}

	if _, err := s.repo.GetByID(userID); err != nil {
		return nil, internal.ErrUserNotFound
	}

	profile, err := s.repo.GetProfile(userID)
	if err != nil {
		profile = &userDatamodel.UserProfile{
			UserID:    userID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.repo.SaveProfile(profile); err != nil {
			return nil, internal.NewInternalError("failed to create profile", err)
		}
	}

	return ProfileFromDataModel(profile), nil
}

func (s *Service) UpsertProfile(actor *auth.Actor, userID int64, dto ProfileDTO) (*Profile, error) {
	if !auth.CanAccessUser(actor, userID) {
		return nil, internal.ErrForbidden
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(userID); err != nil {
		return nil, internal.ErrUserNotFound
	}

	profile, err := s.repo.GetProfile(userID)
	if err != nil {
		profile = &userDatamodel.UserProfile{
			UserID:    userID,
			CreatedAt: time.Now(),
		}
	}

	profile.Photo = dto.Photo
	profile.Bio = dto.Bio
	profile.DateOfBirth = dto.DateOfBirthTime()
	profile.Gender = dto.Gender
	profile.UpdatedAt = time.Now()

	if err := s.repo.SaveProfile(profile); err != nil {
		return nil, internal.NewInternalError("failed to save profile", err)
	}

	return ProfileFromDataModel(profile), nil
}
