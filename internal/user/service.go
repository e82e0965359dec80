package user

import (
	"log/slog"
	"time"

	errors "github.com/frahmantamala/cashbook-management/internal"
)

// Repository defines the data access methods for users.
type Repository interface {
	Create(u *User) error
	GetByUsername(username string) (*User, error)
	GetByNationalID(nationalID string) (*User, error)
	CountByRole(role Role) (int64, error)
}

// Service handles registration and authentication.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Register validates and persists a new user. Duplicate usernames and
// national ids are rejected before touching the stored rows, so a failed
// registration leaves existing users untouched.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("user validation failed", "error", err, "username", dto.Username)
		return nil, err
	}

	if _, err := s.repo.GetByUsername(dto.Username); err == nil {
		s.logger.Warn("registration rejected: username taken", "username", dto.Username)
		return nil, errors.ErrDuplicateUser
	}
	if _, err := s.repo.GetByNationalID(dto.NationalID); err == nil {
		s.logger.Warn("registration rejected: national id taken", "national_id", dto.NationalID)
		return nil, errors.ErrDuplicateUser
	}

	u := &User{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		NationalID:   dto.NationalID,
		Username:     dto.Username,
		PasswordHash: HashPassword(dto.Password),
		Role:         dto.Role,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "username", dto.Username)
		return nil, err
	}

	s.logger.Info("user registered", "username", u.Username, "role", u.Role)
	return u, nil
}

// Authenticate returns the user iff the username exists and the stored hash
// matches the hash of the supplied password. No lockout, no rate limiting.
func (s *Service) Authenticate(dto CredentialsDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByUsername(dto.Username)
	if err != nil {
		s.logger.Warn("login failed: unknown username", "username", dto.Username)
		return nil, errors.ErrInvalidCredentials
	}

	if !CheckPassword(dto.Password, u.PasswordHash) {
		s.logger.Warn("login failed: wrong password", "username", dto.Username)
		return nil, errors.ErrInvalidCredentials
	}

	s.logger.Info("user authenticated", "username", u.Username, "role", u.Role)
	return u, nil
}

// HasMaster reports whether at least one master user exists. The caller is
// expected to force master creation on first run when it returns false.
func (s *Service) HasMaster() (bool, error) {
	count, err := s.repo.CountByRole(RoleMaster)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureMaster registers the given user as master only when no master user
// exists yet. Returns the created user, or nil when a master was already
// present.
func (s *Service) EnsureMaster(dto RegisterDTO) (*User, error) {
	hasMaster, err := s.HasMaster()
	if err != nil {
		return nil, err
	}
	if hasMaster {
		s.logger.Info("master user already present, skipping seed")
		return nil, nil
	}

	dto.Role = RoleMaster
	return s.Register(dto)
}

// GetByUsername resolves a username to its stored user row. Spreadsheet
// import uses this to skip rows whose username is unknown.
func (s *Service) GetByUsername(username string) (*User, error) {
	u, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	return u, nil
}
