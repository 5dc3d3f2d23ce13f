package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"smarttradex/internal/domain"
)

// AuthService owns registration and credential matching. Passwords are
// bcrypt-hashed at rest; the hash comparison is the only place a
// presented password is ever checked.
type AuthService struct {
	users domain.CredentialRepository

	// allowDuplicates reproduces the legacy permissive registration:
	// no uniqueness check, no input validation, and login scans every
	// row for the username until one hash matches.
	allowDuplicates bool
}

// NewAuthService creates a new AuthService
func NewAuthService(users domain.CredentialRepository, allowDuplicates bool) *AuthService {
	return &AuthService{
		users:           users,
		allowDuplicates: allowDuplicates,
	}
}

// Register creates a new credential pair. In strict mode (default)
// empty input is rejected with ErrInvalidCredentialInput and an
// existing username with ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if !s.allowDuplicates {
		if username == "" || password == "" {
			return nil, domain.ErrInvalidCredentialInput
		}

		exists, err := s.users.UsernameExists(ctx, username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate looks up the username and compares the presented
// password. Lookup is case-sensitive; a miss or mismatch returns
// ErrNotFound so callers cannot tell the two apart.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if s.allowDuplicates {
		// Duplicate rows may carry different passwords; any row whose
		// hash matches authenticates.
		users, err := s.users.ListByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		for _, user := range users {
			if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil {
				return user, nil
			}
		}
		return nil, domain.ErrNotFound
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrNotFound
	}

	return user, nil
}
