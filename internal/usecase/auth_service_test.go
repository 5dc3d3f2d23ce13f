package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"smarttradex/internal/domain"
)

// mockCredentialRepo keeps users in insertion order so duplicate
// registration behaves like the real store
type mockCredentialRepo struct {
	users   []*domain.User
	failAll error
}

func newMockCredentialRepo() *mockCredentialRepo {
	return &mockCredentialRepo{}
}

func (m *mockCredentialRepo) Create(ctx context.Context, user *domain.User) error {
	if m.failAll != nil {
		return m.failAll
	}
	m.users = append(m.users, user)
	return nil
}

func (m *mockCredentialRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCredentialRepo) ListByUsername(ctx context.Context, username string) ([]*domain.User, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	var result []*domain.User
	for _, u := range m.users {
		if u.Username == username {
			result = append(result, u)
		}
	}
	return result, nil
}

func (m *mockCredentialRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.failAll != nil {
		return false, m.failAll
	}
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func TestRegisterThenAuthenticate(t *testing.T) {
	repo := newMockCredentialRepo()
	svc := NewAuthService(repo, false)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "pw1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "pw1", user.PasswordHash, "password must not be stored in plain text")

	got, err := svc.Authenticate(ctx, "alice", "pw1")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newMockCredentialRepo()
	svc := NewAuthService(repo, false)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	assert.NoError(t, err)

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := NewAuthService(newMockCredentialRepo(), false)

	_, err := svc.Authenticate(context.Background(), "nobody", "pw")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthenticateIsCaseSensitive(t *testing.T) {
	repo := newMockCredentialRepo()
	svc := NewAuthService(repo, false)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "pw1")
	assert.NoError(t, err)

	_, err = svc.Authenticate(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterDuplicateRejectedInStrictMode(t *testing.T) {
	repo := newMockCredentialRepo()
	svc := NewAuthService(repo, false)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	assert.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Len(t, repo.users, 1)
}

func TestRegisterEmptyInputRejectedInStrictMode(t *testing.T) {
	svc := NewAuthService(newMockCredentialRepo(), false)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "pw")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentialInput)

	_, err = svc.Register(ctx, "alice", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentialInput)
}

func TestDuplicateModeAcceptsDuplicatesAndEmptyInput(t *testing.T) {
	repo := newMockCredentialRepo()
	svc := NewAuthService(repo, true)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	assert.NoError(t, err)
	_, err = svc.Register(ctx, "alice", "pw2")
	assert.NoError(t, err)
	_, err = svc.Register(ctx, "", "")
	assert.NoError(t, err)
	assert.Len(t, repo.users, 3)
}

func TestDuplicateModeAuthenticatesAnyValidPassword(t *testing.T) {
	repo := newMockCredentialRepo()
	svc := NewAuthService(repo, true)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	assert.NoError(t, err)
	_, err = svc.Register(ctx, "alice", "pw2")
	assert.NoError(t, err)

	// Both passwords registered under the name must authenticate
	_, err = svc.Authenticate(ctx, "alice", "pw1")
	assert.NoError(t, err)
	_, err = svc.Authenticate(ctx, "alice", "pw2")
	assert.NoError(t, err)

	_, err = svc.Authenticate(ctx, "alice", "pw3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterPropagatesStorageError(t *testing.T) {
	repo := newMockCredentialRepo()
	repo.failAll = domain.NewStorageError("create user", assert.AnError)
	svc := NewAuthService(repo, true)

	_, err := svc.Register(context.Background(), "alice", "pw1")
	assert.True(t, domain.IsStorageError(err))
}
