package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smarttradex/internal/domain"
)

// UserRepositoryImpl implements the CredentialRepository interface
type UserRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new CredentialRepository
func NewUserRepository(db *pgxpool.Pool) domain.CredentialRepository {
	return &UserRepositoryImpl{db: db}
}

// Create persists a new user with an already-hashed password
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (
			id, username, password_hash, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		return domain.NewStorageError("create user", err)
	}

	return nil
}

// GetByUsername retrieves the first user with the given username in
// insertion order
func (r *UserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
		ORDER BY created_at ASC
		LIMIT 1
	`

	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewStorageError("get user by username", err)
	}

	return user, nil
}

// ListByUsername retrieves every user row carrying the username in
// insertion order. More than one row exists only when duplicate
// registration is allowed.
func (r *UserRepositoryImpl) ListByUsername(ctx context.Context, username string) ([]*domain.User, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, domain.NewStorageError("list users by username", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, domain.NewStorageError("scan user", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("iterate users", err)
	}

	return users, nil
}

// UsernameExists reports whether at least one row has the username
func (r *UserRepositoryImpl) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, domain.NewStorageError("check username exists", err)
	}

	return exists, nil
}
