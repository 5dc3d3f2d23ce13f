package domain

import (
	"context"
)

// CredentialRepository defines the interface for credential operations
type CredentialRepository interface {
	// Create persists a new user with an already-hashed password
	Create(ctx context.Context, user *User) error

	// GetByUsername retrieves the first user with the given username,
	// in insertion order. Returns ErrNotFound on a miss.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// ListByUsername retrieves every user row carrying the username,
	// in insertion order. More than one row is possible when duplicate
	// registration is allowed.
	ListByUsername(ctx context.Context, username string) ([]*User, error)

	// UsernameExists reports whether at least one row has the username
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// TradeRepository defines the interface for the append-only trade ledger
type TradeRepository interface {
	// Append durably persists one trade record as a single write
	Append(ctx context.Context, record *TradeRecord) error

	// ListForUser retrieves all records for a username ordered by
	// executed_at ascending
	ListForUser(ctx context.Context, username string) ([]*TradeRecord, error)
}
