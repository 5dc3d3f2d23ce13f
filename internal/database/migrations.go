package database

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/001_init_schema.sql
var migrationSQL string

// RunMigrations runs database migrations on startup. The username
// uniqueness constraint is applied separately because it is a
// configuration choice, not part of the base schema.
func RunMigrations(db *pgxpool.Pool, allowDuplicateUsernames bool) error {
	ctx := context.Background()

	log.Println("Running database migrations...")

	if _, err := db.Exec(ctx, migrationSQL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if allowDuplicateUsernames {
		// Legacy permissive mode: the toggle must work both ways
		if _, err := db.Exec(ctx, `DROP INDEX IF EXISTS users_username_unique`); err != nil {
			return fmt.Errorf("failed to drop username uniqueness index: %w", err)
		}
	} else {
		_, err := db.Exec(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS users_username_unique ON users (username)`)
		if err != nil {
			return fmt.Errorf("failed to enforce username uniqueness: %w", err)
		}
	}

	log.Println("[OK] Database migrations completed")
	return nil
}
