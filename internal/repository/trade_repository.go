package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"smarttradex/internal/domain"
)

// TradeRepositoryImpl implements the TradeRepository interface
type TradeRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *pgxpool.Pool) domain.TradeRepository {
	return &TradeRepositoryImpl{db: db}
}

// Append durably persists one trade record. A single INSERT keeps the
// write atomic per record even with multiple processes on the store.
func (r *TradeRepositoryImpl) Append(ctx context.Context, record *domain.TradeRecord) error {
	query := `
		INSERT INTO trades (
			id, username, asset, side, amount, executed_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.Username,
		record.Asset,
		string(record.Side),
		record.Amount,
		record.ExecutedAt,
	)

	if err != nil {
		return domain.NewStorageError("append trade", err)
	}

	return nil
}

// ListForUser retrieves all records for a username ordered by
// executed_at ascending. The id tiebreak keeps the order deterministic
// for records stamped within the same microsecond.
func (r *TradeRepositoryImpl) ListForUser(ctx context.Context, username string) ([]*domain.TradeRecord, error) {
	query := `
		SELECT id, username, asset, side, amount, executed_at
		FROM trades
		WHERE username = $1
		ORDER BY executed_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, domain.NewStorageError("list trades for user", err)
	}
	defer rows.Close()

	var records []*domain.TradeRecord
	for rows.Next() {
		record := &domain.TradeRecord{}
		var side string
		err := rows.Scan(
			&record.ID,
			&record.Username,
			&record.Asset,
			&side,
			&record.Amount,
			&record.ExecutedAt,
		)
		if err != nil {
			return nil, domain.NewStorageError("scan trade", err)
		}
		record.Side = domain.TradeSide(side)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("iterate trades", err)
	}

	return records, nil
}
