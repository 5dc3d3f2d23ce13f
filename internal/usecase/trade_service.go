package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"smarttradex/internal/domain"
	"smarttradex/internal/session"
)

// TradeService validates trade requests against session state and
// commits them to the ledger. It performs no balance, position or
// price checks: the ledger records simulated trades, it does not
// execute them, so Buy and Sell never net against each other.
type TradeService struct {
	ledger domain.TradeRepository
}

// NewTradeService creates a new TradeService
func NewTradeService(ledger domain.TradeRepository) *TradeService {
	return &TradeService{ledger: ledger}
}

// ExecuteTrade validates the request, stamps it with the session's
// username and the current time, and appends it to the ledger. The
// record is visible to History as soon as ExecuteTrade returns.
func (s *TradeService) ExecuteTrade(ctx context.Context, sess *session.Session, asset string, side domain.TradeSide, amount decimal.Decimal) (*domain.TradeRecord, error) {
	username, ok := sess.CurrentUser()
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if !side.Valid() {
		return nil, domain.ErrInvalidSide
	}

	if !domain.IsSupportedAsset(asset) {
		return nil, domain.ErrUnsupportedAsset
	}

	if amount.Cmp(decimal.Zero) <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	record := &domain.TradeRecord{
		ID:         uuid.New(),
		Username:   username,
		Asset:      asset,
		Side:       side,
		Amount:     amount,
		ExecutedAt: time.Now(),
	}

	if err := s.ledger.Append(ctx, record); err != nil {
		return nil, err
	}

	log.Printf("[OK] Trade recorded: %s %s %s %s", username, side, amount.String(), asset)

	return record, nil
}

// History returns all ledger records for the session's user, oldest
// first
func (s *TradeService) History(ctx context.Context, sess *session.Session) ([]*domain.TradeRecord, error) {
	username, ok := sess.CurrentUser()
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.ledger.ListForUser(ctx, username)
}
