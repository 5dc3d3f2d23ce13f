package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeSide is the direction of a simulated trade
type TradeSide string

// TradeSide constants
const (
	SideBuy  TradeSide = "BUY"
	SideSell TradeSide = "SELL"
)

// Valid reports whether the side is one of the known values
func (s TradeSide) Valid() bool {
	return s == SideBuy || s == SideSell
}

// TradeRecord is one entry in the append-only simulation ledger.
// Records are created by the trade service on execution and never
// updated or deleted afterwards.
type TradeRecord struct {
	ID         uuid.UUID       `json:"id"`
	Username   string          `json:"username"`
	Asset      string          `json:"asset"`
	Side       TradeSide       `json:"side"`
	Amount     decimal.Decimal `json:"amount"`
	ExecutedAt time.Time       `json:"executed_at"`
}

// SupportedAssets is the closed set of tradable symbols
var SupportedAssets = []string{"AAPL", "TSLA", "BTC-USD", "ETH-USD", "EURUSD=X"}

// IsSupportedAsset reports whether symbol belongs to the supported set
func IsSupportedAsset(symbol string) bool {
	for _, s := range SupportedAssets {
		if s == symbol {
			return true
		}
	}
	return false
}
