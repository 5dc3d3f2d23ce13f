package dto

// TradeRequest represents the execute-trade request payload. Amount is
// a string so decimal values survive the wire without float rounding.
type TradeRequest struct {
	Asset  string `json:"asset" validate:"required"`
	Side   string `json:"side" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

// TradeOutput represents one ledger record in API responses
type TradeOutput struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Asset      string `json:"asset"`
	Side       string `json:"side"`
	Amount     string `json:"amount"`
	ExecutedAt string `json:"executed_at"`
}

// HistoryResponse represents the trade history response
type HistoryResponse struct {
	Trades []TradeOutput `json:"trades"`
}
