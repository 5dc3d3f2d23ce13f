package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"smarttradex/internal/delivery/http/dto"
	"smarttradex/internal/domain"
	"smarttradex/internal/middleware"
	"smarttradex/internal/usecase"
)

// TradeHandler handles simulated trade execution and history requests
type TradeHandler struct {
	trades *usecase.TradeService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(trades *usecase.TradeService) *TradeHandler {
	return &TradeHandler{trades: trades}
}

// Execute records one simulated trade for the authenticated user
// POST /api/trades
func (h *TradeHandler) Execute(c echo.Context) error {
	var req dto.TradeRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return BadRequestResponse(c, "Amount must be a number")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess := middleware.GetSession(c)
	record, err := h.trades.ExecuteTrade(ctx, sess, req.Asset, domain.TradeSide(req.Side), amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return UnauthorizedResponse(c, "Authentication required")
		case errors.Is(err, domain.ErrInvalidAmount):
			return BadRequestResponse(c, "Amount must be positive")
		case errors.Is(err, domain.ErrInvalidSide):
			return BadRequestResponse(c, "Side must be BUY or SELL")
		case errors.Is(err, domain.ErrUnsupportedAsset):
			return BadRequestResponse(c, "Unsupported asset symbol")
		default:
			return InternalServerErrorResponse(c, "Failed to record trade", err)
		}
	}

	return CreatedResponse(c, toTradeOutput(record))
}

// History returns the ledger for the authenticated user, oldest first
// GET /api/trades
func (h *TradeHandler) History(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess := middleware.GetSession(c)
	records, err := h.trades.History(ctx, sess)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return UnauthorizedResponse(c, "Authentication required")
		}
		return InternalServerErrorResponse(c, "Failed to load trade history", err)
	}

	resp := dto.HistoryResponse{Trades: make([]dto.TradeOutput, 0, len(records))}
	for _, record := range records {
		resp.Trades = append(resp.Trades, toTradeOutput(record))
	}

	return SuccessResponse(c, resp)
}

func toTradeOutput(record *domain.TradeRecord) dto.TradeOutput {
	return dto.TradeOutput{
		ID:         record.ID.String(),
		Username:   record.Username,
		Asset:      record.Asset,
		Side:       string(record.Side),
		Amount:     record.Amount.String(),
		ExecutedAt: record.ExecutedAt.Format(time.RFC3339),
	}
}
