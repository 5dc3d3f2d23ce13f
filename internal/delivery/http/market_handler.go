package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"smarttradex/internal/delivery/http/dto"
	"smarttradex/internal/domain"
	"smarttradex/internal/usecase"
)

const dateLayout = "2006-01-02"

// MarketHandler serves historical charts and forecasts
type MarketHandler struct {
	market *usecase.MarketService
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(market *usecase.MarketService) *MarketHandler {
	return &MarketHandler{market: market}
}

// Chart returns the historical close series for a symbol
// GET /api/market/:symbol/chart
func (h *MarketHandler) Chart(c echo.Context) error {
	symbol := c.Param("symbol")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	series, err := h.market.Chart(ctx, symbol)
	if err != nil {
		return marketError(c, symbol, err)
	}

	resp := dto.ChartResponse{
		Symbol: series.Symbol,
		Points: make([]dto.PricePointOutput, 0, len(series.Points)),
	}
	for _, p := range series.Points {
		resp.Points = append(resp.Points, dto.PricePointOutput{
			Date:  p.Date.Format(dateLayout),
			Close: p.Close,
		})
	}

	return SuccessResponse(c, resp)
}

// Forecast returns the engine's prediction for a symbol
// GET /api/market/:symbol/forecast
func (h *MarketHandler) Forecast(c echo.Context) error {
	symbol := c.Param("symbol")

	// Forecast fitting is slow on long series
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Minute)
	defer cancel()

	points, err := h.market.Forecast(ctx, symbol)
	if err != nil {
		return marketError(c, symbol, err)
	}

	resp := dto.ForecastResponse{
		Symbol:      symbol,
		HorizonDays: h.market.HorizonDays(),
		Points:      make([]dto.ForecastPointOutput, 0, len(points)),
	}
	for _, p := range points {
		resp.Points = append(resp.Points, dto.ForecastPointOutput{
			Date:      p.Date.Format(dateLayout),
			Predicted: p.Predicted,
		})
	}

	return SuccessResponse(c, resp)
}

func marketError(c echo.Context, symbol string, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnsupportedAsset):
		return BadRequestResponse(c, "Unsupported asset symbol")
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return ServiceUnavailableResponse(c, "No data available for "+symbol)
	default:
		return InternalServerErrorResponse(c, "Market data request failed", err)
	}
}
