package usecase

import (
	"context"
	"fmt"
	"log"

	"smarttradex/internal/domain"
	"smarttradex/internal/service"
)

// MarketService drives the chart-and-forecast flow: historical prices
// come from the market data gateway (cached), forecasts from the
// external engine. Both are collaborators; when price data is missing
// the flow degrades to a "no data" signal instead of forecasting.
type MarketService struct {
	gateway     domain.MarketDataService
	forecaster  domain.ForecastService
	cache       *service.QuoteCache
	period      string
	horizonDays int
}

// NewMarketService creates a new MarketService
func NewMarketService(
	gateway domain.MarketDataService,
	forecaster domain.ForecastService,
	cache *service.QuoteCache,
	period string,
	horizonDays int,
) *MarketService {
	return &MarketService{
		gateway:     gateway,
		forecaster:  forecaster,
		cache:       cache,
		period:      period,
		horizonDays: horizonDays,
	}
}

// Chart returns the historical close series for a supported symbol.
// An upstream miss (empty series) surfaces as ErrUpstreamUnavailable.
func (s *MarketService) Chart(ctx context.Context, symbol string) (*domain.PriceSeries, error) {
	if !domain.IsSupportedAsset(symbol) {
		return nil, domain.ErrUnsupportedAsset
	}

	series, err := s.load(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if series.Empty() {
		return nil, fmt.Errorf("no price data for %s: %w", symbol, domain.ErrUpstreamUnavailable)
	}

	return series, nil
}

// Forecast fetches the series for symbol and asks the engine for the
// configured horizon. With no price data the engine is never called.
func (s *MarketService) Forecast(ctx context.Context, symbol string) ([]domain.ForecastPoint, error) {
	series, err := s.Chart(ctx, symbol)
	if err != nil {
		return nil, err
	}

	points, err := s.forecaster.FitPredict(ctx, series, s.horizonDays)
	if err != nil {
		return nil, fmt.Errorf("forecast engine failed for %s: %w", symbol, domain.ErrUpstreamUnavailable)
	}

	return points, nil
}

// Refresh re-fetches the series for symbol and stores it in the cache.
// Used by the scheduler; a fetch failure keeps the stale entry.
func (s *MarketService) Refresh(ctx context.Context, symbol string) error {
	series, err := s.gateway.FetchDailySeries(ctx, symbol, s.period)
	if err != nil {
		return err
	}

	if series.Empty() {
		log.Printf("[WARN] Refresh: no data for %s, keeping stale cache", symbol)
		return nil
	}

	s.cache.Set(series)
	return nil
}

// HorizonDays returns the configured forecast horizon
func (s *MarketService) HorizonDays() int {
	return s.horizonDays
}

// load serves from cache when fresh, falling back to a live fetch.
// A live fetch failure with a stale cache entry returns the stale data.
func (s *MarketService) load(ctx context.Context, symbol string) (*domain.PriceSeries, error) {
	if series, fresh := s.cache.Get(symbol); fresh {
		return series, nil
	}

	series, err := s.gateway.FetchDailySeries(ctx, symbol, s.period)
	if err != nil {
		if stale, _ := s.cache.Get(symbol); !stale.Empty() {
			log.Printf("[WARN] Live fetch failed for %s, serving stale cache: %v", symbol, err)
			return stale, nil
		}
		return nil, fmt.Errorf("market data fetch failed for %s: %w", symbol, domain.ErrUpstreamUnavailable)
	}

	if !series.Empty() {
		s.cache.Set(series)
	}

	return series, nil
}
