package domain

import "context"

// MarketDataService defines the interface for fetching historical prices
type MarketDataService interface {
	// FetchDailySeries returns daily closes for symbol over the given
	// period (e.g. "1y"). An empty series means no data, not an error.
	FetchDailySeries(ctx context.Context, symbol, period string) (*PriceSeries, error)
}

// ForecastService defines the interface to the external forecast engine
type ForecastService interface {
	// FitPredict sends the series to the engine and returns predicted
	// values for the next horizonDays periods. The series is passed
	// through unmodified; the model behind it is opaque.
	FitPredict(ctx context.Context, series *PriceSeries, horizonDays int) ([]ForecastPoint, error)
}
