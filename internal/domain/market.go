package domain

import "time"

// PricePoint is one daily closing price
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceSeries holds the historical closes for one symbol, ordered by
// date ascending
type PriceSeries struct {
	Symbol    string       `json:"symbol"`
	Points    []PricePoint `json:"points"`
	FetchedAt time.Time    `json:"fetched_at"`
}

// Empty reports whether the series carries no data points
func (s *PriceSeries) Empty() bool {
	return s == nil || len(s.Points) == 0
}

// ForecastPoint is one predicted value from the forecast engine
type ForecastPoint struct {
	Date      time.Time `json:"date"`
	Predicted float64   `json:"predicted"`
}
