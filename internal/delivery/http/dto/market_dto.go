package dto

// PricePointOutput represents one daily close in API responses
type PricePointOutput struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// ChartResponse represents the historical chart response
type ChartResponse struct {
	Symbol string             `json:"symbol"`
	Points []PricePointOutput `json:"points"`
}

// ForecastPointOutput represents one predicted value
type ForecastPointOutput struct {
	Date      string  `json:"date"`
	Predicted float64 `json:"predicted"`
}

// ForecastResponse represents the forecast response
type ForecastResponse struct {
	Symbol      string                `json:"symbol"`
	HorizonDays int                   `json:"horizon_days"`
	Points      []ForecastPointOutput `json:"points"`
}
