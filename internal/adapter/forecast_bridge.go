package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"smarttradex/internal/domain"
)

const forecastDateLayout = "2006-01-02"

// ForecastBridge implements ForecastService against the Python
// forecasting engine. The engine owns the model; this side only ships
// the series over and maps the predicted points back.
type ForecastBridge struct {
	baseURL    string
	httpClient *http.Client
}

// NewForecastBridge creates a new forecast engine bridge
func NewForecastBridge(baseURL string) *ForecastBridge {
	return &ForecastBridge{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // model fitting can take time
		},
	}
}

// forecastRequest is the payload sent to the engine
type forecastRequest struct {
	Symbol      string          `json:"symbol"`
	HorizonDays int             `json:"horizon_days"`
	Series      []forecastPoint `json:"series"`
}

type forecastPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// forecastResponse is the payload returned by the engine
type forecastResponse struct {
	Forecast []forecastPoint `json:"forecast"`
}

// FitPredict sends the series to the engine and returns predicted
// values for the next horizonDays periods
func (b *ForecastBridge) FitPredict(ctx context.Context, series *domain.PriceSeries, horizonDays int) ([]domain.ForecastPoint, error) {
	reqBody := forecastRequest{
		Symbol:      series.Symbol,
		HorizonDays: horizonDays,
		Series:      make([]forecastPoint, 0, len(series.Points)),
	}
	for _, p := range series.Points {
		reqBody.Series = append(reqBody.Series, forecastPoint{
			Date:  p.Date.Format(forecastDateLayout),
			Value: p.Close,
		})
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal forecast request: %w", err)
	}

	url := fmt.Sprintf("%s/forecast", b.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call forecast engine: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("forecast engine returned error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var forecastResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecastResp); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	points := make([]domain.ForecastPoint, 0, len(forecastResp.Forecast))
	for _, p := range forecastResp.Forecast {
		date, err := time.Parse(forecastDateLayout, p.Date)
		if err != nil {
			return nil, fmt.Errorf("unable to parse forecast date %q: %w", p.Date, err)
		}
		points = append(points, domain.ForecastPoint{
			Date:      date,
			Predicted: p.Value,
		})
	}

	return points, nil
}

// HealthCheck checks if the forecast engine is healthy
func (b *ForecastBridge) HealthCheck(ctx context.Context) error {
	url := fmt.Sprintf("%s/health", b.baseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to check forecast engine health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("forecast engine is unhealthy: status=%d", resp.StatusCode)
	}

	return nil
}
