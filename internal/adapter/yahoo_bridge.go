package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"smarttradex/internal/domain"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooBridge implements MarketDataService against the Yahoo Finance
// chart API
type YahooBridge struct {
	baseURL    string
	httpClient *http.Client
}

// NewYahooBridge creates a new Yahoo Finance market data bridge.
// An empty baseURL selects the public endpoint.
func NewYahooBridge(baseURL string) domain.MarketDataService {
	if baseURL == "" {
		baseURL = yahooBaseURL
	}
	return &YahooBridge{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// chartResponse mirrors the subset of the v8 chart payload we read
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchDailySeries fetches daily closes for symbol over the given
// period. An unknown symbol yields an empty series, not an error, so
// the caller can degrade to a "no data" signal.
func (b *YahooBridge) FetchDailySeries(ctx context.Context, symbol, period string) (*domain.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		b.baseURL, url.PathEscape(symbol), url.QueryEscape(period))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "smarttradex/1.0")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chart from Yahoo: %w", err)
	}
	defer resp.Body.Close()

	// Yahoo answers 404 for symbols it does not know
	if resp.StatusCode == http.StatusNotFound {
		return &domain.PriceSeries{Symbol: symbol, FetchedAt: time.Now()}, nil
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Yahoo chart API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var chart chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}

	series := &domain.PriceSeries{Symbol: symbol, FetchedAt: time.Now()}

	if chart.Chart.Error != nil || len(chart.Chart.Result) == 0 {
		return series, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return series, nil
	}

	closes := result.Indicators.Quote[0].Close
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			// Null closes show up on partial bars, skip them
			continue
		}
		series.Points = append(series.Points, domain.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}

	return series, nil
}
