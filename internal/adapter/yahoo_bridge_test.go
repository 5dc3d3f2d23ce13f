package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const chartPayload = `{
	"chart": {
		"result": [{
			"timestamp": [1767225600, 1767312000, 1767398400],
			"indicators": {
				"quote": [{
					"close": [100.5, null, 102.25]
				}]
			}
		}],
		"error": null
	}
}`

func TestFetchDailySeriesParsesCloses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/AAPL", r.URL.Path)
		assert.Equal(t, "1y", r.URL.Query().Get("range"))
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		fmt.Fprint(w, chartPayload)
	}))
	defer srv.Close()

	bridge := NewYahooBridge(srv.URL)
	series, err := bridge.FetchDailySeries(context.Background(), "AAPL", "1y")
	assert.NoError(t, err)
	assert.Equal(t, "AAPL", series.Symbol)

	// Null close dropped
	assert.Len(t, series.Points, 2)
	assert.Equal(t, 100.5, series.Points[0].Close)
	assert.Equal(t, 102.25, series.Points[1].Close)
	assert.Equal(t, time.Unix(1767225600, 0).UTC(), series.Points[0].Date)
}

func TestFetchDailySeriesUnknownSymbolIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	bridge := NewYahooBridge(srv.URL)
	series, err := bridge.FetchDailySeries(context.Background(), "ZZZ", "1y")
	assert.NoError(t, err)
	assert.True(t, series.Empty())
}

func TestFetchDailySeriesEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart": {"result": [], "error": {"code": "Not Found", "description": "No data"}}}`)
	}))
	defer srv.Close()

	bridge := NewYahooBridge(srv.URL)
	series, err := bridge.FetchDailySeries(context.Background(), "ZZZ", "1y")
	assert.NoError(t, err)
	assert.True(t, series.Empty())
}

func TestFetchDailySeriesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	bridge := NewYahooBridge(srv.URL)
	_, err := bridge.FetchDailySeries(context.Background(), "AAPL", "1y")
	assert.Error(t, err)
}

func TestFetchDailySeriesEscapesSymbol(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		fmt.Fprint(w, `{"chart": {"result": [], "error": null}}`)
	}))
	defer srv.Close()

	bridge := NewYahooBridge(srv.URL)
	_, err := bridge.FetchDailySeries(context.Background(), "EURUSD=X", "1y")
	assert.NoError(t, err)
	assert.Equal(t, "/v8/finance/chart/EURUSD=X", gotPath)
}
