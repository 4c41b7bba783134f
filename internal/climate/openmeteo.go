package climate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultArchiveURL = "https://archive-api.open-meteo.com/v1/archive"

// providerTimeout is the fixed short timeout for archive requests. Failures
// are not retried; callers fall back to seasonal text instead.
const providerTimeout = 10 * time.Second

// OpenMeteoClient fetches hourly historical weather from the Open-Meteo
// archive API. The archive needs no API key.
type OpenMeteoClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenMeteoClient creates a client against the public archive endpoint.
// baseURL overrides the endpoint when non-empty (used by tests).
func NewOpenMeteoClient(baseURL string) *OpenMeteoClient {
	if baseURL == "" {
		baseURL = defaultArchiveURL
	}
	return &OpenMeteoClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: providerTimeout},
	}
}

type openMeteoResponse struct {
	Hourly struct {
		Temperature   []float64 `json:"temperature_2m"`
		Precipitation []float64 `json:"precipitation"`
	} `json:"hourly"`
}

// HourlyHistory implements Provider.
func (c *OpenMeteoClient) HourlyHistory(ctx context.Context, lat, lng float64, start, end time.Time) (History, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lng))
	q.Set("start_date", start.Format("2006-01-02"))
	q.Set("end_date", end.Format("2006-01-02"))
	q.Set("hourly", "temperature_2m,precipitation")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return History{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return History{}, fmt.Errorf("weather archive request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return History{}, fmt.Errorf("weather archive read failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return History{}, fmt.Errorf("weather archive error (%d): %s", resp.StatusCode, string(body))
	}

	var payload openMeteoResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return History{}, fmt.Errorf("weather archive payload malformed: %w", err)
	}

	return History{
		TemperatureC:    payload.Hourly.Temperature,
		PrecipitationMM: payload.Hourly.Precipitation,
	}, nil
}
