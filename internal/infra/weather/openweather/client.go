package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sparsha/skincare-ai/internal/domain/weather"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current conditions from OpenWeatherMap.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(apiKey, baseURL string) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Current retrieves the weather snapshot for a city or "city,country" string.
func (c *Client) Current(ctx context.Context, location string) (weather.Snapshot, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	endpoint := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("read weather response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &apiErr)
		if apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return weather.Snapshot{}, fmt.Errorf("weather api error: %s", apiErr.Message)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return weather.Snapshot{}, fmt.Errorf("decode weather response: %w", err)
	}

	return toSnapshot(raw, location), nil
}

type apiResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
}

func toSnapshot(raw apiResponse, requested string) weather.Snapshot {
	condition := ""
	description := ""
	if len(raw.Weather) > 0 {
		condition = raw.Weather[0].Main
		description = raw.Weather[0].Description
	}

	name := raw.Name
	if name == "" {
		name = requested
	}
	resolved := name
	if raw.Sys.Country != "" {
		resolved = name + ", " + raw.Sys.Country
	}

	return weather.Snapshot{
		Temperature: math.Round(raw.Main.Temp*10) / 10,
		Humidity:    raw.Main.Humidity,
		UVIndex:     estimateUVIndex(condition),
		Condition:   condition,
		Description: description,
		Location:    resolved,
	}
}

// estimateUVIndex approximates the UV band from the sky condition; the free
// tier endpoint has no UV reading.
func estimateUVIndex(condition string) int {
	lower := strings.ToLower(condition)
	switch {
	case strings.Contains(lower, "clear") || strings.Contains(lower, "sun"):
		return 7
	case strings.Contains(lower, "cloud"):
		return 4
	default:
		return 3
	}
}
