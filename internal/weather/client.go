package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Default Open-Meteo endpoints. Both are keyless public APIs.
const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

// forecastDays is the maximum forecast horizon Open-Meteo serves.
const forecastDays = 16

// ErrLocationNotFound is returned when geocoding a destination yields zero
// results. Handlers should surface the message to the user as-is.
var ErrLocationNotFound = errors.New("location not found")

// ErrForecastUnavailable is returned when the forecast response is missing
// the expected daily fields.
var ErrForecastUnavailable = errors.New("forecast unavailable")

// Client fetches daily forecasts from Open-Meteo in two steps: geocode the
// free-text destination, then fetch the forecast for the coordinate.
//
// The zero value is not usable; construct with NewClient. Base URLs are
// injectable so tests can point at an httptest server.
type Client struct {
	httpClient   *http.Client
	geocodingURL string
	forecastURL  string
}

// NewClient builds a Client. Empty URLs fall back to the public Open-Meteo
// endpoints; a nil http.Client falls back to one with a 10s timeout.
func NewClient(httpClient *http.Client, geocodingURL, forecastURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if geocodingURL == "" {
		geocodingURL = DefaultGeocodingURL
	}
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}
	return &Client{httpClient: httpClient, geocodingURL: geocodingURL, forecastURL: forecastURL}
}

// geocodeResponse is the subset of the geocoding payload we read.
type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
		Country   string  `json:"country"`
	} `json:"results"`
}

// forecastResponse is the subset of the forecast payload we read.
// Daily is a pointer so a missing block is distinguishable from an empty one.
type forecastResponse struct {
	Daily *struct {
		Time          []string  `json:"time"`
		TempMax       []float64 `json:"temperature_2m_max"`
		TempMin       []float64 `json:"temperature_2m_min"`
		Precipitation []float64 `json:"precipitation_sum"`
		WeatherCode   []int     `json:"weather_code"`
	} `json:"daily"`
}

// FetchForecast resolves destination to a coordinate and returns up to 16
// days of forecast, each annotated with its condition mapping.
//
// Returns ErrLocationNotFound (wrapped with the destination) when geocoding
// yields no results, and ErrForecastUnavailable when the forecast payload is
// missing its daily block.
func (c *Client) FetchForecast(ctx context.Context, destination string) ([]Day, error) {
	lat, lon, err := c.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}
	return c.dailyForecast(ctx, lat, lon)
}

// geocode resolves a free-text destination to its best-match coordinate.
func (c *Client) geocode(ctx context.Context, destination string) (lat, lon float64, err error) {
	q := url.Values{}
	q.Set("name", destination)
	q.Set("count", "1")
	q.Set("language", "en")

	var resp geocodeResponse
	if err := c.getJSON(ctx, c.geocodingURL+"?"+q.Encode(), &resp); err != nil {
		return 0, 0, fmt.Errorf("weather.Client.geocode: %w", err)
	}
	if len(resp.Results) == 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrLocationNotFound, destination)
	}
	return resp.Results[0].Latitude, resp.Results[0].Longitude, nil
}

// dailyForecast fetches the 16-day daily forecast for a coordinate.
func (c *Client) dailyForecast(ctx context.Context, lat, lon float64) ([]Day, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,weather_code")
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(forecastDays))

	var resp forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("weather.Client.dailyForecast: %w", err)
	}
	if resp.Daily == nil || len(resp.Daily.Time) == 0 {
		return nil, ErrForecastUnavailable
	}

	d := resp.Daily
	days := make([]Day, 0, len(d.Time))
	for i, date := range d.Time {
		// The parallel arrays are expected to be equal length; guard anyway
		// so a truncated payload degrades instead of panicking.
		if i >= len(d.TempMax) || i >= len(d.TempMin) || i >= len(d.Precipitation) || i >= len(d.WeatherCode) {
			return nil, ErrForecastUnavailable
		}
		cond := ConditionFor(d.WeatherCode[i])
		days = append(days, Day{
			Date:          date,
			TempMax:       d.TempMax[i],
			TempMin:       d.TempMin[i],
			Precipitation: d.Precipitation[i],
			Code:          d.WeatherCode[i],
			Description:   cond.Description,
			Glyph:         cond.Glyph,
		})
	}
	return days, nil
}

// getJSON issues a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
