package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/weather"
)

// ---- GET /trips/{tripID}/weather -------------------------------------------

func TestGetTripWeather_200(t *testing.T) {
	fixture := tripFixture()
	m := &mocks{}
	m.trips.getByID = func(_ context.Context, id string) (domain.Trip, error) {
		assert.Equal(t, fixture.ID, id)
		return fixture, nil
	}
	m.weather.tripForecast = func(_ context.Context, trip domain.Trip) (weather.Report, error) {
		assert.Equal(t, fixture.Destination, trip.Destination)
		return weather.Report{
			Days: []weather.Day{
				{Date: "2026-06-01", TempMax: 28, TempMin: 19, Precipitation: 0.4},
			},
			Recommendations: []weather.Recommendation{},
			Alerts:          []weather.Alert{},
			Summary:         weather.Summary{TempMax: 28, TempMin: 19, TempMean: 23.5},
		}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+fixture.ID+"/weather", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(m).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp weather.Report
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Days, 1)
	assert.Equal(t, 28.0, resp.Summary.TempMax)
}

func TestGetTripWeather_404_UnknownTrip(t *testing.T) {
	m := &mocks{}
	m.trips.getByID = func(_ context.Context, _ string) (domain.Trip, error) {
		return domain.Trip{}, domain.ErrNotFound
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/nope/weather", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(m).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec.Body).Error.Code)
}

func TestGetTripWeather_404_LocationNotFound(t *testing.T) {
	m := &mocks{}
	m.trips.getByID = func(_ context.Context, id string) (domain.Trip, error) {
		return tripFixture(), nil
	}
	m.weather.tripForecast = func(_ context.Context, _ domain.Trip) (weather.Report, error) {
		return weather.Report{}, weather.ErrLocationNotFound
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/t1/weather", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(m).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "location_not_found", decodeError(t, rec.Body).Error.Code)
}

func TestGetTripWeather_409_Superseded(t *testing.T) {
	m := &mocks{}
	m.trips.getByID = func(_ context.Context, id string) (domain.Trip, error) {
		return tripFixture(), nil
	}
	m.weather.tripForecast = func(_ context.Context, _ domain.Trip) (weather.Report, error) {
		return weather.Report{}, weather.ErrSuperseded
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/t1/weather", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(m).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "superseded", decodeError(t, rec.Body).Error.Code)
}

func TestGetTripWeather_502_ProviderDown(t *testing.T) {
	m := &mocks{}
	m.trips.getByID = func(_ context.Context, id string) (domain.Trip, error) {
		return tripFixture(), nil
	}
	m.weather.tripForecast = func(_ context.Context, _ domain.Trip) (weather.Report, error) {
		return weather.Report{}, errors.New("fetch forecast: connection refused")
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/t1/weather", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(m).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	resp := decodeError(t, rec.Body)
	assert.Equal(t, "forecast_unavailable", resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "connection refused")
}
