package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// ---- GET /trips/{tripID}/days ----------------------------------------------

func TestListDays_200(t *testing.T) {
	m := &mocks{}
	m.itinerary.days = func(_ context.Context, tripID string) ([]domain.DayPlan, error) {
		assert.Equal(t, "t1", tripID)
		return []domain.DayPlan{
			{ID: "p1", TripID: "t1", Date: "2026-06-01", DayNumber: 1, Activities: []domain.Activity{}},
			{TripID: "t1", Date: "2026-06-02", DayNumber: 2, Activities: []domain.Activity{}},
		}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/t1/days", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(m).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.DayPlan
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 1, resp[0].DayNumber)
	// Placeholder days carry no identifier until they are saved.
	assert.Empty(t, resp[1].ID)
}

func TestListDays_404_UnknownTrip(t *testing.T) {
	m := &mocks{}
	m.itinerary.days = func(_ context.Context, _ string) ([]domain.DayPlan, error) {
		return nil, fmt.Errorf("service.ItineraryService.Days: %w", domain.ErrNotFound)
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/nope/days", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(m).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- PUT /trips/{tripID}/days/{date} ---------------------------------------

func TestSaveDayPlan_200(t *testing.T) {
	m := &mocks{}
	m.itinerary.saveDayPlan = func(_ context.Context, tripID string, plan domain.DayPlan) (domain.DayPlan, error) {
		assert.Equal(t, "t1", tripID)
		// The date comes from the URL, never the body.
		assert.Equal(t, "2026-06-03", plan.Date)
		require.Len(t, plan.Activities, 1)
		assert.Equal(t, "Fushimi Inari hike", plan.Activities[0].Title)

		plan.ID = "p1"
		plan.TripID = tripID
		plan.DayNumber = 3
		return plan, nil
	}

	body := jsonBody(t, map[string]any{
		"activities": []map[string]any{
			{"title": "Fushimi Inari hike", "time": "07:00"},
		},
		"notes": "start early to beat the crowds",
	})

	req := httptest.NewRequest(http.MethodPut, "/trips/t1/days/2026-06-03", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(m).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.DayPlan
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "p1", resp.ID)
	assert.Equal(t, 3, resp.DayNumber)
}

func TestSaveDayPlan_422_DateOutsideTrip(t *testing.T) {
	m := &mocks{}
	m.itinerary.saveDayPlan = func(_ context.Context, _ string, _ domain.DayPlan) (domain.DayPlan, error) {
		return domain.DayPlan{}, fmt.Errorf("%w: date 2026-07-01 is outside the trip", domain.ErrValidation)
	}

	body := jsonBody(t, map[string]any{"notes": "x"})

	req := httptest.NewRequest(http.MethodPut, "/trips/t1/days/2026-07-01", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(m).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec.Body).Error.Code)
}
