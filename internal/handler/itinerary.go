package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// dayPlanRequest is the wire shape for saving one day of the itinerary. The
// date comes from the URL, not the body.
type dayPlanRequest struct {
	Activities []domain.Activity `json:"activities"`
	Notes      string            `json:"notes"`
}

// ListDays handles GET /trips/{tripID}/days. Every date in the trip's range
// appears in the response, planned or not.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	days, err := s.itinerary.Days(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, days)
}

// SaveDayPlan handles PUT /trips/{tripID}/days/{date}, creating or replacing
// the plan for that date.
func (s *Server) SaveDayPlan(w http.ResponseWriter, r *http.Request) {
	var req dayPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	plan := domain.DayPlan{
		Date:       chi.URLParam(r, "date"),
		Activities: req.Activities,
		Notes:      req.Notes,
	}

	saved, err := s.itinerary.SaveDayPlan(r.Context(), chi.URLParam(r, "tripID"), plan)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}
