package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// tripRequest is the wire shape for creating or replacing a trip. Dates are
// decoded through openapi_types.Date so a malformed value is rejected at the
// JSON layer with a parse error rather than leaking through as a string.
type tripRequest struct {
	Name        string             `json:"name"`
	Destination string             `json:"destination"`
	Country     string             `json:"country"`
	StartDate   openapi_types.Date `json:"startDate"`
	EndDate     openapi_types.Date `json:"endDate"`
	Budget      float64            `json:"budget"`
	Currency    string             `json:"currency"`
	Notes       string             `json:"notes"`
	CoverImage  string             `json:"coverImage"`
	Status      string             `json:"status"`
}

func (req tripRequest) toDomain() domain.Trip {
	return domain.Trip{
		Name:        req.Name,
		Destination: req.Destination,
		Country:     req.Country,
		StartDate:   dateString(req.StartDate),
		EndDate:     dateString(req.EndDate),
		Budget:      req.Budget,
		Currency:    req.Currency,
		Notes:       req.Notes,
		CoverImage:  req.CoverImage,
		Status:      domain.TripStatus(req.Status),
	}
}

// dateString renders a wire date as the canonical domain string. An absent
// date stays empty so the service's validation reports it, instead of
// formatting the zero time as a year-one date.
func dateString(d openapi_types.Date) string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(domain.DateLayout)
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, trips)
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	updated, err := s.trips.Update(r.Context(), chi.URLParam(r, "tripID"), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{tripID}. Deleting a trip removes its
// itinerary, expenses, documents, and packing list with it.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
