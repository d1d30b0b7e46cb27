package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkanjana/travel-planner/internal/weather"
)

// GetTripWeather handles GET /trips/{tripID}/weather. The forecast is fetched
// from the upstream provider on every call; a request superseded by a newer
// one for the same trip reports 409 so clients can simply drop the response.
func (s *Server) GetTripWeather(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, err)
		return
	}

	report, err := s.weather.TripForecast(r.Context(), trip)
	if err != nil {
		switch {
		case errors.Is(err, weather.ErrLocationNotFound):
			writeError(w, http.StatusNotFound, "location_not_found",
				"no forecast location matches "+trip.Destination)
		case errors.Is(err, weather.ErrSuperseded):
			writeError(w, http.StatusConflict, "superseded",
				"a newer forecast request for this trip is in flight")
		default:
			writeError(w, http.StatusBadGateway, "forecast_unavailable",
				"weather provider unavailable")
		}
		return
	}

	writeJSON(w, http.StatusOK, report)
}
