package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// currentTripState is the wire shape of the selected-trip resource. A null or
// empty identifier means no trip is selected.
type currentTripState struct {
	CurrentTripID string `json:"currentTripId"`
}

// ExportBackup handles GET /export. The response is the complete application
// state as a downloadable backup file, named the way the original application
// named its exports.
func (s *Server) ExportBackup(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshots.Export(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	filename := "travel-planner-backup-" + time.Now().UTC().Format(domain.DateLayout) + ".json"
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	writeJSON(w, http.StatusOK, snap)
}

// ImportBackup handles POST /import: the uploaded backup wholesale-replaces
// the stored state. Responds with per-collection counts so clients can show
// what was restored.
func (s *Server) ImportBackup(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		badRequest(w, "unable to read request body")
		return
	}

	snap, err := s.snapshots.Import(r.Context(), data)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"trips":        len(snap.Trips),
		"dayPlans":     len(snap.DayPlans),
		"expenses":     len(snap.Expenses),
		"documents":    len(snap.Documents),
		"packingItems": len(snap.PackingItems),
	})
}

// GetCurrentTrip handles GET /state/current-trip.
func (s *Server) GetCurrentTrip(w http.ResponseWriter, r *http.Request) {
	id, err := s.snapshots.CurrentTripID(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, currentTripState{CurrentTripID: id})
}

// SetCurrentTrip handles PUT /state/current-trip. An empty identifier clears
// the selection.
func (s *Server) SetCurrentTrip(w http.ResponseWriter, r *http.Request) {
	var req currentTripState
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	if err := s.snapshots.SetCurrentTripID(r.Context(), req.CurrentTripID); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, currentTripState{CurrentTripID: req.CurrentTripID})
}
