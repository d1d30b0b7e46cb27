package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// packingItemRequest is the wire shape for creating or replacing a packing
// item.
type packingItemRequest struct {
	Category string `json:"category"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Packed   bool   `json:"packed"`
}

func (req packingItemRequest) toDomain() domain.PackingItem {
	return domain.PackingItem{
		Category: domain.PackingCategory(req.Category),
		Item:     req.Item,
		Quantity: req.Quantity,
		Packed:   req.Packed,
	}
}

// AddPackingItem handles POST /trips/{tripID}/packing.
func (s *Server) AddPackingItem(w http.ResponseWriter, r *http.Request) {
	var req packingItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	created, err := s.packing.Add(r.Context(), chi.URLParam(r, "tripID"), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListPackingItems handles GET /trips/{tripID}/packing.
func (s *Server) ListPackingItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.packing.List(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// UpdatePackingItem handles PUT /trips/{tripID}/packing/{itemID}.
func (s *Server) UpdatePackingItem(w http.ResponseWriter, r *http.Request) {
	var req packingItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	updated, err := s.packing.Update(r.Context(),
		chi.URLParam(r, "tripID"), chi.URLParam(r, "itemID"), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// TogglePackingItem handles PATCH /trips/{tripID}/packing/{itemID}/toggle.
// No body: the server flips the packed state and returns the item.
func (s *Server) TogglePackingItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.packing.TogglePacked(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// DeletePackingItem handles DELETE /trips/{tripID}/packing/{itemID}.
func (s *Server) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	if err := s.packing.Delete(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetPackingProgress handles GET /trips/{tripID}/packing/progress.
func (s *Server) GetPackingProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.packing.Progress(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}
