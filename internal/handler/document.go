package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// documentRequest is the wire shape for creating or replacing a document.
type documentRequest struct {
	Type               string `json:"type"`
	Title              string `json:"title"`
	ConfirmationNumber string `json:"confirmationNumber"`
	FileURL            string `json:"fileUrl"`
	Notes              string `json:"notes"`
}

func (req documentRequest) toDomain() domain.Document {
	return domain.Document{
		Type:               domain.DocumentType(req.Type),
		Title:              req.Title,
		ConfirmationNumber: req.ConfirmationNumber,
		FileURL:            req.FileURL,
		Notes:              req.Notes,
	}
}

// AddDocument handles POST /trips/{tripID}/documents.
func (s *Server) AddDocument(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	created, err := s.documents.Add(r.Context(), chi.URLParam(r, "tripID"), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListDocuments handles GET /trips/{tripID}/documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.List(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

// UpdateDocument handles PUT /trips/{tripID}/documents/{documentID}.
func (s *Server) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	updated, err := s.documents.Update(r.Context(),
		chi.URLParam(r, "tripID"), chi.URLParam(r, "documentID"), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteDocument handles DELETE /trips/{tripID}/documents/{documentID}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.documents.Delete(r.Context(), chi.URLParam(r, "documentID")); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
