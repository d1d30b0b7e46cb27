package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/repo"
)

// DocumentService implements business logic for travel documents.
type DocumentService struct {
	trips repo.TripRepo
	docs  repo.DocumentRepo
}

// NewDocumentService constructs a DocumentService backed by the provided
// repos.
func NewDocumentService(trips repo.TripRepo, docs repo.DocumentRepo) *DocumentService {
	return &DocumentService{trips: trips, docs: docs}
}

// Add validates and attaches a new document to an existing trip.
func (s *DocumentService) Add(ctx context.Context, tripID string, doc domain.Document) (domain.Document, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Document{}, fmt.Errorf("service.DocumentService.Add: %w", err)
	}

	doc = normalizeDocument(doc)
	if err := validateDocument(doc); err != nil {
		return domain.Document{}, err
	}

	doc.ID = domain.NewID()
	doc.TripID = tripID

	if err := s.docs.Create(ctx, doc); err != nil {
		return domain.Document{}, fmt.Errorf("service.DocumentService.Add: %w", err)
	}
	return doc, nil
}

// List returns a trip's documents in the order they were added.
func (s *DocumentService) List(ctx context.Context, tripID string) ([]domain.Document, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.DocumentService.List: %w", err)
	}

	docs, err := s.docs.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.DocumentService.List: %w", err)
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}

// Update validates and overwrites an existing document in place.
func (s *DocumentService) Update(ctx context.Context, tripID, id string, doc domain.Document) (domain.Document, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Document{}, fmt.Errorf("service.DocumentService.Update: %w", err)
	}

	doc = normalizeDocument(doc)
	if err := validateDocument(doc); err != nil {
		return domain.Document{}, err
	}

	doc.ID = id
	doc.TripID = tripID
	if err := s.docs.Update(ctx, doc); err != nil {
		return domain.Document{}, fmt.Errorf("service.DocumentService.Update: %w", err)
	}
	return doc, nil
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	if err := s.docs.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.DocumentService.Delete: %w", err)
	}
	return nil
}

func normalizeDocument(d domain.Document) domain.Document {
	d.Title = strings.TrimSpace(d.Title)
	if d.Type == "" {
		d.Type = domain.DocumentOther
	}
	return d
}

func validateDocument(d domain.Document) error {
	if d.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !d.Type.Valid() {
		return fmt.Errorf("%w: unknown document type %q", domain.ErrValidation, d.Type)
	}
	return nil
}
