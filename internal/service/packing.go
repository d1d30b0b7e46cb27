package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/repo"
	"github.com/pkanjana/travel-planner/internal/stats"
)

// PackingService implements business logic for the packing checklist.
type PackingService struct {
	trips repo.TripRepo
	items repo.PackingItemRepo
}

// NewPackingService constructs a PackingService backed by the provided repos.
func NewPackingService(trips repo.TripRepo, items repo.PackingItemRepo) *PackingService {
	return &PackingService{trips: trips, items: items}
}

// Add validates and appends a new item to an existing trip's checklist.
// New items always start unpacked.
func (s *PackingService) Add(ctx context.Context, tripID string, item domain.PackingItem) (domain.PackingItem, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Add: %w", err)
	}

	item = normalizePackingItem(item)
	if err := validatePackingItem(item); err != nil {
		return domain.PackingItem{}, err
	}

	item.ID = domain.NewID()
	item.TripID = tripID
	item.Packed = false

	if err := s.items.Create(ctx, item); err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Add: %w", err)
	}
	return item, nil
}

// List returns a trip's packing items in the order they were added.
func (s *PackingService) List(ctx context.Context, tripID string) ([]domain.PackingItem, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.PackingService.List: %w", err)
	}

	items, err := s.items.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PackingService.List: %w", err)
	}
	if items == nil {
		items = []domain.PackingItem{}
	}
	return items, nil
}

// Update validates and overwrites an existing item in place.
func (s *PackingService) Update(ctx context.Context, tripID, id string, item domain.PackingItem) (domain.PackingItem, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Update: %w", err)
	}

	item = normalizePackingItem(item)
	if err := validatePackingItem(item); err != nil {
		return domain.PackingItem{}, err
	}

	item.ID = id
	item.TripID = tripID
	if err := s.items.Update(ctx, item); err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Update: %w", err)
	}
	return item, nil
}

// TogglePacked flips an item's packed state and returns the updated item.
func (s *PackingService) TogglePacked(ctx context.Context, id string) (domain.PackingItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.TogglePacked: %w", err)
	}

	item.Packed = !item.Packed
	if err := s.items.Update(ctx, item); err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.TogglePacked: %w", err)
	}
	return item, nil
}

// Delete removes an item from the checklist.
func (s *PackingService) Delete(ctx context.Context, id string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PackingService.Delete: %w", err)
	}
	return nil
}

// Progress computes overall and per-category packing progress for a trip.
func (s *PackingService) Progress(ctx context.Context, tripID string) (stats.PackingProgress, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return stats.PackingProgress{}, fmt.Errorf("service.PackingService.Progress: %w", err)
	}

	items, err := s.items.ListByTripID(ctx, tripID)
	if err != nil {
		return stats.PackingProgress{}, fmt.Errorf("service.PackingService.Progress: %w", err)
	}
	return stats.Packing(items), nil
}

func normalizePackingItem(i domain.PackingItem) domain.PackingItem {
	i.Item = strings.TrimSpace(i.Item)
	if i.Category == "" {
		i.Category = domain.PackingOther
	}
	if i.Quantity == 0 {
		i.Quantity = 1
	}
	return i
}

func validatePackingItem(i domain.PackingItem) error {
	if i.Item == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrValidation)
	}
	if !i.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, i.Category)
	}
	if i.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	return nil
}
