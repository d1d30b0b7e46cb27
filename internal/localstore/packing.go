package localstore

import (
	"context"
	"fmt"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// packingStore implements repo.PackingItemRepo on the key-value store.
type packingStore struct {
	s *Store
}

// Create appends the item: the checklist keeps insertion order.
func (p *packingStore) Create(ctx context.Context, item domain.PackingItem) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	items, err := loadList[domain.PackingItem](ctx, p.s.db, keyPackingItems)
	if err != nil {
		return fmt.Errorf("localstore.PackingItemRepo.Create: %w", err)
	}

	items = append(items, item)

	if err := saveList(ctx, p.s.db, keyPackingItems, items); err != nil {
		return fmt.Errorf("localstore.PackingItemRepo.Create: %w", err)
	}
	return nil
}

func (p *packingStore) ListByTripID(ctx context.Context, tripID string) ([]domain.PackingItem, error) {
	items, err := loadList[domain.PackingItem](ctx, p.s.db, keyPackingItems)
	if err != nil {
		return nil, fmt.Errorf("localstore.PackingItemRepo.ListByTripID: %w", err)
	}

	var matched []domain.PackingItem
	for _, item := range items {
		if item.TripID == tripID {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (p *packingStore) GetByID(ctx context.Context, id string) (domain.PackingItem, error) {
	items, err := loadList[domain.PackingItem](ctx, p.s.db, keyPackingItems)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("localstore.PackingItemRepo.GetByID: %w", err)
	}

	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.PackingItem{}, fmt.Errorf("localstore.PackingItemRepo.GetByID: %w", domain.ErrNotFound)
}

func (p *packingStore) Update(ctx context.Context, item domain.PackingItem) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	items, err := loadList[domain.PackingItem](ctx, p.s.db, keyPackingItems)
	if err != nil {
		return fmt.Errorf("localstore.PackingItemRepo.Update: %w", err)
	}

	found := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("localstore.PackingItemRepo.Update: %w", domain.ErrNotFound)
	}

	if err := saveList(ctx, p.s.db, keyPackingItems, items); err != nil {
		return fmt.Errorf("localstore.PackingItemRepo.Update: %w", err)
	}
	return nil
}

func (p *packingStore) Delete(ctx context.Context, id string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	items, err := loadList[domain.PackingItem](ctx, p.s.db, keyPackingItems)
	if err != nil {
		return fmt.Errorf("localstore.PackingItemRepo.Delete: %w", err)
	}

	kept := items[:0:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return fmt.Errorf("localstore.PackingItemRepo.Delete: %w", domain.ErrNotFound)
	}

	if err := saveList(ctx, p.s.db, keyPackingItems, kept); err != nil {
		return fmt.Errorf("localstore.PackingItemRepo.Delete: %w", err)
	}
	return nil
}
