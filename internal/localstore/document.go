package localstore

import (
	"context"
	"fmt"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// documentStore implements repo.DocumentRepo on the key-value store.
type documentStore struct {
	s *Store
}

// Create appends the document: the collection keeps insertion order.
func (d *documentStore) Create(ctx context.Context, doc domain.Document) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	docs, err := loadList[domain.Document](ctx, d.s.db, keyDocuments)
	if err != nil {
		return fmt.Errorf("localstore.DocumentRepo.Create: %w", err)
	}

	docs = append(docs, doc)

	if err := saveList(ctx, d.s.db, keyDocuments, docs); err != nil {
		return fmt.Errorf("localstore.DocumentRepo.Create: %w", err)
	}
	return nil
}

func (d *documentStore) ListByTripID(ctx context.Context, tripID string) ([]domain.Document, error) {
	docs, err := loadList[domain.Document](ctx, d.s.db, keyDocuments)
	if err != nil {
		return nil, fmt.Errorf("localstore.DocumentRepo.ListByTripID: %w", err)
	}

	var matched []domain.Document
	for _, doc := range docs {
		if doc.TripID == tripID {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

func (d *documentStore) Update(ctx context.Context, doc domain.Document) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	docs, err := loadList[domain.Document](ctx, d.s.db, keyDocuments)
	if err != nil {
		return fmt.Errorf("localstore.DocumentRepo.Update: %w", err)
	}

	found := false
	for i := range docs {
		if docs[i].ID == doc.ID {
			docs[i] = doc
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("localstore.DocumentRepo.Update: %w", domain.ErrNotFound)
	}

	if err := saveList(ctx, d.s.db, keyDocuments, docs); err != nil {
		return fmt.Errorf("localstore.DocumentRepo.Update: %w", err)
	}
	return nil
}

func (d *documentStore) Delete(ctx context.Context, id string) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	docs, err := loadList[domain.Document](ctx, d.s.db, keyDocuments)
	if err != nil {
		return fmt.Errorf("localstore.DocumentRepo.Delete: %w", err)
	}

	kept := docs[:0:0]
	for _, doc := range docs {
		if doc.ID != id {
			kept = append(kept, doc)
		}
	}
	if len(kept) == len(docs) {
		return fmt.Errorf("localstore.DocumentRepo.Delete: %w", domain.ErrNotFound)
	}

	if err := saveList(ctx, d.s.db, keyDocuments, kept); err != nil {
		return fmt.Errorf("localstore.DocumentRepo.Delete: %w", err)
	}
	return nil
}
