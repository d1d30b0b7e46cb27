package localstore

import (
	"context"
	"fmt"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// tripStore implements repo.TripRepo on the key-value store.
type tripStore struct {
	s *Store
}

// Create prepends the trip: the trips collection is kept newest-first, the
// order List serves it in.
func (t *tripStore) Create(ctx context.Context, trip domain.Trip) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	trips, err := loadList[domain.Trip](ctx, t.s.db, keyTrips)
	if err != nil {
		return fmt.Errorf("localstore.TripRepo.Create: %w", err)
	}

	trips = append([]domain.Trip{trip}, trips...)

	if err := saveList(ctx, t.s.db, keyTrips, trips); err != nil {
		return fmt.Errorf("localstore.TripRepo.Create: %w", err)
	}
	return nil
}

func (t *tripStore) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trips, err := loadList[domain.Trip](ctx, t.s.db, keyTrips)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("localstore.TripRepo.GetByID: %w", err)
	}

	for _, trip := range trips {
		if trip.ID == id {
			return trip, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("localstore.TripRepo.GetByID: %w", domain.ErrNotFound)
}

func (t *tripStore) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := loadList[domain.Trip](ctx, t.s.db, keyTrips)
	if err != nil {
		return nil, fmt.Errorf("localstore.TripRepo.List: %w", err)
	}
	return trips, nil
}

// Update replaces the trip in place, preserving its list position.
func (t *tripStore) Update(ctx context.Context, trip domain.Trip) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	trips, err := loadList[domain.Trip](ctx, t.s.db, keyTrips)
	if err != nil {
		return fmt.Errorf("localstore.TripRepo.Update: %w", err)
	}

	found := false
	for i := range trips {
		if trips[i].ID == trip.ID {
			trips[i] = trip
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("localstore.TripRepo.Update: %w", domain.ErrNotFound)
	}

	if err := saveList(ctx, t.s.db, keyTrips, trips); err != nil {
		return fmt.Errorf("localstore.TripRepo.Update: %w", err)
	}
	return nil
}

// Delete removes the trip and everything referencing it. All six documents
// are rewritten inside one transaction, so a failure partway leaves the
// previous state intact.
func (t *tripStore) Delete(ctx context.Context, id string) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	tx, err := t.s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("localstore.TripRepo.Delete: begin: %w", err)
	}
	defer tx.Rollback()

	trips, err := loadList[domain.Trip](ctx, tx, keyTrips)
	if err != nil {
		return fmt.Errorf("localstore.TripRepo.Delete: %w", err)
	}

	kept := trips[:0:0]
	for _, trip := range trips {
		if trip.ID != id {
			kept = append(kept, trip)
		}
	}
	if len(kept) == len(trips) {
		return fmt.Errorf("localstore.TripRepo.Delete: %w", domain.ErrNotFound)
	}

	if err := saveList(ctx, tx, keyTrips, kept); err != nil {
		return fmt.Errorf("localstore.TripRepo.Delete: %w", err)
	}

	if err := dropTripPlans(ctx, tx, id); err != nil {
		return fmt.Errorf("localstore.TripRepo.Delete: %w", err)
	}
	if err := dropTripExpenses(ctx, tx, id); err != nil {
		return fmt.Errorf("localstore.TripRepo.Delete: %w", err)
	}
	if err := dropTripDocuments(ctx, tx, id); err != nil {
		return fmt.Errorf("localstore.TripRepo.Delete: %w", err)
	}
	if err := dropTripPackingItems(ctx, tx, id); err != nil {
		return fmt.Errorf("localstore.TripRepo.Delete: %w", err)
	}

	// A deleted trip cannot stay selected.
	current, ok, err := getValue(ctx, tx, keyCurrentTrip)
	if err != nil {
		return fmt.Errorf("localstore.TripRepo.Delete: %w", err)
	}
	if ok && current == id {
		if err := setValue(ctx, tx, keyCurrentTrip, ""); err != nil {
			return fmt.Errorf("localstore.TripRepo.Delete: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("localstore.TripRepo.Delete: commit: %w", err)
	}
	return nil
}

func dropTripPlans(ctx context.Context, qe queryExecer, tripID string) error {
	plans, err := loadList[domain.DayPlan](ctx, qe, keyDayPlans)
	if err != nil {
		return err
	}
	kept := plans[:0:0]
	for _, p := range plans {
		if p.TripID != tripID {
			kept = append(kept, p)
		}
	}
	return saveList(ctx, qe, keyDayPlans, kept)
}

func dropTripExpenses(ctx context.Context, qe queryExecer, tripID string) error {
	expenses, err := loadList[domain.Expense](ctx, qe, keyExpenses)
	if err != nil {
		return err
	}
	kept := expenses[:0:0]
	for _, e := range expenses {
		if e.TripID != tripID {
			kept = append(kept, e)
		}
	}
	return saveList(ctx, qe, keyExpenses, kept)
}

func dropTripDocuments(ctx context.Context, qe queryExecer, tripID string) error {
	docs, err := loadList[domain.Document](ctx, qe, keyDocuments)
	if err != nil {
		return err
	}
	kept := docs[:0:0]
	for _, d := range docs {
		if d.TripID != tripID {
			kept = append(kept, d)
		}
	}
	return saveList(ctx, qe, keyDocuments, kept)
}

func dropTripPackingItems(ctx context.Context, qe queryExecer, tripID string) error {
	items, err := loadList[domain.PackingItem](ctx, qe, keyPackingItems)
	if err != nil {
		return err
	}
	kept := items[:0:0]
	for _, i := range items {
		if i.TripID != tripID {
			kept = append(kept, i)
		}
	}
	return saveList(ctx, qe, keyPackingItems, kept)
}
