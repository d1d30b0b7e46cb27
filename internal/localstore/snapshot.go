package localstore

import (
	"context"
	"fmt"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// snapshotStore implements repo.SnapshotRepo on the key-value store. The
// snapshot shape and the storage layout coincide here: export is six reads,
// import is six writes.
type snapshotStore struct {
	s *Store
}

func (ss *snapshotStore) Export(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	var err error

	if snap.Trips, err = loadList[domain.Trip](ctx, ss.s.db, keyTrips); err != nil {
		return domain.Snapshot{}, fmt.Errorf("localstore.SnapshotRepo.Export: %w", err)
	}
	if snap.DayPlans, err = loadList[domain.DayPlan](ctx, ss.s.db, keyDayPlans); err != nil {
		return domain.Snapshot{}, fmt.Errorf("localstore.SnapshotRepo.Export: %w", err)
	}
	if snap.Expenses, err = loadList[domain.Expense](ctx, ss.s.db, keyExpenses); err != nil {
		return domain.Snapshot{}, fmt.Errorf("localstore.SnapshotRepo.Export: %w", err)
	}
	if snap.Documents, err = loadList[domain.Document](ctx, ss.s.db, keyDocuments); err != nil {
		return domain.Snapshot{}, fmt.Errorf("localstore.SnapshotRepo.Export: %w", err)
	}
	if snap.PackingItems, err = loadList[domain.PackingItem](ctx, ss.s.db, keyPackingItems); err != nil {
		return domain.Snapshot{}, fmt.Errorf("localstore.SnapshotRepo.Export: %w", err)
	}

	snap.CurrentTripID, _, err = getValue(ctx, ss.s.db, keyCurrentTrip)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("localstore.SnapshotRepo.Export: %w", err)
	}

	return snap, nil
}

// Import wholesale-replaces the stored state inside one transaction.
func (ss *snapshotStore) Import(ctx context.Context, snap domain.Snapshot) error {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	tx, err := ss.s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("localstore.SnapshotRepo.Import: begin: %w", err)
	}
	defer tx.Rollback()

	if err := saveList(ctx, tx, keyTrips, snap.Trips); err != nil {
		return fmt.Errorf("localstore.SnapshotRepo.Import: %w", err)
	}
	if err := saveList(ctx, tx, keyDayPlans, snap.DayPlans); err != nil {
		return fmt.Errorf("localstore.SnapshotRepo.Import: %w", err)
	}
	if err := saveList(ctx, tx, keyExpenses, snap.Expenses); err != nil {
		return fmt.Errorf("localstore.SnapshotRepo.Import: %w", err)
	}
	if err := saveList(ctx, tx, keyDocuments, snap.Documents); err != nil {
		return fmt.Errorf("localstore.SnapshotRepo.Import: %w", err)
	}
	if err := saveList(ctx, tx, keyPackingItems, snap.PackingItems); err != nil {
		return fmt.Errorf("localstore.SnapshotRepo.Import: %w", err)
	}
	if err := setValue(ctx, tx, keyCurrentTrip, snap.CurrentTripID); err != nil {
		return fmt.Errorf("localstore.SnapshotRepo.Import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("localstore.SnapshotRepo.Import: commit: %w", err)
	}
	return nil
}

func (ss *snapshotStore) CurrentTripID(ctx context.Context) (string, error) {
	id, _, err := getValue(ctx, ss.s.db, keyCurrentTrip)
	if err != nil {
		return "", fmt.Errorf("localstore.SnapshotRepo.CurrentTripID: %w", err)
	}
	return id, nil
}

func (ss *snapshotStore) SetCurrentTripID(ctx context.Context, id string) error {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	if err := setValue(ctx, ss.s.db, keyCurrentTrip, id); err != nil {
		return fmt.Errorf("localstore.SnapshotRepo.SetCurrentTripID: %w", err)
	}
	return nil
}
