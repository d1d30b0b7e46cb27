package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/repo"
)

// SnapshotService implements backup export and restore, plus the
// currently-selected-trip state that survives restarts.
type SnapshotService struct {
	trips repo.TripRepo
	snaps repo.SnapshotRepo
}

// NewSnapshotService constructs a SnapshotService backed by the provided
// repos.
func NewSnapshotService(trips repo.TripRepo, snaps repo.SnapshotRepo) *SnapshotService {
	return &SnapshotService{trips: trips, snaps: snaps}
}

// Export assembles the complete application state as a backup document.
func (s *SnapshotService) Export(ctx context.Context) (domain.Snapshot, error) {
	snap, err := s.snaps.Export(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("service.SnapshotService.Export: %w", err)
	}
	return snap, nil
}

// Import parses a backup document and wholesale-replaces the stored state
// with it. The only structural requirement, matching the original
// application, is that the document is valid JSON carrying a "trips" array;
// absent collections restore as empty.
func (s *SnapshotService) Import(ctx context.Context, data []byte) (domain.Snapshot, error) {
	var backup struct {
		Trips         *[]domain.Trip       `json:"trips"`
		DayPlans      []domain.DayPlan     `json:"dayPlans"`
		Expenses      []domain.Expense     `json:"expenses"`
		Documents     []domain.Document    `json:"documents"`
		PackingItems  []domain.PackingItem `json:"packingItems"`
		CurrentTripID string               `json:"currentTripId"`
	}
	if err := json.Unmarshal(data, &backup); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: not a valid JSON document", domain.ErrImport)
	}
	if backup.Trips == nil {
		return domain.Snapshot{}, fmt.Errorf("%w: missing trips collection", domain.ErrImport)
	}

	snap := domain.Snapshot{
		Trips:         *backup.Trips,
		DayPlans:      backup.DayPlans,
		Expenses:      backup.Expenses,
		Documents:     backup.Documents,
		PackingItems:  backup.PackingItems,
		CurrentTripID: backup.CurrentTripID,
	}
	if snap.Trips == nil {
		snap.Trips = []domain.Trip{}
	}
	if snap.DayPlans == nil {
		snap.DayPlans = []domain.DayPlan{}
	}
	if snap.Expenses == nil {
		snap.Expenses = []domain.Expense{}
	}
	if snap.Documents == nil {
		snap.Documents = []domain.Document{}
	}
	if snap.PackingItems == nil {
		snap.PackingItems = []domain.PackingItem{}
	}

	if err := s.snaps.Import(ctx, snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("service.SnapshotService.Import: %w", err)
	}
	return snap, nil
}

// CurrentTripID returns the selected trip identifier, "" when none.
func (s *SnapshotService) CurrentTripID(ctx context.Context) (string, error) {
	id, err := s.snaps.CurrentTripID(ctx)
	if err != nil {
		return "", fmt.Errorf("service.SnapshotService.CurrentTripID: %w", err)
	}
	return id, nil
}

// SetCurrentTripID records the selected trip. An empty identifier clears the
// selection; a non-empty one must reference an existing trip.
func (s *SnapshotService) SetCurrentTripID(ctx context.Context, id string) error {
	if id != "" {
		if _, err := s.trips.GetByID(ctx, id); err != nil {
			return fmt.Errorf("service.SnapshotService.SetCurrentTripID: %w", err)
		}
	}
	if err := s.snaps.SetCurrentTripID(ctx, id); err != nil {
		return fmt.Errorf("service.SnapshotService.SetCurrentTripID: %w", err)
	}
	return nil
}
