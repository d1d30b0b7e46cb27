package localstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// dayPlanStore implements repo.DayPlanRepo on the key-value store.
type dayPlanStore struct {
	s *Store
}

// Upsert inserts the plan or replaces an existing one with the same
// identifier in place.
func (d *dayPlanStore) Upsert(ctx context.Context, plan domain.DayPlan) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	plans, err := loadList[domain.DayPlan](ctx, d.s.db, keyDayPlans)
	if err != nil {
		return fmt.Errorf("localstore.DayPlanRepo.Upsert: %w", err)
	}

	replaced := false
	for i := range plans {
		if plans[i].ID == plan.ID {
			plans[i] = plan
			replaced = true
			break
		}
	}
	if !replaced {
		plans = append(plans, plan)
	}

	if err := saveList(ctx, d.s.db, keyDayPlans, plans); err != nil {
		return fmt.Errorf("localstore.DayPlanRepo.Upsert: %w", err)
	}
	return nil
}

// ListByTripID returns the trip's saved day plans ordered by day number.
func (d *dayPlanStore) ListByTripID(ctx context.Context, tripID string) ([]domain.DayPlan, error) {
	plans, err := loadList[domain.DayPlan](ctx, d.s.db, keyDayPlans)
	if err != nil {
		return nil, fmt.Errorf("localstore.DayPlanRepo.ListByTripID: %w", err)
	}

	var matched []domain.DayPlan
	for _, p := range plans {
		if p.TripID == tripID {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].DayNumber < matched[j].DayNumber
	})
	return matched, nil
}
