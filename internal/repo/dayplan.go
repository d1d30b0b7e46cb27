package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// pgDayPlanRepo is the Postgres implementation of DayPlanRepo.
// Activities are stored as a JSONB document on the day plan row: they are
// only ever read and written as part of their owning day, and keeping them
// inline preserves their order without a position column.
type pgDayPlanRepo struct {
	db     db
	userID string
}

// NewDayPlanRepo constructs a DayPlanRepo backed by the provided db connection.
func NewDayPlanRepo(db db, userID string) DayPlanRepo {
	return &pgDayPlanRepo{db: db, userID: userID}
}

// Upsert inserts or replaces a day plan by identifier.
func (r *pgDayPlanRepo) Upsert(ctx context.Context, plan domain.DayPlan) error {
	activities, err := json.Marshal(plan.Activities)
	if err != nil {
		return fmt.Errorf("repo.DayPlanRepo.Upsert: marshal activities: %w", err)
	}

	const q = `
		INSERT INTO day_plans (id, user_id, trip_id, date, day_number, activities, notes)
		VALUES (@id, @user_id, @trip_id, @date, @day_number, @activities, @notes)
		ON CONFLICT (id) DO UPDATE
		SET date       = EXCLUDED.date,
		    day_number = EXCLUDED.day_number,
		    activities = EXCLUDED.activities,
		    notes      = EXCLUDED.notes`

	args := pgx.NamedArgs{
		"id":         plan.ID,
		"user_id":    r.userID,
		"trip_id":    plan.TripID,
		"date":       plan.Date,
		"day_number": plan.DayNumber,
		"activities": activities,
		"notes":      plan.Notes,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.DayPlanRepo.Upsert: %w", err)
	}
	return nil
}

// ListByTripID returns a trip's saved day plans ordered by day number.
func (r *pgDayPlanRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.DayPlan, error) {
	const q = `
		SELECT id, trip_id, date, day_number, activities, notes
		FROM day_plans
		WHERE trip_id = @trip_id AND user_id = @user_id
		ORDER BY day_number`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID, "user_id": r.userID})
	if err != nil {
		return nil, fmt.Errorf("repo.DayPlanRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var plans []domain.DayPlan
	for rows.Next() {
		p, err := scanDayPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DayPlanRepo.ListByTripID: scan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DayPlanRepo.ListByTripID: rows: %w", err)
	}

	return plans, nil
}

// scanDayPlan maps a database row into a domain.DayPlan, decoding the
// activities JSONB document.
func scanDayPlan(s scanner) (domain.DayPlan, error) {
	var (
		p          domain.DayPlan
		date       pgtype.Date
		activities []byte
	)

	if err := s.Scan(&p.ID, &p.TripID, &date, &p.DayNumber, &activities, &p.Notes); err != nil {
		return domain.DayPlan{}, err
	}

	p.Date = date.Time.Format(domain.DateLayout)
	if len(activities) > 0 {
		if err := json.Unmarshal(activities, &p.Activities); err != nil {
			return domain.DayPlan{}, fmt.Errorf("unmarshal activities: %w", err)
		}
	}
	if p.Activities == nil {
		p.Activities = []domain.Activity{}
	}
	return p, nil
}
