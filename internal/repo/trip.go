package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// pgTripRepo is the Postgres implementation of TripRepo.
// Every query is scoped to the owning user.
type pgTripRepo struct {
	db     db
	userID string
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db, userID string) TripRepo {
	return &pgTripRepo{db: db, userID: userID}
}

const tripColumns = `id, name, destination, country, start_date, end_date,
		budget, currency, notes, cover_image, status, created_at, updated_at`

// Create inserts a new trip row.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) error {
	const q = `
		INSERT INTO trips (id, user_id, name, destination, country, start_date, end_date,
		                   budget, currency, notes, cover_image, status, created_at, updated_at)
		VALUES (@id, @user_id, @name, @destination, @country, @start_date, @end_date,
		        @budget, @currency, @notes, @cover_image, @status, @created_at, @updated_at)`

	if _, err := r.db.Exec(ctx, q, tripArgs(trip, r.userID)); err != nil {
		return fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return nil
}

// GetByID retrieves a trip by identifier.
func (r *pgTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	q := `SELECT ` + tripColumns + ` FROM trips WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": r.userID})
	trip, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips, most recently created first. The seq tiebreak keeps
// the order stable when imported records share a created_at timestamp.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	q := `SELECT ` + tripColumns + ` FROM trips WHERE user_id = @user_id
		ORDER BY created_at DESC, seq DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": r.userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

// Update overwrites the mutable fields of a trip.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) error {
	const q = `
		UPDATE trips
		SET name        = @name,
		    destination = @destination,
		    country     = @country,
		    start_date  = @start_date,
		    end_date    = @end_date,
		    budget      = @budget,
		    currency    = @currency,
		    notes       = @notes,
		    cover_image = @cover_image,
		    status      = @status,
		    updated_at  = @updated_at
		WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, tripArgs(trip, r.userID))
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes a trip. Dependent rows in day_plans, expenses, documents,
// and packing_items are removed by their ON DELETE CASCADE foreign keys, so
// the whole cascade is a single atomic statement.
func (r *pgTripRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM trips WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": r.userID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tripArgs maps a domain.Trip onto named SQL arguments.
func tripArgs(t domain.Trip, userID string) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":          t.ID,
		"user_id":     userID,
		"name":        t.Name,
		"destination": t.Destination,
		"country":     t.Country,
		"start_date":  t.StartDate,
		"end_date":    t.EndDate,
		"budget":      t.Budget,
		"currency":    t.Currency,
		"notes":       t.Notes,
		"cover_image": t.CoverImage,
		"status":      string(t.Status),
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

// scanTrip maps a single database row into a domain.Trip.
// DATE columns come back as pgtype.Date and are re-rendered as the canonical
// "2006-01-02" strings the domain uses.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		status    string
		startDate pgtype.Date
		endDate   pgtype.Date
	)

	err := s.Scan(&t.ID, &t.Name, &t.Destination, &t.Country, &startDate, &endDate,
		&t.Budget, &t.Currency, &t.Notes, &t.CoverImage, &status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.Status = domain.TripStatus(status)
	t.StartDate = startDate.Time.Format(domain.DateLayout)
	t.EndDate = endDate.Time.Format(domain.DateLayout)
	return t, nil
}
