// Package repo contains all database access logic for the Travel Planner API.
// Each resource has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
//
// The Postgres layout mirrors the remote-table variant of the original
// application: camelCase record fields map to snake_case columns, and every
// row is scoped by an owning-user identifier. An alternative adapter backed
// by a local key-value database lives in internal/localstore; both satisfy
// the same interfaces.
package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// beginner is a db that can also open transactions. *pgxpool.Pool satisfies
// it; the snapshot repo needs it because import replaces five collections in
// one transaction.
type beginner interface {
	db
	Begin(ctx context.Context) (pgx.Tx, error)
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not a concrete implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip. Identifier and timestamps are assigned by
	// the caller (the service layer) so imported records keep theirs.
	Create(ctx context.Context, trip domain.Trip) error

	// GetByID retrieves a single trip by identifier.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Trip, error)

	// List returns all trips, most recently created first.
	List(ctx context.Context) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip in place,
	// preserving its list position. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, trip domain.Trip) error

	// Delete removes a trip and, atomically, every day plan, expense,
	// document, and packing item referencing it.
	// Returns domain.ErrNotFound if the trip does not exist.
	Delete(ctx context.Context, id string) error
}

// DayPlanRepo defines the persistence operations for DayPlans.
// Day plans are only ever saved whole (activities included) and only listed
// per trip; they are materialized lazily, so there is no Create/Update split.
type DayPlanRepo interface {
	// Upsert inserts the day plan or replaces an existing one with the same
	// identifier in place.
	Upsert(ctx context.Context, plan domain.DayPlan) error

	// ListByTripID returns the trip's saved day plans ordered by day number.
	ListByTripID(ctx context.Context, tripID string) ([]domain.DayPlan, error)
}

// ExpenseRepo defines the persistence operations for Expenses.
type ExpenseRepo interface {
	// Create inserts a new expense, surfaced most-recent-first by List.
	Create(ctx context.Context, expense domain.Expense) error

	// ListByTripID returns the trip's expenses, most recently added first.
	ListByTripID(ctx context.Context, tripID string) ([]domain.Expense, error)

	// Update replaces an existing expense in place.
	// Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, expense domain.Expense) error

	// Delete removes an expense. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}

// DocumentRepo defines the persistence operations for Documents.
type DocumentRepo interface {
	Create(ctx context.Context, doc domain.Document) error
	ListByTripID(ctx context.Context, tripID string) ([]domain.Document, error)
	Update(ctx context.Context, doc domain.Document) error
	Delete(ctx context.Context, id string) error
}

// PackingItemRepo defines the persistence operations for PackingItems.
// Items keep insertion order.
type PackingItemRepo interface {
	Create(ctx context.Context, item domain.PackingItem) error
	ListByTripID(ctx context.Context, tripID string) ([]domain.PackingItem, error)
	GetByID(ctx context.Context, id string) (domain.PackingItem, error)
	Update(ctx context.Context, item domain.PackingItem) error
	Delete(ctx context.Context, id string) error
}

// SnapshotRepo assembles and replaces the complete application state: the
// five collections plus the currently selected trip.
type SnapshotRepo interface {
	// Export reads all collections into a Snapshot.
	Export(ctx context.Context) (domain.Snapshot, error)

	// Import wholesale-replaces all collections with the snapshot's contents
	// in one transaction. Nothing is modified if any step fails.
	Import(ctx context.Context, snap domain.Snapshot) error

	// CurrentTripID returns the selected trip identifier, "" when none.
	CurrentTripID(ctx context.Context) (string, error)

	// SetCurrentTripID records the selected trip identifier.
	SetCurrentTripID(ctx context.Context, id string) error
}
