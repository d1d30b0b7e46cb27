// Package localstore is the embedded storage adapter: a single-file SQLite
// database holding each record collection as one JSON document in a key-value
// table. The layout mirrors the browser-storage variant of the original
// application key for key, so its semantics carry over directly — lists are
// whole-collection reads, and ordering is the order of the stored array.
//
// It satisfies the same repository interfaces as the Postgres adapter in
// internal/repo, so the rest of the application cannot tell the two apart.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers "sqlite" driver

	"github.com/pkanjana/travel-planner/internal/repo"
)

// Storage keys, unchanged from the original application so that a database
// seeded from a backup of it reads naturally.
const (
	keyTrips        = "travel_planner_trips"
	keyDayPlans     = "travel_planner_day_plans"
	keyExpenses     = "travel_planner_expenses"
	keyDocuments    = "travel_planner_documents"
	keyPackingItems = "travel_planner_packing_items"
	keyCurrentTrip  = "travel_planner_current_trip"
)

const schema = `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`

// Store is the shared handle behind all local repositories. Every mutation is
// a read-modify-write of a whole JSON document, so a single mutex serializes
// writers; SQLite in WAL mode handles concurrent readers.
type Store struct {
	db *sqlx.DB
	mu sync.Mutex
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("localstore.Open: %w", err)
	}

	for _, pragma := range []string{
		`PRAGMA journal_mode = WAL`,
		`PRAGMA busy_timeout = 5000`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("localstore.Open: %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("localstore.Open: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Trips returns the trip repository view of the store.
func (s *Store) Trips() repo.TripRepo { return &tripStore{s} }

// DayPlans returns the day plan repository view of the store.
func (s *Store) DayPlans() repo.DayPlanRepo { return &dayPlanStore{s} }

// Expenses returns the expense repository view of the store.
func (s *Store) Expenses() repo.ExpenseRepo { return &expenseStore{s} }

// Documents returns the document repository view of the store.
func (s *Store) Documents() repo.DocumentRepo { return &documentStore{s} }

// PackingItems returns the packing item repository view of the store.
func (s *Store) PackingItems() repo.PackingItemRepo { return &packingStore{s} }

// Snapshots returns the snapshot repository view of the store.
func (s *Store) Snapshots() repo.SnapshotRepo { return &snapshotStore{s} }

// getValue reads a raw value by key. The second return is false when the key
// has never been written.
func getValue(ctx context.Context, q sqlx.QueryerContext, key string) (string, bool, error) {
	var value string
	err := sqlx.GetContext(ctx, q, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("localstore: get %q: %w", key, err)
	}
	return value, true, nil
}

// setValue writes a raw value, inserting or replacing.
func setValue(ctx context.Context, e sqlx.ExecerContext, key, value string) error {
	const q = `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	if _, err := e.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("localstore: set %q: %w", key, err)
	}
	return nil
}

// queryExecer is satisfied by both *sqlx.DB and *sqlx.Tx, so document helpers
// work inside and outside transactions.
type queryExecer interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// loadList decodes the JSON array stored under key. A missing key decodes as
// an empty collection.
func loadList[T any](ctx context.Context, q sqlx.QueryerContext, key string) ([]T, error) {
	raw, ok, err := getValue(ctx, q, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("localstore: decode %q: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// saveList encodes items as a JSON array and stores it under key.
func saveList[T any](ctx context.Context, e sqlx.ExecerContext, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("localstore: encode %q: %w", key, err)
	}
	return setValue(ctx, e, key, string(raw))
}
