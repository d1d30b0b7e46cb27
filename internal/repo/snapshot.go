package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// pgSnapshotRepo assembles and replaces the full application state. It reuses
// the per-resource repos for reads and row inserts, wrapping import in a
// single transaction.
type pgSnapshotRepo struct {
	db     beginner
	userID string

	trips    TripRepo
	dayPlans DayPlanRepo
}

// NewSnapshotRepo constructs a SnapshotRepo. It needs a connection that can
// open transactions, so it takes *pgxpool.Pool rather than the narrower db
// interface the other repos accept.
func NewSnapshotRepo(db beginner, userID string) SnapshotRepo {
	return &pgSnapshotRepo{
		db:       db,
		userID:   userID,
		trips:    NewTripRepo(db, userID),
		dayPlans: NewDayPlanRepo(db, userID),
	}
}

// Export reads every collection plus the selected trip into one Snapshot.
// Collection order matches what the list endpoints serve: trips and expenses
// newest-first, documents and packing items in insertion order.
func (r *pgSnapshotRepo) Export(ctx context.Context) (domain.Snapshot, error) {
	snap := domain.Snapshot{
		Trips:        []domain.Trip{},
		DayPlans:     []domain.DayPlan{},
		Expenses:     []domain.Expense{},
		Documents:    []domain.Document{},
		PackingItems: []domain.PackingItem{},
	}

	trips, err := r.trips.List(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("repo.SnapshotRepo.Export: %w", err)
	}
	if trips != nil {
		snap.Trips = trips
	}

	if err := r.collectDayPlans(ctx, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("repo.SnapshotRepo.Export: %w", err)
	}
	if err := r.collectExpenses(ctx, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("repo.SnapshotRepo.Export: %w", err)
	}
	if err := r.collectDocuments(ctx, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("repo.SnapshotRepo.Export: %w", err)
	}
	if err := r.collectPackingItems(ctx, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("repo.SnapshotRepo.Export: %w", err)
	}

	current, err := r.CurrentTripID(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snap.CurrentTripID = current

	return snap, nil
}

// Import wholesale-replaces the user's data with the snapshot's contents.
// Everything happens inside one transaction; a failure at any step leaves the
// existing data untouched.
//
// Trips and expenses are inserted in reverse slice order: their lists are
// served newest-first (seq DESC), so the record at slice position 0 must end
// up with the highest seq.
func (r *pgSnapshotRepo) Import(ctx context.Context, snap domain.Snapshot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.SnapshotRepo.Import: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"packing_items", "documents", "expenses", "day_plans", "trips"} {
		q := `DELETE FROM ` + table + ` WHERE user_id = @user_id`
		if _, err := tx.Exec(ctx, q, pgx.NamedArgs{"user_id": r.userID}); err != nil {
			return fmt.Errorf("repo.SnapshotRepo.Import: clear %s: %w", table, err)
		}
	}

	tripRepo := NewTripRepo(tx, r.userID)
	for i := len(snap.Trips) - 1; i >= 0; i-- {
		if err := tripRepo.Create(ctx, snap.Trips[i]); err != nil {
			return fmt.Errorf("repo.SnapshotRepo.Import: %w", err)
		}
	}

	planRepo := NewDayPlanRepo(tx, r.userID)
	for _, plan := range snap.DayPlans {
		if err := planRepo.Upsert(ctx, plan); err != nil {
			return fmt.Errorf("repo.SnapshotRepo.Import: %w", err)
		}
	}

	expenseRepo := NewExpenseRepo(tx, r.userID)
	for i := len(snap.Expenses) - 1; i >= 0; i-- {
		if err := expenseRepo.Create(ctx, snap.Expenses[i]); err != nil {
			return fmt.Errorf("repo.SnapshotRepo.Import: %w", err)
		}
	}

	docRepo := NewDocumentRepo(tx, r.userID)
	for _, doc := range snap.Documents {
		if err := docRepo.Create(ctx, doc); err != nil {
			return fmt.Errorf("repo.SnapshotRepo.Import: %w", err)
		}
	}

	packingRepo := NewPackingItemRepo(tx, r.userID)
	for _, item := range snap.PackingItems {
		if err := packingRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("repo.SnapshotRepo.Import: %w", err)
		}
	}

	if err := setCurrentTripID(ctx, tx, r.userID, snap.CurrentTripID); err != nil {
		return fmt.Errorf("repo.SnapshotRepo.Import: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.SnapshotRepo.Import: commit: %w", err)
	}
	return nil
}

// CurrentTripID returns the selected trip identifier, "" when none was set.
func (r *pgSnapshotRepo) CurrentTripID(ctx context.Context) (string, error) {
	const q = `SELECT current_trip_id FROM app_state WHERE user_id = @user_id`

	var id string
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": r.userID}).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("repo.SnapshotRepo.CurrentTripID: %w", err)
	}
	return id, nil
}

// SetCurrentTripID records the selected trip identifier. An empty id clears
// the selection.
func (r *pgSnapshotRepo) SetCurrentTripID(ctx context.Context, id string) error {
	if err := setCurrentTripID(ctx, r.db, r.userID, id); err != nil {
		return fmt.Errorf("repo.SnapshotRepo.SetCurrentTripID: %w", err)
	}
	return nil
}

func setCurrentTripID(ctx context.Context, db db, userID, id string) error {
	const q = `
		INSERT INTO app_state (user_id, current_trip_id)
		VALUES (@user_id, @current_trip_id)
		ON CONFLICT (user_id) DO UPDATE
		SET current_trip_id = EXCLUDED.current_trip_id`

	_, err := db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "current_trip_id": id})
	return err
}

func (r *pgSnapshotRepo) collectDayPlans(ctx context.Context, snap *domain.Snapshot) error {
	const q = `
		SELECT id, trip_id, date, day_number, activities, notes
		FROM day_plans
		WHERE user_id = @user_id
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": r.userID})
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanDayPlan(rows)
		if err != nil {
			return err
		}
		snap.DayPlans = append(snap.DayPlans, p)
	}
	return rows.Err()
}

func (r *pgSnapshotRepo) collectExpenses(ctx context.Context, snap *domain.Snapshot) error {
	const q = `
		SELECT id, trip_id, date, category, amount, currency, description, notes
		FROM expenses
		WHERE user_id = @user_id
		ORDER BY seq DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": r.userID})
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return err
		}
		snap.Expenses = append(snap.Expenses, e)
	}
	return rows.Err()
}

func (r *pgSnapshotRepo) collectDocuments(ctx context.Context, snap *domain.Snapshot) error {
	const q = `
		SELECT id, trip_id, type, title, confirmation_number, file_url, notes
		FROM documents
		WHERE user_id = @user_id
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": r.userID})
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return err
		}
		snap.Documents = append(snap.Documents, d)
	}
	return rows.Err()
}

func (r *pgSnapshotRepo) collectPackingItems(ctx context.Context, snap *domain.Snapshot) error {
	const q = `
		SELECT id, trip_id, category, item, quantity, packed
		FROM packing_items
		WHERE user_id = @user_id
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": r.userID})
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanPackingItem(rows)
		if err != nil {
			return err
		}
		snap.PackingItems = append(snap.PackingItems, item)
	}
	return rows.Err()
}
