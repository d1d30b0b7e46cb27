package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/repo"
	"github.com/pkanjana/travel-planner/testutil"
)

// newTestTx opens a single transaction that is rolled back when the test
// finishes. All repos built on it share the transaction, so tests can create
// a parent trip and child records together with free cleanup.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// tripRecord returns a Trip ready for insertion, with the identifier and
// timestamps the service layer would have assigned.
func tripRecord(name string) domain.Trip {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return domain.Trip{
		ID:          domain.NewID(),
		Name:        name,
		Destination: "Chiang Mai",
		Country:     "Thailand",
		StartDate:   "2026-11-02",
		EndDate:     "2026-11-08",
		Budget:      25000,
		Currency:    "THB",
		Status:      domain.StatusPlanning,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestTripRepo_CreateAndGet(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx, "test-user")
	ctx := context.Background()

	input := tripRecord("Loy Krathong")
	require.NoError(t, r.Create(ctx, input))

	got, err := r.GetByID(ctx, input.ID)

	require.NoError(t, err)
	assert.Equal(t, input.ID, got.ID)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Destination, got.Destination)
	assert.Equal(t, "2026-11-02", got.StartDate)
	assert.Equal(t, "2026-11-08", got.EndDate)
	assert.Equal(t, input.Budget, got.Budget)
	assert.Equal(t, domain.StatusPlanning, got.Status)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx, "test-user")

	_, err := r.GetByID(context.Background(), domain.NewID())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_List_NewestFirst(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx, "test-user")
	ctx := context.Background()

	// Identical created_at timestamps: the seq tiebreak must still put the
	// later insert first.
	first := tripRecord("First")
	second := tripRecord("Second")
	second.CreatedAt = first.CreatedAt
	require.NoError(t, r.Create(ctx, first))
	require.NoError(t, r.Create(ctx, second))

	trips, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "Second", trips[0].Name)
	assert.Equal(t, "First", trips[1].Name)
}

func TestTripRepo_List_ScopedToUser(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()

	require.NoError(t, repo.NewTripRepo(tx, "user-a").Create(ctx, tripRecord("Mine")))
	require.NoError(t, repo.NewTripRepo(tx, "user-b").Create(ctx, tripRecord("Theirs")))

	trips, err := repo.NewTripRepo(tx, "user-a").List(ctx)

	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Mine", trips[0].Name)
}

func TestTripRepo_Update(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx, "test-user")
	ctx := context.Background()

	trip := tripRecord("Before")
	require.NoError(t, r.Create(ctx, trip))

	trip.Name = "After"
	trip.Status = domain.StatusBooked
	trip.UpdatedAt = time.Now().UTC()
	require.NoError(t, r.Update(ctx, trip))

	got, err := r.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, domain.StatusBooked, got.Status)
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx, "test-user")

	err := r.Update(context.Background(), tripRecord("Ghost"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete_CascadesToChildren(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trips := repo.NewTripRepo(tx, "test-user")
	expenses := repo.NewExpenseRepo(tx, "test-user")
	packing := repo.NewPackingItemRepo(tx, "test-user")

	trip := tripRecord("Doomed")
	require.NoError(t, trips.Create(ctx, trip))
	require.NoError(t, expenses.Create(ctx, domain.Expense{
		ID: domain.NewID(), TripID: trip.ID, Date: "2026-11-03",
		Category: domain.ExpenseFood, Amount: 350, Currency: "THB",
	}))
	require.NoError(t, packing.Create(ctx, domain.PackingItem{
		ID: domain.NewID(), TripID: trip.ID,
		Category: domain.PackingClothes, Item: "Rain jacket", Quantity: 1,
	}))

	require.NoError(t, trips.Delete(ctx, trip.ID))

	_, err := trips.GetByID(ctx, trip.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	left, err := expenses.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	items, err := packing.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
