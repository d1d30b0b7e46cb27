package service_test

import (
	"context"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/repo"
)

// ---- mock TripRepo ---------------------------------------------------------

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) error
	getByID func(ctx context.Context, id string) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) error
	delete  func(ctx context.Context, id string) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) error {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) error {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

// tripGetter returns a mockTripRepo whose GetByID serves the given trip.
// Most child-resource tests only need the parent lookup.
func tripGetter(trip domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id string) (domain.Trip, error) {
			if id != trip.ID {
				return domain.Trip{}, domain.ErrNotFound
			}
			return trip, nil
		},
	}
}

// ---- mock DayPlanRepo ------------------------------------------------------

type mockDayPlanRepo struct {
	upsert       func(ctx context.Context, plan domain.DayPlan) error
	listByTripID func(ctx context.Context, tripID string) ([]domain.DayPlan, error)
}

func (m *mockDayPlanRepo) Upsert(ctx context.Context, plan domain.DayPlan) error {
	return m.upsert(ctx, plan)
}
func (m *mockDayPlanRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.DayPlan, error) {
	return m.listByTripID(ctx, tripID)
}

var _ repo.DayPlanRepo = (*mockDayPlanRepo)(nil)

// ---- mock ExpenseRepo ------------------------------------------------------

type mockExpenseRepo struct {
	create       func(ctx context.Context, expense domain.Expense) error
	listByTripID func(ctx context.Context, tripID string) ([]domain.Expense, error)
	update       func(ctx context.Context, expense domain.Expense) error
	delete       func(ctx context.Context, id string) error
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense domain.Expense) error {
	return m.create(ctx, expense)
}
func (m *mockExpenseRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.Expense, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockExpenseRepo) Update(ctx context.Context, expense domain.Expense) error {
	return m.update(ctx, expense)
}
func (m *mockExpenseRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ repo.ExpenseRepo = (*mockExpenseRepo)(nil)

// ---- mock DocumentRepo -----------------------------------------------------

type mockDocumentRepo struct {
	create       func(ctx context.Context, doc domain.Document) error
	listByTripID func(ctx context.Context, tripID string) ([]domain.Document, error)
	update       func(ctx context.Context, doc domain.Document) error
	delete       func(ctx context.Context, id string) error
}

func (m *mockDocumentRepo) Create(ctx context.Context, doc domain.Document) error {
	return m.create(ctx, doc)
}
func (m *mockDocumentRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.Document, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockDocumentRepo) Update(ctx context.Context, doc domain.Document) error {
	return m.update(ctx, doc)
}
func (m *mockDocumentRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ repo.DocumentRepo = (*mockDocumentRepo)(nil)

// ---- mock PackingItemRepo --------------------------------------------------

type mockPackingItemRepo struct {
	create       func(ctx context.Context, item domain.PackingItem) error
	listByTripID func(ctx context.Context, tripID string) ([]domain.PackingItem, error)
	getByID      func(ctx context.Context, id string) (domain.PackingItem, error)
	update       func(ctx context.Context, item domain.PackingItem) error
	delete       func(ctx context.Context, id string) error
}

func (m *mockPackingItemRepo) Create(ctx context.Context, item domain.PackingItem) error {
	return m.create(ctx, item)
}
func (m *mockPackingItemRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.PackingItem, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockPackingItemRepo) GetByID(ctx context.Context, id string) (domain.PackingItem, error) {
	return m.getByID(ctx, id)
}
func (m *mockPackingItemRepo) Update(ctx context.Context, item domain.PackingItem) error {
	return m.update(ctx, item)
}
func (m *mockPackingItemRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ repo.PackingItemRepo = (*mockPackingItemRepo)(nil)

// ---- mock SnapshotRepo -----------------------------------------------------

type mockSnapshotRepo struct {
	export           func(ctx context.Context) (domain.Snapshot, error)
	importSnap       func(ctx context.Context, snap domain.Snapshot) error
	currentTripID    func(ctx context.Context) (string, error)
	setCurrentTripID func(ctx context.Context, id string) error
}

func (m *mockSnapshotRepo) Export(ctx context.Context) (domain.Snapshot, error) {
	return m.export(ctx)
}
func (m *mockSnapshotRepo) Import(ctx context.Context, snap domain.Snapshot) error {
	return m.importSnap(ctx, snap)
}
func (m *mockSnapshotRepo) CurrentTripID(ctx context.Context) (string, error) {
	return m.currentTripID(ctx)
}
func (m *mockSnapshotRepo) SetCurrentTripID(ctx context.Context, id string) error {
	return m.setCurrentTripID(ctx, id)
}

var _ repo.SnapshotRepo = (*mockSnapshotRepo)(nil)
