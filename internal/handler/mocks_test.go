package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/handler"
	"github.com/pkanjana/travel-planner/internal/service"
	"github.com/pkanjana/travel-planner/internal/stats"
	"github.com/pkanjana/travel-planner/internal/weather"
)

// Test doubles for the servicer interfaces. Set only the method fields your
// test needs; an unset field panics, which points straight at the handler
// calling something the test did not expect.

type mockTripServicer struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id string) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, id string, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id string) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) Update(ctx context.Context, id string, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, id, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockItineraryServicer struct {
	days        func(ctx context.Context, tripID string) ([]domain.DayPlan, error)
	saveDayPlan func(ctx context.Context, tripID string, plan domain.DayPlan) (domain.DayPlan, error)
}

func (m *mockItineraryServicer) Days(ctx context.Context, tripID string) ([]domain.DayPlan, error) {
	return m.days(ctx, tripID)
}
func (m *mockItineraryServicer) SaveDayPlan(ctx context.Context, tripID string, plan domain.DayPlan) (domain.DayPlan, error) {
	return m.saveDayPlan(ctx, tripID, plan)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

type mockExpenseServicer struct {
	add    func(ctx context.Context, tripID string, expense domain.Expense) (domain.Expense, error)
	list   func(ctx context.Context, tripID string) ([]domain.Expense, error)
	update func(ctx context.Context, tripID, id string, expense domain.Expense) (domain.Expense, error)
	delete func(ctx context.Context, id string) error
	budget func(ctx context.Context, tripID string) (service.BudgetReport, error)
}

func (m *mockExpenseServicer) Add(ctx context.Context, tripID string, e domain.Expense) (domain.Expense, error) {
	return m.add(ctx, tripID, e)
}
func (m *mockExpenseServicer) List(ctx context.Context, tripID string) ([]domain.Expense, error) {
	return m.list(ctx, tripID)
}
func (m *mockExpenseServicer) Update(ctx context.Context, tripID, id string, e domain.Expense) (domain.Expense, error) {
	return m.update(ctx, tripID, id, e)
}
func (m *mockExpenseServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}
func (m *mockExpenseServicer) Budget(ctx context.Context, tripID string) (service.BudgetReport, error) {
	return m.budget(ctx, tripID)
}

var _ handler.ExpenseServicer = (*mockExpenseServicer)(nil)

type mockDocumentServicer struct {
	add    func(ctx context.Context, tripID string, doc domain.Document) (domain.Document, error)
	list   func(ctx context.Context, tripID string) ([]domain.Document, error)
	update func(ctx context.Context, tripID, id string, doc domain.Document) (domain.Document, error)
	delete func(ctx context.Context, id string) error
}

func (m *mockDocumentServicer) Add(ctx context.Context, tripID string, d domain.Document) (domain.Document, error) {
	return m.add(ctx, tripID, d)
}
func (m *mockDocumentServicer) List(ctx context.Context, tripID string) ([]domain.Document, error) {
	return m.list(ctx, tripID)
}
func (m *mockDocumentServicer) Update(ctx context.Context, tripID, id string, d domain.Document) (domain.Document, error) {
	return m.update(ctx, tripID, id, d)
}
func (m *mockDocumentServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ handler.DocumentServicer = (*mockDocumentServicer)(nil)

type mockPackingServicer struct {
	add          func(ctx context.Context, tripID string, item domain.PackingItem) (domain.PackingItem, error)
	list         func(ctx context.Context, tripID string) ([]domain.PackingItem, error)
	update       func(ctx context.Context, tripID, id string, item domain.PackingItem) (domain.PackingItem, error)
	togglePacked func(ctx context.Context, id string) (domain.PackingItem, error)
	delete       func(ctx context.Context, id string) error
	progress     func(ctx context.Context, tripID string) (stats.PackingProgress, error)
}

func (m *mockPackingServicer) Add(ctx context.Context, tripID string, i domain.PackingItem) (domain.PackingItem, error) {
	return m.add(ctx, tripID, i)
}
func (m *mockPackingServicer) List(ctx context.Context, tripID string) ([]domain.PackingItem, error) {
	return m.list(ctx, tripID)
}
func (m *mockPackingServicer) Update(ctx context.Context, tripID, id string, i domain.PackingItem) (domain.PackingItem, error) {
	return m.update(ctx, tripID, id, i)
}
func (m *mockPackingServicer) TogglePacked(ctx context.Context, id string) (domain.PackingItem, error) {
	return m.togglePacked(ctx, id)
}
func (m *mockPackingServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}
func (m *mockPackingServicer) Progress(ctx context.Context, tripID string) (stats.PackingProgress, error) {
	return m.progress(ctx, tripID)
}

var _ handler.PackingServicer = (*mockPackingServicer)(nil)

type mockSnapshotServicer struct {
	export           func(ctx context.Context) (domain.Snapshot, error)
	importSnap       func(ctx context.Context, data []byte) (domain.Snapshot, error)
	currentTripID    func(ctx context.Context) (string, error)
	setCurrentTripID func(ctx context.Context, id string) error
}

func (m *mockSnapshotServicer) Export(ctx context.Context) (domain.Snapshot, error) {
	return m.export(ctx)
}
func (m *mockSnapshotServicer) Import(ctx context.Context, data []byte) (domain.Snapshot, error) {
	return m.importSnap(ctx, data)
}
func (m *mockSnapshotServicer) CurrentTripID(ctx context.Context) (string, error) {
	return m.currentTripID(ctx)
}
func (m *mockSnapshotServicer) SetCurrentTripID(ctx context.Context, id string) error {
	return m.setCurrentTripID(ctx, id)
}

var _ handler.SnapshotServicer = (*mockSnapshotServicer)(nil)

type mockWeatherServicer struct {
	tripForecast func(ctx context.Context, trip domain.Trip) (weather.Report, error)
}

func (m *mockWeatherServicer) TripForecast(ctx context.Context, trip domain.Trip) (weather.Report, error) {
	return m.tripForecast(ctx, trip)
}

var _ handler.WeatherServicer = (*mockWeatherServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// mocks collects one double per servicer. Zero-value fields are fine as long
// as the request under test never reaches them.
type mocks struct {
	trips     mockTripServicer
	itinerary mockItineraryServicer
	expenses  mockExpenseServicer
	documents mockDocumentServicer
	packing   mockPackingServicer
	snapshots mockSnapshotServicer
	weather   mockWeatherServicer
}

// newHTTPHandler wires a Server with the given mocks into the chi router,
// mirroring how main.go wires it in production.
func newHTTPHandler(m *mocks) http.Handler {
	srv := handler.NewServer(
		&m.trips, &m.itinerary, &m.expenses, &m.documents,
		&m.packing, &m.snapshots, &m.weather,
	)
	return srv.Routes()
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          domain.NewID(),
		Name:        "Summer in Kyoto",
		Destination: "Kyoto",
		Country:     "Japan",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-08",
		Budget:      50000,
		Currency:    "THB",
		Status:      domain.StatusPlanning,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// errEnvelope mirrors the error response shape for decoding in assertions.
type errEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, body *bytes.Buffer) errEnvelope {
	t.Helper()
	var resp errEnvelope
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}
