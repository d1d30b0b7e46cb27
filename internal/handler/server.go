// Package handler implements the HTTP handlers for the Travel Planner API.
// All handlers are methods on Server. Methods are split into resource-
// specific files (trip.go, expense.go, etc.) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/service"
	"github.com/pkanjana/travel-planner/internal/stats"
	"github.com/pkanjana/travel-planner/internal/weather"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, id string, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id string) error
}

// ItineraryServicer defines the day-plan operations the itinerary handlers
// depend on.
type ItineraryServicer interface {
	Days(ctx context.Context, tripID string) ([]domain.DayPlan, error)
	SaveDayPlan(ctx context.Context, tripID string, plan domain.DayPlan) (domain.DayPlan, error)
}

// ExpenseServicer defines the expense operations the expense handlers depend
// on.
type ExpenseServicer interface {
	Add(ctx context.Context, tripID string, expense domain.Expense) (domain.Expense, error)
	List(ctx context.Context, tripID string) ([]domain.Expense, error)
	Update(ctx context.Context, tripID, id string, expense domain.Expense) (domain.Expense, error)
	Delete(ctx context.Context, id string) error
	Budget(ctx context.Context, tripID string) (service.BudgetReport, error)
}

// DocumentServicer defines the document operations the document handlers
// depend on.
type DocumentServicer interface {
	Add(ctx context.Context, tripID string, doc domain.Document) (domain.Document, error)
	List(ctx context.Context, tripID string) ([]domain.Document, error)
	Update(ctx context.Context, tripID, id string, doc domain.Document) (domain.Document, error)
	Delete(ctx context.Context, id string) error
}

// PackingServicer defines the packing checklist operations the packing
// handlers depend on.
type PackingServicer interface {
	Add(ctx context.Context, tripID string, item domain.PackingItem) (domain.PackingItem, error)
	List(ctx context.Context, tripID string) ([]domain.PackingItem, error)
	Update(ctx context.Context, tripID, id string, item domain.PackingItem) (domain.PackingItem, error)
	TogglePacked(ctx context.Context, id string) (domain.PackingItem, error)
	Delete(ctx context.Context, id string) error
	Progress(ctx context.Context, tripID string) (stats.PackingProgress, error)
}

// SnapshotServicer defines the backup and selected-trip operations the
// snapshot handlers depend on.
type SnapshotServicer interface {
	Export(ctx context.Context) (domain.Snapshot, error)
	Import(ctx context.Context, data []byte) (domain.Snapshot, error)
	CurrentTripID(ctx context.Context) (string, error)
	SetCurrentTripID(ctx context.Context, id string) error
}

// WeatherServicer defines the forecast operation the weather handler depends
// on.
type WeatherServicer interface {
	TripForecast(ctx context.Context, trip domain.Trip) (weather.Report, error)
}

// Server holds the handlers for all API endpoints.
type Server struct {
	trips     TripServicer
	itinerary ItineraryServicer
	expenses  ExpenseServicer
	documents DocumentServicer
	packing   PackingServicer
	snapshots SnapshotServicer
	weather   WeatherServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	trips TripServicer,
	itinerary ItineraryServicer,
	expenses ExpenseServicer,
	documents DocumentServicer,
	packing PackingServicer,
	snapshots SnapshotServicer,
	weather WeatherServicer,
) *Server {
	return &Server{
		trips:     trips,
		itinerary: itinerary,
		expenses:  expenses,
		documents: documents,
		packing:   packing,
		snapshots: snapshots,
		weather:   weather,
	}
}

// Routes returns the chi router for the full API surface. Middleware is
// applied by the caller; this function only registers endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.Health)
	r.Get("/openapi.yaml", s.OpenAPISpec)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Get("/days", s.ListDays)
			r.Put("/days/{date}", s.SaveDayPlan)

			r.Get("/expenses", s.ListExpenses)
			r.Post("/expenses", s.AddExpense)
			r.Put("/expenses/{expenseID}", s.UpdateExpense)
			r.Delete("/expenses/{expenseID}", s.DeleteExpense)
			r.Get("/budget", s.GetBudget)

			r.Get("/documents", s.ListDocuments)
			r.Post("/documents", s.AddDocument)
			r.Put("/documents/{documentID}", s.UpdateDocument)
			r.Delete("/documents/{documentID}", s.DeleteDocument)

			r.Get("/packing", s.ListPackingItems)
			r.Post("/packing", s.AddPackingItem)
			r.Get("/packing/progress", s.GetPackingProgress)
			r.Put("/packing/{itemID}", s.UpdatePackingItem)
			r.Patch("/packing/{itemID}/toggle", s.TogglePackingItem)
			r.Delete("/packing/{itemID}", s.DeletePackingItem)

			r.Get("/weather", s.GetTripWeather)
		})
	})

	r.Get("/export", s.ExportBackup)
	r.Post("/import", s.ImportBackup)

	r.Get("/state/current-trip", s.GetCurrentTrip)
	r.Put("/state/current-trip", s.SetCurrentTrip)

	return r
}
