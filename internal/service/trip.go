// Package service contains the business logic for the Travel Planner API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/repo"
)

// DefaultCurrency is applied when a trip or expense does not specify one.
const DefaultCurrency = "THB"

// TripService implements business logic for Trip operations.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(trips repo.TripRepo) *TripService {
	return &TripService{trips: trips}
}

// Create validates and persists a new trip, assigning its identifier and
// timestamps.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip = normalizeTrip(trip)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	now := time.Now().UTC()
	trip.ID = domain.NewID()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if err := s.trips.Create(ctx, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// GetByID returns a single trip by identifier.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips, most recently created first. Always returns a
// non-nil slice so the handler serializes an empty list as [].
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// Update validates and overwrites an existing trip. The identifier and
// creation timestamp are preserved from the stored record; UpdatedAt is
// refreshed.
func (s *TripService) Update(ctx context.Context, id string, trip domain.Trip) (domain.Trip, error) {
	existing, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	trip = normalizeTrip(trip)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	trip.ID = existing.ID
	trip.CreatedAt = existing.CreatedAt
	trip.UpdatedAt = time.Now().UTC()

	if err := s.trips.Update(ctx, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return trip, nil
}

// Delete removes a trip and, through the storage layer, every dependent
// record.
func (s *TripService) Delete(ctx context.Context, id string) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

func normalizeTrip(trip domain.Trip) domain.Trip {
	trip.Name = strings.TrimSpace(trip.Name)
	trip.Destination = strings.TrimSpace(trip.Destination)
	trip.Country = strings.TrimSpace(trip.Country)
	if trip.Status == "" {
		trip.Status = domain.StatusPlanning
	}
	if trip.Currency == "" {
		trip.Currency = DefaultCurrency
	}
	return trip
}

func validateTrip(trip domain.Trip) error {
	if trip.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.Destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if !domain.ValidDate(trip.StartDate) {
		return fmt.Errorf("%w: startDate must be a YYYY-MM-DD date", domain.ErrValidation)
	}
	if !domain.ValidDate(trip.EndDate) {
		return fmt.Errorf("%w: endDate must be a YYYY-MM-DD date", domain.ErrValidation)
	}
	if trip.EndDate < trip.StartDate {
		return fmt.Errorf("%w: endDate must not precede startDate", domain.ErrValidation)
	}
	if trip.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	if !trip.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, trip.Status)
	}
	return nil
}
