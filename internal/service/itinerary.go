package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/repo"
)

// ItineraryService implements business logic for day plans.
//
// Days are materialized lazily: the itinerary always spans every date of the
// trip, but a day plan row only exists once something has been saved for that
// date. Days returns the merged view; SaveDayPlan persists one day.
type ItineraryService struct {
	trips repo.TripRepo
	plans repo.DayPlanRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided
// repos.
func NewItineraryService(trips repo.TripRepo, plans repo.DayPlanRepo) *ItineraryService {
	return &ItineraryService{trips: trips, plans: plans}
}

// Days returns one entry per trip date, in order. Dates with a saved plan
// carry it; the rest are blank placeholders with an empty identifier and no
// activities.
func (s *ItineraryService) Days(ctx context.Context, tripID string) ([]domain.DayPlan, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Days: %w", err)
	}

	saved, err := s.plans.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Days: %w", err)
	}
	byDate := make(map[string]domain.DayPlan, len(saved))
	for _, p := range saved {
		byDate[p.Date] = p
	}

	dates := domain.DatesBetween(trip.StartDate, trip.EndDate)
	days := make([]domain.DayPlan, 0, len(dates))
	for i, date := range dates {
		if p, ok := byDate[date]; ok {
			p.DayNumber = i + 1
			days = append(days, p)
			continue
		}
		days = append(days, domain.DayPlan{
			TripID:     tripID,
			Date:       date,
			DayNumber:  i + 1,
			Activities: []domain.Activity{},
		})
	}
	return days, nil
}

// SaveDayPlan validates and persists the plan for one trip date, creating or
// replacing it. The day number is derived from the date's position within the
// trip, and activities without an identifier are assigned one.
func (s *ItineraryService) SaveDayPlan(ctx context.Context, tripID string, plan domain.DayPlan) (domain.DayPlan, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.ItineraryService.SaveDayPlan: %w", err)
	}

	if !domain.ValidDate(plan.Date) {
		return domain.DayPlan{}, fmt.Errorf("%w: date must be a YYYY-MM-DD date", domain.ErrValidation)
	}

	dayNumber := 0
	for i, date := range domain.DatesBetween(trip.StartDate, trip.EndDate) {
		if date == plan.Date {
			dayNumber = i + 1
			break
		}
	}
	if dayNumber == 0 {
		return domain.DayPlan{}, fmt.Errorf("%w: date %s is outside the trip", domain.ErrValidation, plan.Date)
	}

	for i := range plan.Activities {
		a := &plan.Activities[i]
		a.Title = strings.TrimSpace(a.Title)
		if a.Title == "" {
			return domain.DayPlan{}, fmt.Errorf("%w: activity title is required", domain.ErrValidation)
		}
		if a.EstimatedCost < 0 {
			return domain.DayPlan{}, fmt.Errorf("%w: activity cost must not be negative", domain.ErrValidation)
		}
		if len(a.Images) > domain.MaxActivityImages {
			return domain.DayPlan{}, fmt.Errorf("%w: an activity holds at most %d images",
				domain.ErrValidation, domain.MaxActivityImages)
		}
		if a.ID == "" {
			a.ID = domain.NewID()
		}
	}

	plan.TripID = tripID
	plan.DayNumber = dayNumber
	if plan.ID == "" {
		// One plan per date: saving a date that already has one replaces it.
		saved, err := s.plans.ListByTripID(ctx, tripID)
		if err != nil {
			return domain.DayPlan{}, fmt.Errorf("service.ItineraryService.SaveDayPlan: %w", err)
		}
		for _, p := range saved {
			if p.Date == plan.Date {
				plan.ID = p.ID
				break
			}
		}
	}
	if plan.ID == "" {
		plan.ID = domain.NewID()
	}
	if plan.Activities == nil {
		plan.Activities = []domain.Activity{}
	}

	if err := s.plans.Upsert(ctx, plan); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.ItineraryService.SaveDayPlan: %w", err)
	}
	return plan, nil
}
