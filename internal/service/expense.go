package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/repo"
	"github.com/pkanjana/travel-planner/internal/stats"
)

// BudgetReport combines the headline budget position with the per-category
// breakdown served by the budget endpoint.
type BudgetReport struct {
	Summary    stats.BudgetSummary   `json:"summary"`
	Categories []stats.CategoryTotal `json:"categories"`
}

// ExpenseService implements business logic for expense tracking.
type ExpenseService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewExpenseService constructs an ExpenseService backed by the provided repos.
func NewExpenseService(trips repo.TripRepo, expenses repo.ExpenseRepo) *ExpenseService {
	return &ExpenseService{trips: trips, expenses: expenses}
}

// Add validates and records a new expense against an existing trip.
func (s *ExpenseService) Add(ctx context.Context, tripID string, expense domain.Expense) (domain.Expense, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Add: %w", err)
	}

	expense = normalizeExpense(expense)
	if err := validateExpense(expense); err != nil {
		return domain.Expense{}, err
	}

	expense.ID = domain.NewID()
	expense.TripID = tripID

	if err := s.expenses.Create(ctx, expense); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Add: %w", err)
	}
	return expense, nil
}

// List returns a trip's expenses, most recently added first.
func (s *ExpenseService) List(ctx context.Context, tripID string) ([]domain.Expense, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ExpenseService.List: %w", err)
	}

	expenses, err := s.expenses.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.List: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nil
}

// Update validates and overwrites an existing expense in place.
func (s *ExpenseService) Update(ctx context.Context, tripID, id string, expense domain.Expense) (domain.Expense, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}

	expense = normalizeExpense(expense)
	if err := validateExpense(expense); err != nil {
		return domain.Expense{}, err
	}

	expense.ID = id
	expense.TripID = tripID
	if err := s.expenses.Update(ctx, expense); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	return expense, nil
}

// Delete removes an expense.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	return nil
}

// Budget computes the trip's budget position and per-category breakdown.
func (s *ExpenseService) Budget(ctx context.Context, tripID string) (BudgetReport, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return BudgetReport{}, fmt.Errorf("service.ExpenseService.Budget: %w", err)
	}

	expenses, err := s.expenses.ListByTripID(ctx, tripID)
	if err != nil {
		return BudgetReport{}, fmt.Errorf("service.ExpenseService.Budget: %w", err)
	}

	return BudgetReport{
		Summary:    stats.Budget(trip, expenses),
		Categories: stats.ByCategory(expenses),
	}, nil
}

func normalizeExpense(e domain.Expense) domain.Expense {
	e.Description = strings.TrimSpace(e.Description)
	if e.Category == "" {
		e.Category = domain.ExpenseOther
	}
	if e.Currency == "" {
		e.Currency = DefaultCurrency
	}
	return e
}

func validateExpense(e domain.Expense) error {
	if !domain.ValidDate(e.Date) {
		return fmt.Errorf("%w: date must be a YYYY-MM-DD date", domain.ErrValidation)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, e.Category)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	return nil
}
