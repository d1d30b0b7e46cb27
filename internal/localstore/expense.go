package localstore

import (
	"context"
	"fmt"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// expenseStore implements repo.ExpenseRepo on the key-value store.
type expenseStore struct {
	s *Store
}

// Create prepends the expense: the collection is kept newest-first.
func (e *expenseStore) Create(ctx context.Context, expense domain.Expense) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	expenses, err := loadList[domain.Expense](ctx, e.s.db, keyExpenses)
	if err != nil {
		return fmt.Errorf("localstore.ExpenseRepo.Create: %w", err)
	}

	expenses = append([]domain.Expense{expense}, expenses...)

	if err := saveList(ctx, e.s.db, keyExpenses, expenses); err != nil {
		return fmt.Errorf("localstore.ExpenseRepo.Create: %w", err)
	}
	return nil
}

func (e *expenseStore) ListByTripID(ctx context.Context, tripID string) ([]domain.Expense, error) {
	expenses, err := loadList[domain.Expense](ctx, e.s.db, keyExpenses)
	if err != nil {
		return nil, fmt.Errorf("localstore.ExpenseRepo.ListByTripID: %w", err)
	}

	var matched []domain.Expense
	for _, exp := range expenses {
		if exp.TripID == tripID {
			matched = append(matched, exp)
		}
	}
	return matched, nil
}

func (e *expenseStore) Update(ctx context.Context, expense domain.Expense) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	expenses, err := loadList[domain.Expense](ctx, e.s.db, keyExpenses)
	if err != nil {
		return fmt.Errorf("localstore.ExpenseRepo.Update: %w", err)
	}

	found := false
	for i := range expenses {
		if expenses[i].ID == expense.ID {
			expenses[i] = expense
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("localstore.ExpenseRepo.Update: %w", domain.ErrNotFound)
	}

	if err := saveList(ctx, e.s.db, keyExpenses, expenses); err != nil {
		return fmt.Errorf("localstore.ExpenseRepo.Update: %w", err)
	}
	return nil
}

func (e *expenseStore) Delete(ctx context.Context, id string) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	expenses, err := loadList[domain.Expense](ctx, e.s.db, keyExpenses)
	if err != nil {
		return fmt.Errorf("localstore.ExpenseRepo.Delete: %w", err)
	}

	kept := expenses[:0:0]
	for _, exp := range expenses {
		if exp.ID != id {
			kept = append(kept, exp)
		}
	}
	if len(kept) == len(expenses) {
		return fmt.Errorf("localstore.ExpenseRepo.Delete: %w", domain.ErrNotFound)
	}

	if err := saveList(ctx, e.s.db, keyExpenses, kept); err != nil {
		return fmt.Errorf("localstore.ExpenseRepo.Delete: %w", err)
	}
	return nil
}
