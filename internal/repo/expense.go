package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// pgExpenseRepo is the Postgres implementation of ExpenseRepo.
type pgExpenseRepo struct {
	db     db
	userID string
}

// NewExpenseRepo constructs an ExpenseRepo backed by the provided db connection.
func NewExpenseRepo(db db, userID string) ExpenseRepo {
	return &pgExpenseRepo{db: db, userID: userID}
}

// Create inserts a new expense row.
func (r *pgExpenseRepo) Create(ctx context.Context, expense domain.Expense) error {
	const q = `
		INSERT INTO expenses (id, user_id, trip_id, date, category, amount, currency, description, notes)
		VALUES (@id, @user_id, @trip_id, @date, @category, @amount, @currency, @description, @notes)`

	if _, err := r.db.Exec(ctx, q, expenseArgs(expense, r.userID)); err != nil {
		return fmt.Errorf("repo.ExpenseRepo.Create: %w", err)
	}
	return nil
}

// ListByTripID returns a trip's expenses, most recently added first.
func (r *pgExpenseRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.Expense, error) {
	const q = `
		SELECT id, trip_id, date, category, amount, currency, description, notes
		FROM expenses
		WHERE trip_id = @trip_id AND user_id = @user_id
		ORDER BY seq DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID, "user_id": r.userID})
	if err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ExpenseRepo.ListByTripID: scan: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.ListByTripID: rows: %w", err)
	}

	return expenses, nil
}

// Update overwrites an existing expense in place. The seq column is not
// touched, so the expense keeps its list position.
func (r *pgExpenseRepo) Update(ctx context.Context, expense domain.Expense) error {
	const q = `
		UPDATE expenses
		SET date        = @date,
		    category    = @category,
		    amount      = @amount,
		    currency    = @currency,
		    description = @description,
		    notes       = @notes
		WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, expenseArgs(expense, r.userID))
	if err != nil {
		return fmt.Errorf("repo.ExpenseRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ExpenseRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes an expense by identifier.
func (r *pgExpenseRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM expenses WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": r.userID})
	if err != nil {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func expenseArgs(e domain.Expense, userID string) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":          e.ID,
		"user_id":     userID,
		"trip_id":     e.TripID,
		"date":        e.Date,
		"category":    string(e.Category),
		"amount":      e.Amount,
		"currency":    e.Currency,
		"description": e.Description,
		"notes":       e.Notes,
	}
}

func scanExpense(s scanner) (domain.Expense, error) {
	var (
		e        domain.Expense
		date     pgtype.Date
		category string
	)

	err := s.Scan(&e.ID, &e.TripID, &date, &category, &e.Amount, &e.Currency, &e.Description, &e.Notes)
	if err != nil {
		return domain.Expense{}, err
	}

	e.Date = date.Time.Format(domain.DateLayout)
	e.Category = domain.ExpenseCategory(category)
	return e, nil
}
