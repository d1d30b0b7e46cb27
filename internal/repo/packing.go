package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// pgPackingItemRepo is the Postgres implementation of PackingItemRepo.
type pgPackingItemRepo struct {
	db     db
	userID string
}

// NewPackingItemRepo constructs a PackingItemRepo backed by the provided db
// connection.
func NewPackingItemRepo(db db, userID string) PackingItemRepo {
	return &pgPackingItemRepo{db: db, userID: userID}
}

func (r *pgPackingItemRepo) Create(ctx context.Context, item domain.PackingItem) error {
	const q = `
		INSERT INTO packing_items (id, user_id, trip_id, category, item, quantity, packed)
		VALUES (@id, @user_id, @trip_id, @category, @item, @quantity, @packed)`

	if _, err := r.db.Exec(ctx, q, packingArgs(item, r.userID)); err != nil {
		return fmt.Errorf("repo.PackingItemRepo.Create: %w", err)
	}
	return nil
}

// ListByTripID returns a trip's packing items in insertion order.
func (r *pgPackingItemRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.PackingItem, error) {
	const q = `
		SELECT id, trip_id, category, item, quantity, packed
		FROM packing_items
		WHERE trip_id = @trip_id AND user_id = @user_id
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID, "user_id": r.userID})
	if err != nil {
		return nil, fmt.Errorf("repo.PackingItemRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var items []domain.PackingItem
	for rows.Next() {
		item, err := scanPackingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PackingItemRepo.ListByTripID: scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PackingItemRepo.ListByTripID: rows: %w", err)
	}

	return items, nil
}

func (r *pgPackingItemRepo) GetByID(ctx context.Context, id string) (domain.PackingItem, error) {
	const q = `
		SELECT id, trip_id, category, item, quantity, packed
		FROM packing_items
		WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": r.userID})
	item, err := scanPackingItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = domain.ErrNotFound
		}
		return domain.PackingItem{}, fmt.Errorf("repo.PackingItemRepo.GetByID: %w", err)
	}
	return item, nil
}

func (r *pgPackingItemRepo) Update(ctx context.Context, item domain.PackingItem) error {
	const q = `
		UPDATE packing_items
		SET category = @category,
		    item     = @item,
		    quantity = @quantity,
		    packed   = @packed
		WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, packingArgs(item, r.userID))
	if err != nil {
		return fmt.Errorf("repo.PackingItemRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackingItemRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgPackingItemRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM packing_items WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": r.userID})
	if err != nil {
		return fmt.Errorf("repo.PackingItemRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackingItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func packingArgs(i domain.PackingItem, userID string) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":       i.ID,
		"user_id":  userID,
		"trip_id":  i.TripID,
		"category": string(i.Category),
		"item":     i.Item,
		"quantity": i.Quantity,
		"packed":   i.Packed,
	}
}

func scanPackingItem(s scanner) (domain.PackingItem, error) {
	var (
		i        domain.PackingItem
		category string
	)

	err := s.Scan(&i.ID, &i.TripID, &category, &i.Item, &i.Quantity, &i.Packed)
	if err != nil {
		return domain.PackingItem{}, err
	}

	i.Category = domain.PackingCategory(category)
	return i, nil
}
