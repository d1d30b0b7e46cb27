package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// pgDocumentRepo is the Postgres implementation of DocumentRepo.
type pgDocumentRepo struct {
	db     db
	userID string
}

// NewDocumentRepo constructs a DocumentRepo backed by the provided db connection.
func NewDocumentRepo(db db, userID string) DocumentRepo {
	return &pgDocumentRepo{db: db, userID: userID}
}

func (r *pgDocumentRepo) Create(ctx context.Context, doc domain.Document) error {
	const q = `
		INSERT INTO documents (id, user_id, trip_id, type, title, confirmation_number, file_url, notes)
		VALUES (@id, @user_id, @trip_id, @type, @title, @confirmation_number, @file_url, @notes)`

	if _, err := r.db.Exec(ctx, q, documentArgs(doc, r.userID)); err != nil {
		return fmt.Errorf("repo.DocumentRepo.Create: %w", err)
	}
	return nil
}

// ListByTripID returns a trip's documents in insertion order.
func (r *pgDocumentRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.Document, error) {
	const q = `
		SELECT id, trip_id, type, title, confirmation_number, file_url, notes
		FROM documents
		WHERE trip_id = @trip_id AND user_id = @user_id
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID, "user_id": r.userID})
	if err != nil {
		return nil, fmt.Errorf("repo.DocumentRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DocumentRepo.ListByTripID: scan: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DocumentRepo.ListByTripID: rows: %w", err)
	}

	return docs, nil
}

func (r *pgDocumentRepo) Update(ctx context.Context, doc domain.Document) error {
	const q = `
		UPDATE documents
		SET type                = @type,
		    title               = @title,
		    confirmation_number = @confirmation_number,
		    file_url            = @file_url,
		    notes               = @notes
		WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, documentArgs(doc, r.userID))
	if err != nil {
		return fmt.Errorf("repo.DocumentRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DocumentRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgDocumentRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": r.userID})
	if err != nil {
		return fmt.Errorf("repo.DocumentRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DocumentRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func documentArgs(d domain.Document, userID string) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":                  d.ID,
		"user_id":             userID,
		"trip_id":             d.TripID,
		"type":                string(d.Type),
		"title":               d.Title,
		"confirmation_number": d.ConfirmationNumber,
		"file_url":            d.FileURL,
		"notes":               d.Notes,
	}
}

func scanDocument(s scanner) (domain.Document, error) {
	var (
		d       domain.Document
		docType string
	)

	err := s.Scan(&d.ID, &d.TripID, &docType, &d.Title, &d.ConfirmationNumber, &d.FileURL, &d.Notes)
	if err != nil {
		return domain.Document{}, err
	}

	d.Type = domain.DocumentType(docType)
	return d, nil
}
