// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mzolotarev/keywarden/internal/logger"
	"github.com/mzolotarev/keywarden/models"
)

var entryColumns = []string{
	"id", "owner_id", "title", "category", "username", "url",
	"tags", "favorite", "scope", "secret", "notes", "created_at", "updated_at",
}

type entryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEntryRepository constructs the sqlite-backed [EntryRepository].
func NewEntryRepository(db *DB, log *logger.Logger) EntryRepository {
	return &entryRepository{db: db, logger: log}
}

// Save implements [EntryRepository].
func (r *entryRepository) Save(ctx context.Context, rec models.VaultRecord) error {
	tags, err := marshalTags(rec.Tags)
	if err != nil {
		return err
	}

	query, args, err := sq.Insert("entries").
		Columns(entryColumns...).
		Values(rec.ID, rec.OwnerID, rec.Title, rec.Category, rec.Username, rec.URL,
			tags, rec.Favorite, string(rec.Scope), rec.Secret, rec.Notes,
			rec.CreatedAt, rec.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Get implements [EntryRepository].
func (r *entryRepository) Get(ctx context.Context, id string) (models.VaultRecord, error) {
	query, args, err := sq.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultRecord{}, ErrEntryNotFound
	}
	if err != nil {
		return models.VaultRecord{}, err
	}

	return rec, nil
}

// GetAll implements [EntryRepository]. Records are returned newest first,
// matching the remote record store ordering.
func (r *entryRepository) GetAll(ctx context.Context, ownerID string) ([]models.VaultRecord, error) {
	query, args, err := sq.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.VaultRecord
	for rows.Next() {
		rec, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return records, nil
}

// Update implements [EntryRepository].
func (r *entryRepository) Update(ctx context.Context, rec models.VaultRecord) error {
	tags, err := marshalTags(rec.Tags)
	if err != nil {
		return err
	}

	query, args, err := sq.Update("entries").
		Set("title", rec.Title).
		Set("category", rec.Category).
		Set("username", rec.Username).
		Set("url", rec.URL).
		Set("tags", tags).
		Set("favorite", rec.Favorite).
		Set("scope", string(rec.Scope)).
		Set("secret", rec.Secret).
		Set("notes", rec.Notes).
		Set("updated_at", rec.UpdatedAt).
		Where(sq.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return requireAffected(res)
}

// Delete implements [EntryRepository].
func (r *entryRepository) Delete(ctx context.Context, id string) error {
	query, args, err := sq.Delete("entries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return requireAffected(res)
}

// EraseAll implements [EntryRepository].
func (r *entryRepository) EraseAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM entries"); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	r.logger.Warn().Str("func", "EraseAll").Msg("all local vault entries erased")

	return nil
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.VaultRecord, error) {
	var (
		rec       models.VaultRecord
		tags      string
		scope     string
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(&rec.ID, &rec.OwnerID, &rec.Title, &rec.Category, &rec.Username,
		&rec.URL, &tags, &rec.Favorite, &scope, &rec.Secret, &rec.Notes,
		&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultRecord{}, err
	}
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	rec.Scope = models.KeyScope(scope)
	if tags != "" {
		if err = json.Unmarshal([]byte(tags), &rec.Tags); err != nil {
			return models.VaultRecord{}, fmt.Errorf("%w: tags: %w", ErrScanningRow, err)
		}
	}
	if createdAt.Valid {
		t := createdAt.Time
		rec.CreatedAt = &t
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		rec.UpdatedAt = &t
	}

	return rec, nil
}

func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("%w: tags: %w", ErrBuildingSQLQuery, err)
	}

	return string(data), nil
}
