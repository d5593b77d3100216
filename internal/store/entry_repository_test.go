// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzolotarev/keywarden/internal/logger"
	"github.com/mzolotarev/keywarden/models"
)

const (
	selectEntrySQL = "SELECT id, owner_id, title, category, username, url, tags, favorite, scope, secret, notes, created_at, updated_at FROM entries"
	insertEntrySQL = "INSERT INTO entries (id,owner_id,title,category,username,url,tags,favorite,scope,secret,notes,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{DB: db, logger: logger.Nop()}
}

func newTestRepo(t *testing.T, db *sql.DB) EntryRepository {
	t.Helper()
	return NewEntryRepository(newDBFromSQL(db), logger.Nop())
}

var entryTestColumns = []string{
	"id", "owner_id", "title", "category", "username", "url",
	"tags", "favorite", "scope", "secret", "notes", "created_at", "updated_at",
}

func sampleRecord() models.VaultRecord {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return models.VaultRecord{
		ID:        "0d6cd9a1-59e8-4f6e-b207-1a1f4b1f2a10",
		OwnerID:   "user42",
		Title:     "My Bank",
		Category:  models.CategoryLogin,
		Username:  "user@example.com",
		Tags:      []string{"finance"},
		Scope:     models.ScopeLocal,
		Secret:    "ZW52ZWxvcGU=",
		CreatedAt: &now,
		UpdatedAt: &now,
	}
}

func TestEntryRepository_Save(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	rec := sampleRecord()

	mock.ExpectExec(regexp.QuoteMeta(insertEntrySQL)).
		WithArgs(rec.ID, rec.OwnerID, rec.Title, rec.Category, rec.Username, rec.URL,
			`["finance"]`, rec.Favorite, "local", rec.Secret, rec.Notes,
			rec.CreatedAt, rec.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), rec)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_Get(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	rec := sampleRecord()

	rows := sqlmock.NewRows(entryTestColumns).
		AddRow(rec.ID, rec.OwnerID, rec.Title, rec.Category, rec.Username, rec.URL,
			`["finance"]`, rec.Favorite, "local", rec.Secret, rec.Notes,
			*rec.CreatedAt, *rec.UpdatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(selectEntrySQL+" WHERE id = ?")).
		WithArgs(rec.ID).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Title, got.Title)
	assert.Equal(t, rec.Secret, got.Secret)
	assert.Equal(t, []string{"finance"}, got.Tags)
	assert.Equal(t, models.ScopeLocal, got.Scope)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_Get_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectEntrySQL+" WHERE id = ?")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(entryTestColumns))

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestEntryRepository_GetAll_OrderedNewestFirst(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	rec := sampleRecord()

	rows := sqlmock.NewRows(entryTestColumns).
		AddRow("id-2", rec.OwnerID, "Newer", rec.Category, "", "", "[]", false,
			"local", "", "", *rec.CreatedAt, *rec.UpdatedAt).
		AddRow("id-1", rec.OwnerID, "Older", rec.Category, "", "", "[]", false,
			"local", "", "", rec.CreatedAt.Add(-time.Hour), *rec.UpdatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(selectEntrySQL+" WHERE owner_id = ? ORDER BY created_at DESC")).
		WithArgs(rec.OwnerID).
		WillReturnRows(rows)

	got, err := repo.GetAll(context.Background(), rec.OwnerID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Newer", got[0].Title)
	assert.Equal(t, "Older", got[1].Title)
}

func TestEntryRepository_Update_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	rec := sampleRecord()

	mock.ExpectExec("UPDATE entries SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), rec)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestEntryRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM entries WHERE id = ?")).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "id-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_EraseAll(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM entries")).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.EraseAll(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
