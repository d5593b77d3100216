package store

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_Get_Present(t *testing.T) {
	db, mock := newTestDB(t)
	kv := NewKVStore(newDBFromSQL(db))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
		WithArgs("vault.local.setup.user42").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))

	value, ok, err := kv.Get(context.Background(), "vault.local.setup.user42")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)
}

func TestKVStore_Get_Absent(t *testing.T) {
	db, mock := newTestDB(t)
	kv := NewKVStore(newDBFromSQL(db))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, ok, err := kv.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_Set_Upsert(t *testing.T) {
	db, mock := newTestDB(t)
	kv := NewKVStore(newDBFromSQL(db))

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO kv (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")).
		WithArgs("marker", "1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, kv.Set(context.Background(), "marker", "1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Remove_AbsentIsNotError(t *testing.T) {
	db, mock := newTestDB(t)
	kv := NewKVStore(newDBFromSQL(db))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv WHERE key = ?")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, kv.Remove(context.Background(), "missing"))
}

func TestSessionMarkers_Lifecycle(t *testing.T) {
	m := NewSessionMarkers()

	_, ok := m.Get("unlocked")
	assert.False(t, ok)

	m.Set("unlocked", "1")
	v, ok := m.Get("unlocked")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	m.Remove("unlocked")
	_, ok = m.Get("unlocked")
	assert.False(t, ok)
}
