package store

import (
	"context"

	"github.com/mzolotarev/keywarden/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntryRepository is the local persistence contract for vault records. The
// repository never interprets the secret/notes columns: they hold either an
// encryption envelope or legacy plaintext, as written by the service layer.
type EntryRepository interface {
	// Save inserts a new record.
	Save(ctx context.Context, rec models.VaultRecord) error

	// Get returns the record with the given id, or ErrEntryNotFound.
	Get(ctx context.Context, id string) (models.VaultRecord, error)

	// GetAll returns all records owned by ownerID, ordered by creation
	// time descending.
	GetAll(ctx context.Context, ownerID string) ([]models.VaultRecord, error)

	// Update overwrites the stored record with the same id. Returns
	// ErrEntryNotFound if no such record exists.
	Update(ctx context.Context, rec models.VaultRecord) error

	// Delete removes the record with the given id. Returns
	// ErrEntryNotFound if no such record exists.
	Delete(ctx context.Context, id string) error

	// EraseAll removes every record. Used by the panic wipe.
	EraseAll(ctx context.Context) error
}

// KVStore is raw get/set of opaque strings, the analogue of key-value
// browser storage. It holds only non-secret values such as the "local vault
// set up" marker.
type KVStore interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// SessionMarkers is volatile, process-lifetime storage for non-secret
// session flags. Unlike KVStore it is cleared automatically when the process
// ends, mirroring session-scoped browser storage.
type SessionMarkers interface {
	// Get returns the marker value; ok is false when the marker is absent.
	Get(key string) (value string, ok bool)

	// Set stores a marker for the remainder of the session.
	Set(key, value string)

	// Remove drops a marker.
	Remove(key string)
}
