// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

// Package service holds the vault's key lifecycle: key derivation, the
// session key store, the lock state machine and the per-field encryption
// of vault entries. Storage and transport are collaborators reached
// through the store and adapter packages.
package service

import (
	"context"

	"github.com/mzolotarev/keywarden/internal/crypto"
	"github.com/mzolotarev/keywarden/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ScopeAnonymous is the local-vault scope used when no authenticated
// identity is present. An authenticated user's local vault uses their own
// user id as the scope, so one device can hold independently keyed local
// vaults per identity.
const ScopeAnonymous = "anonymous"

// KeyService derives the two session keys. Neither method keeps a
// reference to its inputs after returning.
type KeyService interface {
	// DeriveCloudKey produces the key for server-backed entries from the
	// server-asserted user id.
	DeriveCloudKey(ctx context.Context, userID string) (*crypto.DerivedKey, error)

	// DeriveLocalKey produces the key for on-device entries from the
	// user's passphrase. scopeID separates an authenticated user's local
	// vault from an anonymous one on the same device.
	DeriveLocalKey(ctx context.Context, passphrase, scopeID string) (*crypto.DerivedKey, error)
}

// KeySnapshot is the observable state of the session key store. A nil key
// means the corresponding scope is not unlocked.
type KeySnapshot struct {
	CloudKey *crypto.DerivedKey
	LocalKey *crypto.DerivedKey
}

// SessionKeyStore is the single holder of the session's derived keys. All
// key mutation goes through PublishCloudKey, PublishLocalKey and Clear;
// no other component touches key state directly. Observers registered via
// Subscribe are notified with a snapshot after every change, so several
// independent consumers can watch key changes without owning the store.
type SessionKeyStore interface {
	// PublishCloudKey derives the cloud key from userID and publishes it.
	// Subscribers are notified before the call returns.
	PublishCloudKey(ctx context.Context, userID string) error

	// PublishLocalKey derives the local key from the passphrase and
	// publishes it. It also records the durable "vault set up" marker and
	// the session-scoped "unlocked this session" marker; neither marker
	// contains key material. Subscribers are notified before the call
	// returns.
	PublishLocalKey(ctx context.Context, passphrase, scopeID string) error

	// Clear wipes both keys and drops the session unlock marker.
	// Irreversible for the current session: a new unlock must re-derive
	// from the original inputs.
	Clear()

	// Snapshot returns the current key state. Consumers call this on
	// every use instead of caching a key, so a Clear is observed by the
	// very next read.
	Snapshot() KeySnapshot

	// Subscribe registers an observer called synchronously with a
	// snapshot on every change. The returned function deregisters it.
	Subscribe(fn func(KeySnapshot)) (unsubscribe func())

	// HasLocalVaultBeenSetUp reports whether a local vault for scopeID
	// has ever completed setup. This is the single source of truth the
	// UI uses to ask for a new passphrase versus an existing one.
	HasLocalVaultBeenSetUp(ctx context.Context, scopeID string) (bool, error)

	// WasUnlockedThisSession reports whether the local key for scopeID
	// has been published during the current process lifetime.
	WasUnlockedThisSession(scopeID string) bool
}

// LockState is the vault's coarse lock status.
type LockState int

const (
	StateUnlocked LockState = iota
	StateLocked
)

// LockMachine tracks locked/unlocked status and owns every transition:
// activity refresh, idle auto-lock, manual lock, unlock and panic.
type LockMachine interface {
	// State returns the current lock state.
	State() LockState

	// RecordActivity refreshes the idle timer. It has no effect while
	// the vault is locked.
	RecordActivity()

	// Lock transitions to Locked and clears the system clipboard. It
	// does not destroy session keys by itself.
	Lock() error

	// SetUpLocalVault creates the vault verifier for this machine's
	// scope, publishes the local key and unlocks. Returns
	// ErrVaultAlreadySetUp if a verifier already exists.
	SetUpLocalVault(ctx context.Context, passphrase string) error

	// Unlock verifies the passphrase against the stored verifier,
	// publishes the local key and transitions to Unlocked. Every failure
	// surfaces as ErrAuthentication, except ErrVaultNotSetUp when no
	// verifier exists yet.
	Unlock(ctx context.Context, passphrase string) error

	// Panic is the irreversible emergency wipe: lock, clear the
	// clipboard, erase local entries, clear the session key store,
	// terminate the remote session and reload application state. Every
	// step runs even if earlier ones fail; the returned error joins the
	// individual failures.
	Panic(ctx context.Context) error

	// CheckIdle performs one auto-lock check. It is driven by the
	// idle-check job and never fails; a tick that cannot complete is
	// simply skipped.
	CheckIdle()
}

// EntryCipher is the stateless bridge between stored records and
// in-memory entries. It reads the session key store on every call, so a
// key published or cleared a moment ago is honored immediately.
type EntryCipher interface {
	// OpenRecord turns a stored record into an in-memory entry. Sensitive
	// fields become plaintext when they can be decrypted, a legacy
	// passthrough when they were never encrypted, and a locked or
	// wrong-key sentinel otherwise. It never fails: the list view must
	// render even when keys are missing.
	OpenRecord(rec models.VaultRecord) models.VaultEntry

	// SealRecord turns an in-memory entry back into its stored shape.
	// Plaintext fields are sealed when a key for the entry's scope is
	// published, left as plaintext otherwise. Fields already holding an
	// envelope pass through unchanged, and sentinel values keep whatever
	// prev holds so a locked read can never clobber real ciphertext.
	SealRecord(entry models.VaultEntry, prev models.VaultRecord) (models.VaultRecord, error)
}

// EntryService is CRUD over vault entries, routing by scope: local
// entries live in the on-device store, cloud entries in the remote record
// store. Sensitive fields are sealed before every write and opened after
// every read.
type EntryService interface {
	Create(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)
	Get(ctx context.Context, id string, scope models.KeyScope) (models.VaultEntry, error)
	GetAll(ctx context.Context, ownerID string) ([]models.VaultEntry, error)
	Update(ctx context.Context, entry models.VaultEntry) error
	Delete(ctx context.Context, id string, scope models.KeyScope) error
}
