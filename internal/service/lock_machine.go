// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/mzolotarev/keywarden/internal/adapter"
	"github.com/mzolotarev/keywarden/internal/crypto"
	"github.com/mzolotarev/keywarden/internal/logger"
	"github.com/mzolotarev/keywarden/internal/store"
)

const (
	kvKeyVerifierPrefix = "vault:verifier:"

	// verifierPlaintext is the canary sealed under the local key at
	// setup. Unlock succeeds only when the candidate key opens it.
	verifierPlaintext = "keywarden verifier v1"

	// DefaultAutoLockTimeout applies when no timeout is configured.
	DefaultAutoLockTimeout = 5 * time.Minute
)

// LockSettings configures a lock machine. The zero value of every hook
// selects the real implementation; tests substitute them.
type LockSettings struct {
	// ScopeID identifies whose local vault this machine guards. Empty
	// means ScopeAnonymous.
	ScopeID string

	AutoLockDisabled bool
	AutoLockTimeout  time.Duration

	// Clipboard overwrites the system clipboard with the given string.
	Clipboard func(string) error

	// Reload resets application state after a panic wipe.
	Reload func()

	// Now is the clock used for idle accounting.
	Now func() time.Time
}

type lockMachine struct {
	scopeID          string
	autoLockDisabled bool
	timeout          time.Duration

	keys        KeyService
	sessionKeys SessionKeyStore
	codec       crypto.EnvelopeCodec
	kv          store.KVStore
	entries     store.EntryRepository
	records     adapter.RecordStore
	log         *logger.Logger

	clipboard func(string) error
	reload    func()
	now       func() time.Time

	mu           sync.Mutex
	state        LockState
	lastActivity time.Time
}

// NewLockMachine builds the vault lock state machine. The initial state
// is Unlocked, unless this scope's vault has completed setup but has not
// been unlocked during the current session, in which case the passphrase
// must be re-entered first.
func NewLockMachine(ctx context.Context, settings LockSettings, keys KeyService, sessionKeys SessionKeyStore, codec crypto.EnvelopeCodec, kv store.KVStore, entries store.EntryRepository, records adapter.RecordStore, log *logger.Logger) (LockMachine, error) {
	if settings.ScopeID == "" {
		settings.ScopeID = ScopeAnonymous
	}
	if settings.AutoLockTimeout <= 0 {
		settings.AutoLockTimeout = DefaultAutoLockTimeout
	}
	if settings.Clipboard == nil {
		settings.Clipboard = clipboard.WriteAll
	}
	if settings.Reload == nil {
		settings.Reload = func() {}
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}

	m := &lockMachine{
		scopeID:          settings.ScopeID,
		autoLockDisabled: settings.AutoLockDisabled,
		timeout:          settings.AutoLockTimeout,
		keys:             keys,
		sessionKeys:      sessionKeys,
		codec:            codec,
		kv:               kv,
		entries:          entries,
		records:          records,
		log:              log,
		clipboard:        settings.Clipboard,
		reload:           settings.Reload,
		now:              settings.Now,
	}

	setUp, err := sessionKeys.HasLocalVaultBeenSetUp(ctx, m.scopeID)
	if err != nil {
		return nil, err
	}
	if setUp && !sessionKeys.WasUnlockedThisSession(m.scopeID) {
		m.state = StateLocked
	} else {
		m.state = StateUnlocked
		m.lastActivity = m.now()
	}

	return m, nil
}

// State implements LockMachine.
func (m *lockMachine) State() LockState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// RecordActivity implements LockMachine.
func (m *lockMachine) RecordActivity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateUnlocked {
		m.lastActivity = m.now()
	}
}

// Lock implements LockMachine. Session keys survive a manual lock; only
// the panic wipe and the idle auto-lock drop them.
func (m *lockMachine) Lock() error {
	m.mu.Lock()
	m.state = StateLocked
	m.mu.Unlock()

	m.log.Info().Msg("vault locked")
	if err := m.clipboard(""); err != nil {
		return fmt.Errorf("clear clipboard: %w", err)
	}
	return nil
}

// SetUpLocalVault implements LockMachine.
func (m *lockMachine) SetUpLocalVault(ctx context.Context, passphrase string) error {
	_, ok, err := m.kv.Get(ctx, kvKeyVerifierPrefix+m.scopeID)
	if err != nil {
		return fmt.Errorf("read vault verifier: %w", err)
	}
	if ok {
		return ErrVaultAlreadySetUp
	}

	key, err := m.keys.DeriveLocalKey(ctx, passphrase, m.scopeID)
	if err != nil {
		return err
	}
	verifier, err := m.codec.Encrypt(verifierPlaintext, key)
	if err != nil {
		return fmt.Errorf("seal vault verifier: %w", err)
	}
	if err := m.kv.Set(ctx, kvKeyVerifierPrefix+m.scopeID, verifier); err != nil {
		return fmt.Errorf("store vault verifier: %w", err)
	}

	if err := m.sessionKeys.PublishLocalKey(ctx, passphrase, m.scopeID); err != nil {
		return err
	}

	m.mu.Lock()
	m.state = StateUnlocked
	m.lastActivity = m.now()
	m.mu.Unlock()

	m.log.Info().Msg("local vault set up")
	return nil
}

// Unlock implements LockMachine. A wrong passphrase, a derivation failure
// and a corrupted verifier all collapse into the same ErrAuthentication,
// so the caller learns nothing beyond "rejected".
func (m *lockMachine) Unlock(ctx context.Context, passphrase string) error {
	verifier, ok, err := m.kv.Get(ctx, kvKeyVerifierPrefix+m.scopeID)
	if err != nil {
		return fmt.Errorf("read vault verifier: %w", err)
	}
	if !ok {
		return ErrVaultNotSetUp
	}

	key, err := m.keys.DeriveLocalKey(ctx, passphrase, m.scopeID)
	if err != nil {
		return ErrAuthentication
	}
	if _, err := m.codec.Decrypt(verifier, key); err != nil {
		return ErrAuthentication
	}

	if err := m.sessionKeys.PublishLocalKey(ctx, passphrase, m.scopeID); err != nil {
		return fmt.Errorf("publish local key: %w", err)
	}

	m.mu.Lock()
	m.state = StateUnlocked
	m.lastActivity = m.now()
	m.mu.Unlock()

	m.log.Info().Msg("vault unlocked")
	return nil
}

// Panic implements LockMachine. Steps run in a fixed order and none is
// skipped because an earlier one failed; the returned error joins
// whatever went wrong along the way.
func (m *lockMachine) Panic(ctx context.Context) error {
	m.mu.Lock()
	m.state = StateLocked
	m.mu.Unlock()

	var errs []error
	if err := m.clipboard(""); err != nil {
		errs = append(errs, fmt.Errorf("clear clipboard: %w", err))
	}
	if err := m.entries.EraseAll(ctx); err != nil {
		errs = append(errs, fmt.Errorf("erase local entries: %w", err))
	}
	m.sessionKeys.Clear()
	if err := m.records.SignOut(ctx); err != nil {
		errs = append(errs, fmt.Errorf("terminate remote session: %w", err))
	}
	m.reload()

	err := errors.Join(errs...)
	if err != nil {
		m.log.Error().Err(err).Msg("panic wipe finished with failures")
	} else {
		m.log.Info().Msg("panic wipe finished")
	}
	return err
}

// CheckIdle implements LockMachine. An auto-lock also clears the session
// key store, so the next field read degrades to a locked sentinel instead
// of decrypting with a stale key.
func (m *lockMachine) CheckIdle() {
	m.mu.Lock()
	if m.state != StateUnlocked || m.autoLockDisabled {
		m.mu.Unlock()
		return
	}
	if m.now().Sub(m.lastActivity) < m.timeout {
		m.mu.Unlock()
		return
	}
	m.state = StateLocked
	m.mu.Unlock()

	m.sessionKeys.Clear()
	m.log.Info().Msg("vault auto-locked after idle timeout")
}
