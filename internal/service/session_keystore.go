// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/mzolotarev/keywarden/internal/crypto"
	"github.com/mzolotarev/keywarden/internal/logger"
	"github.com/mzolotarev/keywarden/internal/store"
)

const (
	kvKeyVaultSetUpPrefix    = "vault:setup:"
	sessionKeyUnlockedPrefix = "vault:unlocked:"
	markerValue              = "1"
)

type sessionKeyStore struct {
	keys    KeyService
	kv      store.KVStore
	session store.SessionMarkers
	log     *logger.Logger

	mu         sync.Mutex
	cloudKey   *crypto.DerivedKey
	localKey   *crypto.DerivedKey
	localScope string
	nextSubID  int
	subs       map[int]func(KeySnapshot)
}

// NewSessionKeyStore builds the session key store. It is owned by the
// composition root and handed to every consumer by reference; nothing in
// the package keeps package-level key state.
func NewSessionKeyStore(keys KeyService, kv store.KVStore, session store.SessionMarkers, log *logger.Logger) SessionKeyStore {
	return &sessionKeyStore{
		keys:    keys,
		kv:      kv,
		session: session,
		log:     log,
		subs:    map[int]func(KeySnapshot){},
	}
}

// PublishCloudKey implements SessionKeyStore.
func (s *sessionKeyStore) PublishCloudKey(ctx context.Context, userID string) error {
	key, err := s.keys.DeriveCloudKey(ctx, userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cloudKey = key
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info().Msg("cloud key published")
	notify(snap, subs)
	return nil
}

// PublishLocalKey implements SessionKeyStore. The durable marker records
// that a vault exists for this scope; the session marker records that it
// has been unlocked during this process lifetime. Both are flags, never
// key material.
func (s *sessionKeyStore) PublishLocalKey(ctx context.Context, passphrase, scopeID string) error {
	if scopeID == "" {
		scopeID = ScopeAnonymous
	}

	key, err := s.keys.DeriveLocalKey(ctx, passphrase, scopeID)
	if err != nil {
		return err
	}

	if err := s.kv.Set(ctx, kvKeyVaultSetUpPrefix+scopeID, markerValue); err != nil {
		return fmt.Errorf("record vault setup marker: %w", err)
	}
	s.session.Set(sessionKeyUnlockedPrefix+scopeID, markerValue)

	s.mu.Lock()
	s.localKey = key
	s.localScope = scopeID
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info().Str("scope", scopeID).Msg("local key published")
	notify(snap, subs)
	return nil
}

// Clear implements SessionKeyStore.
func (s *sessionKeyStore) Clear() {
	s.mu.Lock()
	if s.cloudKey != nil {
		s.cloudKey.Zero()
		s.cloudKey = nil
	}
	if s.localKey != nil {
		s.localKey.Zero()
		s.localKey = nil
	}
	scope := s.localScope
	s.localScope = ""
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	if scope != "" {
		s.session.Remove(sessionKeyUnlockedPrefix + scope)
	}

	s.log.Info().Msg("session keys cleared")
	notify(snap, subs)
}

// Snapshot implements SessionKeyStore.
func (s *sessionKeyStore) Snapshot() KeySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return KeySnapshot{CloudKey: s.cloudKey, LocalKey: s.localKey}
}

// Subscribe implements SessionKeyStore.
func (s *sessionKeyStore) Subscribe(fn func(KeySnapshot)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// HasLocalVaultBeenSetUp implements SessionKeyStore.
func (s *sessionKeyStore) HasLocalVaultBeenSetUp(ctx context.Context, scopeID string) (bool, error) {
	if scopeID == "" {
		scopeID = ScopeAnonymous
	}

	_, ok, err := s.kv.Get(ctx, kvKeyVaultSetUpPrefix+scopeID)
	if err != nil {
		return false, fmt.Errorf("read vault setup marker: %w", err)
	}
	return ok, nil
}

// WasUnlockedThisSession implements SessionKeyStore.
func (s *sessionKeyStore) WasUnlockedThisSession(scopeID string) bool {
	if scopeID == "" {
		scopeID = ScopeAnonymous
	}

	_, ok := s.session.Get(sessionKeyUnlockedPrefix + scopeID)
	return ok
}

// snapshotLocked captures the state and subscriber list under the held
// mutex. Observers are invoked after the mutex is released so a callback
// may call back into the store.
func (s *sessionKeyStore) snapshotLocked() (KeySnapshot, []func(KeySnapshot)) {
	snap := KeySnapshot{CloudKey: s.cloudKey, LocalKey: s.localKey}
	subs := make([]func(KeySnapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return snap, subs
}

func notify(snap KeySnapshot, subs []func(KeySnapshot)) {
	for _, fn := range subs {
		fn(snap)
	}
}
