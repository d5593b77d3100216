// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package service

import (
	"fmt"

	"github.com/mzolotarev/keywarden/internal/crypto"
	"github.com/mzolotarev/keywarden/internal/logger"
	"github.com/mzolotarev/keywarden/models"
)

type entryCipher struct {
	sessionKeys SessionKeyStore
	codec       crypto.EnvelopeCodec
	log         *logger.Logger
}

// NewEntryCipher builds the per-field encryption bridge. It holds no key
// state of its own: every call takes a fresh snapshot from the session
// key store.
func NewEntryCipher(sessionKeys SessionKeyStore, codec crypto.EnvelopeCodec, log *logger.Logger) EntryCipher {
	return &entryCipher{sessionKeys: sessionKeys, codec: codec, log: log}
}

// OpenRecord implements EntryCipher.
func (c *entryCipher) OpenRecord(rec models.VaultRecord) models.VaultEntry {
	key := c.keyFor(rec.Scope)

	return models.VaultEntry{
		ID:        rec.ID,
		OwnerID:   rec.OwnerID,
		Title:     rec.Title,
		Category:  rec.Category,
		Username:  rec.Username,
		URL:       rec.URL,
		Tags:      rec.Tags,
		Favorite:  rec.Favorite,
		Scope:     rec.Scope,
		Secret:    c.openField(rec.Secret, key),
		Notes:     c.openField(rec.Notes, key),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// SealRecord implements EntryCipher. prev is the currently stored record,
// zero-valued on create; it supplies the fallback value when a sentinel
// must not overwrite real data.
func (c *entryCipher) SealRecord(entry models.VaultEntry, prev models.VaultRecord) (models.VaultRecord, error) {
	key := c.keyFor(entry.Scope)

	secret, err := c.sealField(entry.Secret, prev.Secret, key)
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("seal secret field: %w", err)
	}
	notes, err := c.sealField(entry.Notes, prev.Notes, key)
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("seal notes field: %w", err)
	}

	return models.VaultRecord{
		ID:        entry.ID,
		OwnerID:   entry.OwnerID,
		Title:     entry.Title,
		Category:  entry.Category,
		Username:  entry.Username,
		URL:       entry.URL,
		Tags:      entry.Tags,
		Favorite:  entry.Favorite,
		Scope:     entry.Scope,
		Secret:    secret,
		Notes:     notes,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}, nil
}

// openField maps one stored string to its in-memory value. It never
// fails: a value that cannot be decrypted degrades to a sentinel.
func (c *entryCipher) openField(stored string, key *crypto.DerivedKey) models.FieldValue {
	if !c.codec.IsEnvelope(stored) {
		// Legacy plaintext, carried through until the next write.
		return models.Plaintext(stored)
	}
	if key == nil {
		return models.LockedField()
	}

	plain, err := c.codec.Decrypt(stored, key)
	if err != nil {
		c.log.Debug().Err(err).Msg("field decryption failed")
		return models.WrongKeyField()
	}
	return models.Plaintext(plain)
}

// sealField maps one in-memory value to its stored string. Sentinels keep
// the previously stored value, envelopes pass through untouched, and
// plaintext is sealed only when a key is available.
func (c *entryCipher) sealField(next models.FieldValue, prev string, key *crypto.DerivedKey) (string, error) {
	plain, ok := next.Plaintext()
	if !ok {
		return prev, nil
	}
	if c.codec.IsEnvelope(plain) {
		return plain, nil
	}
	if key == nil {
		return plain, nil
	}

	return c.codec.Encrypt(plain, key)
}

func (c *entryCipher) keyFor(scope models.KeyScope) *crypto.DerivedKey {
	snap := c.sessionKeys.Snapshot()
	switch scope {
	case models.ScopeCloud:
		return snap.CloudKey
	case models.ScopeLocal:
		return snap.LocalKey
	default:
		return nil
	}
}
