// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package service

import (
	"context"
	"fmt"

	"github.com/mzolotarev/keywarden/internal/crypto"
	"github.com/mzolotarev/keywarden/internal/logger"
)

type keyService struct {
	codec crypto.EnvelopeCodec
	log   *logger.Logger
}

// NewKeyService wraps the envelope codec's derivation step into the two
// session keys.
func NewKeyService(codec crypto.EnvelopeCodec, log *logger.Logger) KeyService {
	return &keyService{codec: codec, log: log}
}

// DeriveCloudKey implements KeyService. The scope label binds the key to
// the asserted identity, so two users' cloud keys differ even if the
// derivation tokens ever collided.
func (s *keyService) DeriveCloudKey(ctx context.Context, userID string) (*crypto.DerivedKey, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	key, err := s.codec.Derive(userID, "cloud-"+userID)
	if err != nil {
		return nil, fmt.Errorf("derive cloud key: %w", err)
	}

	s.log.Debug().Str("scope", "cloud").Msg("session key derived")
	return key, nil
}

// DeriveLocalKey implements KeyService. An empty scopeID falls back to
// ScopeAnonymous so local-only sessions still get a stable scope label.
func (s *keyService) DeriveLocalKey(ctx context.Context, passphrase, scopeID string) (*crypto.DerivedKey, error) {
	if scopeID == "" {
		scopeID = ScopeAnonymous
	}

	key, err := s.codec.Derive(passphrase, "local-"+scopeID)
	if err != nil {
		return nil, fmt.Errorf("derive local key: %w", err)
	}

	s.log.Debug().Str("scope", "local").Msg("session key derived")
	return key, nil
}
