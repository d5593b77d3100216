// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Versioned key-derivation parameter set v1. All call sites use the same
// count; changing any of these breaks compatibility with already-persisted
// envelopes, so a change requires a new version, not an edit.
const (
	// saltPrefix is the fixed application-wide prefix prepended to every
	// scope label to form the derivation salt.
	saltPrefix = "keywarden-salt:"

	// kdfIterationsV1 is the PBKDF2-SHA256 iteration count.
	kdfIterationsV1 = 100_000

	// keyLen is the derived key size in bytes (AES-256).
	keyLen = 32

	// nonceSize is the GCM nonce size in bytes. Fresh random per Encrypt;
	// a repeat under the same key would be catastrophic for GCM.
	nonceSize = 12
)

// envelopeJSON is the wire shape of one encrypted field. The whole object is
// JSON-marshalled and then base64-encoded so it can live in a string column
// next to legacy plaintext values.
type envelopeJSON struct {
	IV string `json:"iv"`
	CT string `json:"ct"`
}

// envelopeCodec is the private implementation of [EnvelopeCodec].
type envelopeCodec struct{}

// NewEnvelopeCodec constructs the production [EnvelopeCodec] using the v1
// parameter set: PBKDF2-SHA256 with 100,000 iterations and AES-256-GCM.
func NewEnvelopeCodec() EnvelopeCodec {
	return &envelopeCodec{}
}

// Derive implements [EnvelopeCodec]. The token is used as raw key material
// and stretched with PBKDF2-SHA256 over salt = saltPrefix + scopeLabel.
func (c *envelopeCodec) Derive(token, scopeLabel string) (*DerivedKey, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrDerivation)
	}
	if scopeLabel == "" {
		return nil, fmt.Errorf("%w: empty scope label", ErrDerivation)
	}

	salt := []byte(saltPrefix + scopeLabel)
	raw := pbkdf2.Key([]byte(token), salt, kdfIterationsV1, keyLen, sha256.New)
	if len(raw) != keyLen {
		return nil, fmt.Errorf("%w: derived %d bytes, want %d", ErrDerivation, len(raw), keyLen)
	}

	return &DerivedKey{raw: raw}, nil
}

// Encrypt implements [EnvelopeCodec].
func (c *envelopeCodec) Encrypt(plaintext string, key *DerivedKey) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ct := gcm.Seal(nil, iv, []byte(plaintext), nil)

	body, err := json.Marshal(envelopeJSON{
		IV: base64.StdEncoding.EncodeToString(iv),
		CT: base64.StdEncoding.EncodeToString(ct),
	})
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}

	return base64.StdEncoding.EncodeToString(body), nil
}

// Decrypt implements [EnvelopeCodec].
func (c *envelopeCodec) Decrypt(envelope string, key *DerivedKey) (string, error) {
	iv, ct, err := unpackEnvelope(envelope)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	pt, err := gcm.Open(nil, iv, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return string(pt), nil
}

// IsEnvelope implements [EnvelopeCodec].
func (c *envelopeCodec) IsEnvelope(value string) bool {
	_, _, err := unpackEnvelope(value)
	return err == nil
}

// unpackEnvelope reverses the base64+JSON packing and validates the shape.
// Every failure maps to ErrMalformedEnvelope so IsEnvelope can treat the
// value as legacy plaintext.
func unpackEnvelope(value string) (iv, ct []byte, err error) {
	body, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: not base64", ErrMalformedEnvelope)
	}

	var env envelopeJSON
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, fmt.Errorf("%w: not an iv/ct object", ErrMalformedEnvelope)
	}
	if env.IV == "" || env.CT == "" {
		return nil, nil, fmt.Errorf("%w: missing iv or ct", ErrMalformedEnvelope)
	}

	iv, err = base64.StdEncoding.DecodeString(env.IV)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: iv is not base64", ErrMalformedEnvelope)
	}
	if len(iv) != nonceSize {
		return nil, nil, fmt.Errorf("%w: iv is %d bytes, want %d", ErrMalformedEnvelope, len(iv), nonceSize)
	}

	ct, err = base64.StdEncoding.DecodeString(env.CT)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ct is not base64", ErrMalformedEnvelope)
	}

	return iv, ct, nil
}

func newGCM(key *DerivedKey) (cipher.AEAD, error) {
	if key == nil || len(key.raw) != keyLen {
		return nil, fmt.Errorf("invalid derived key")
	}

	block, err := aes.NewCipher(key.raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
