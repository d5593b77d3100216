// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package crypto

import "errors"

// DerivedKey is an opaque 256-bit symmetric key produced by
// [EnvelopeCodec.Derive]. The raw bytes are deliberately unexported: the key
// is usable only through the codec's Encrypt/Decrypt and can be neither read
// nor serialized by calling code. Keys live in process memory for the
// lifetime of a session and are recreated by re-deriving from the same
// inputs.
type DerivedKey struct {
	raw []byte
}

// String implements fmt.Stringer and always redacts the key material.
func (k *DerivedKey) String() string { return "derived-key(redacted)" }

// MarshalJSON refuses serialization; a derived key must never be persisted.
func (k *DerivedKey) MarshalJSON() ([]byte, error) {
	return nil, errors.New("derived key is not serializable")
}

// Zero overwrites the key material. The key is unusable afterwards.
func (k *DerivedKey) Zero() {
	for i := range k.raw {
		k.raw[i] = 0
	}
	k.raw = nil
}
