// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package models

import "time"

// Entry categories. Category is a plain attribute and is never encrypted.
const (
	CategoryLogin = "login"
	CategoryNote  = "note"
)

// KeyScope selects which of the two session keys guards an entry's
// sensitive fields.
type KeyScope string

const (
	// ScopeCloud marks entries persisted in the remote record store,
	// sealed under the key derived from the server-asserted user id.
	ScopeCloud KeyScope = "cloud"

	// ScopeLocal marks on-device entries sealed under the key derived
	// from the user's passphrase.
	ScopeLocal KeyScope = "local"
)

// VaultRecord is the persisted shape of a vault entry, shared by the local
// sqlite store and the remote record store. Secret and Notes hold either an
// encryption envelope or legacy plaintext; the store never interprets them.
type VaultRecord struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Username  string     `json:"username,omitempty"`
	URL       string     `json:"url,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Favorite  bool       `json:"favorite"`
	Scope     KeyScope   `json:"scope"`
	Secret    string     `json:"secret"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// VaultEntry is the in-memory shape of a vault entry after the sensitive
// fields have been opened. Secret and Notes are tagged values: real
// plaintext, or a locked / wrong-key sentinel when decryption was not
// possible at read time.
type VaultEntry struct {
	ID        string
	OwnerID   string
	Title     string
	Category  string
	Username  string
	URL       string
	Tags      []string
	Favorite  bool
	Scope     KeyScope
	Secret    FieldValue
	Notes     FieldValue
	CreatedAt *time.Time
	UpdatedAt *time.Time
}
