// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package models

// FieldState classifies what a sensitive field currently holds in memory.
type FieldState int

const (
	// FieldPlaintext means the field carries real, readable data.
	FieldPlaintext FieldState = iota

	// FieldLocked means the field is encrypted and no key for its scope is
	// published right now, so the plaintext is unavailable.
	FieldLocked

	// FieldWrongKey means decryption was attempted and failed authentication:
	// the published key does not match the one the data was sealed with, or
	// the ciphertext is corrupted.
	FieldWrongKey
)

// Sentinel display markers shown in place of a sensitive field that cannot
// be decrypted. They are produced only by [FieldValue.Display] so that the
// rest of the code never has to compare display strings.
const (
	DisplayLocked   = "🔒 (locked)"
	DisplayWrongKey = "⚠️ (wrong key)"
)

// FieldValue is the in-memory representation of one sensitive field of a
// vault entry: either real plaintext or a sentinel standing in for data that
// cannot currently be decrypted. Keeping the distinction in the type makes
// "is this real data" a checked question instead of a string-prefix check.
type FieldValue struct {
	state FieldState
	value string
}

// Plaintext wraps readable field data.
func Plaintext(s string) FieldValue {
	return FieldValue{state: FieldPlaintext, value: s}
}

// LockedField returns the sentinel for data whose key is not published.
func LockedField() FieldValue {
	return FieldValue{state: FieldLocked}
}

// WrongKeyField returns the sentinel for data that failed authentication
// during decryption.
func WrongKeyField() FieldValue {
	return FieldValue{state: FieldWrongKey}
}

// State reports which variant the value holds.
func (f FieldValue) State() FieldState { return f.state }

// IsSentinel reports whether the value is a stand-in rather than real data.
// Sentinels must never be persisted as if they were field contents.
func (f FieldValue) IsSentinel() bool { return f.state != FieldPlaintext }

// Plaintext returns the field data and true when the value is real data.
// For sentinels it returns "" and false.
func (f FieldValue) Plaintext() (string, bool) {
	if f.state != FieldPlaintext {
		return "", false
	}
	return f.value, true
}

// Display renders the value for the UI: the plaintext itself, or the
// sentinel marker when the data is unavailable. Every read of a sensitive
// field completes with some displayable string; the list view stays usable
// even when a key is missing.
func (f FieldValue) Display() string {
	switch f.state {
	case FieldLocked:
		return DisplayLocked
	case FieldWrongKey:
		return DisplayWrongKey
	default:
		return f.value
	}
}
