// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

// Package adapter provides the transport client for the remote record store.
//
// The primary abstraction is [RecordStore], which decouples the service layer
// from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRecordStore]). Error values defined in errors.go are mapped from
// HTTP status codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling.
//
// The remote store is an external collaborator: it never sees plaintext
// sensitive fields when a key is available, because the service layer seals
// them before calling Insert or Update. The adapter itself performs no
// cryptography.
package adapter

import (
	"context"

	"github.com/mzolotarev/keywarden/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_store_mock.go -package=mock

// RecordStore is the client contract for the remote record store.
type RecordStore interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if none has been set.
	Token() string

	// SessionOwner returns the owner id asserted by the current bearer
	// token (its subject claim), or an error when no usable token is set.
	SessionOwner() (string, error)

	// List fetches all records owned by ownerID, ordered by creation time
	// descending.
	List(ctx context.Context, ownerID string) ([]models.VaultRecord, error)

	// Insert creates a new record and returns the stored representation.
	Insert(ctx context.Context, rec models.VaultRecord) (models.VaultRecord, error)

	// Update overwrites an existing record.
	Update(ctx context.Context, rec models.VaultRecord) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error

	// SignOut terminates the authenticated server session and drops the
	// stored token. Used on explicit sign-out and by the panic wipe.
	SignOut(ctx context.Context) error
}
