// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package store

import (
	"context"
	"fmt"

	"github.com/mzolotarev/keywarden/internal/logger"
)

// Storages aggregates every local persistence backend the application uses.
type Storages struct {
	// Entries is the sqlite vault record repository.
	Entries EntryRepository
	// KV is durable non-secret key-value storage.
	KV KVStore
	// Session is volatile session-scoped marker storage.
	Session SessionMarkers
}

// NewStorages opens the local database and wires up all repositories.
func NewStorages(ctx context.Context, dsn string, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("connect local sqlite: %w", err)
	}

	return &Storages{
		Entries: NewEntryRepository(db, log),
		KV:      NewKVStore(db),
		Session: NewSessionMarkers(),
	}, nil
}
