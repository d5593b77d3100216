// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mzolotarev/keywarden/internal/adapter"
	"github.com/mzolotarev/keywarden/internal/logger"
	"github.com/mzolotarev/keywarden/internal/store"
	"github.com/mzolotarev/keywarden/models"
)

type entryService struct {
	entries store.EntryRepository
	records adapter.RecordStore
	cipher  EntryCipher
	log     *logger.Logger

	now func() time.Time
}

// NewEntryService builds entry CRUD over the local repository and the
// remote record store. Write failures are surfaced to the caller; the
// service never retries on its own.
func NewEntryService(entries store.EntryRepository, records adapter.RecordStore, cipher EntryCipher, log *logger.Logger) EntryService {
	return &entryService{
		entries: entries,
		records: records,
		cipher:  cipher,
		log:     log,
		now:     time.Now,
	}
}

// Create implements EntryService. A client-side UUID is assigned so the
// id is known before the record reaches any store.
func (s *entryService) Create(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	if entry.OwnerID == "" {
		return models.VaultEntry{}, ErrEmptyOwnerID
	}

	entry.ID = uuid.NewString()
	now := s.now().UTC()
	entry.CreatedAt = &now

	rec, err := s.cipher.SealRecord(entry, models.VaultRecord{})
	if err != nil {
		return models.VaultEntry{}, err
	}

	switch entry.Scope {
	case models.ScopeLocal:
		if err := s.entries.Save(ctx, rec); err != nil {
			return models.VaultEntry{}, fmt.Errorf("save entry: %w", err)
		}
	case models.ScopeCloud:
		stored, err := s.records.Insert(ctx, rec)
		if err != nil {
			return models.VaultEntry{}, fmt.Errorf("insert entry: %w", err)
		}
		rec = stored
	default:
		return models.VaultEntry{}, ErrInvalidScope
	}

	s.log.Info().Str("scope", string(entry.Scope)).Msg("entry created")
	return s.cipher.OpenRecord(rec), nil
}

// Get implements EntryService.
func (s *entryService) Get(ctx context.Context, id string, scope models.KeyScope) (models.VaultEntry, error) {
	rec, err := s.getRecord(ctx, id, scope)
	if err != nil {
		return models.VaultEntry{}, err
	}
	return s.cipher.OpenRecord(rec), nil
}

// GetAll implements EntryService. Local entries come first, then remote
// ones; each group is ordered newest first by its store. The remote store
// is only consulted when a session token is present.
func (s *entryService) GetAll(ctx context.Context, ownerID string) ([]models.VaultEntry, error) {
	if ownerID == "" {
		return nil, ErrEmptyOwnerID
	}

	local, err := s.entries.GetAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list local entries: %w", err)
	}

	var remote []models.VaultRecord
	if s.records.Token() != "" {
		remote, err = s.records.List(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf("list remote entries: %w", err)
		}
	}

	out := make([]models.VaultEntry, 0, len(local)+len(remote))
	for _, rec := range local {
		out = append(out, s.cipher.OpenRecord(rec))
	}
	for _, rec := range remote {
		out = append(out, s.cipher.OpenRecord(rec))
	}
	return out, nil
}

// Update implements EntryService. The previously stored record is loaded
// first so sealed fields survive a sentinel in the incoming entry.
func (s *entryService) Update(ctx context.Context, entry models.VaultEntry) error {
	prev, err := s.getRecord(ctx, entry.ID, entry.Scope)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	entry.CreatedAt = prev.CreatedAt
	entry.UpdatedAt = &now

	rec, err := s.cipher.SealRecord(entry, prev)
	if err != nil {
		return err
	}

	switch entry.Scope {
	case models.ScopeLocal:
		if err := s.entries.Update(ctx, rec); err != nil {
			return fmt.Errorf("update entry: %w", err)
		}
	case models.ScopeCloud:
		if err := s.records.Update(ctx, rec); err != nil {
			return fmt.Errorf("update entry: %w", err)
		}
	default:
		return ErrInvalidScope
	}

	s.log.Info().Str("scope", string(entry.Scope)).Msg("entry updated")
	return nil
}

// Delete implements EntryService.
func (s *entryService) Delete(ctx context.Context, id string, scope models.KeyScope) error {
	switch scope {
	case models.ScopeLocal:
		if err := s.entries.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}
	case models.ScopeCloud:
		if err := s.records.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}
	default:
		return ErrInvalidScope
	}
	return nil
}

func (s *entryService) getRecord(ctx context.Context, id string, scope models.KeyScope) (models.VaultRecord, error) {
	switch scope {
	case models.ScopeLocal:
		rec, err := s.entries.Get(ctx, id)
		if err != nil {
			return models.VaultRecord{}, fmt.Errorf("get entry: %w", err)
		}
		return rec, nil
	case models.ScopeCloud:
		owner, err := s.records.SessionOwner()
		if err != nil {
			return models.VaultRecord{}, err
		}
		recs, err := s.records.List(ctx, owner)
		if err != nil {
			return models.VaultRecord{}, fmt.Errorf("get entry: %w", err)
		}
		for _, rec := range recs {
			if rec.ID == id {
				return rec, nil
			}
		}
		return models.VaultRecord{}, adapter.ErrNotFound
	default:
		return models.VaultRecord{}, ErrInvalidScope
	}
}
