package service

import (
	"context"

	"github.com/mzolotarev/keywarden/internal/adapter"
	"github.com/mzolotarev/keywarden/internal/config"
	"github.com/mzolotarev/keywarden/internal/crypto"
	"github.com/mzolotarev/keywarden/internal/logger"
	"github.com/mzolotarev/keywarden/internal/store"
	"github.com/mzolotarev/keywarden/internal/workers"
)

// Services is the wired service layer. The composition root builds it
// once and hands the pieces to whoever needs them; the session key store
// in particular has exactly one instance per process.
type Services struct {
	Keys        KeyService
	SessionKeys SessionKeyStore
	Cipher      EntryCipher
	Entries     EntryService
	Lock        LockMachine
	IdleCheck   workers.Worker
}

// NewServices wires the service layer for the given scope.
func NewServices(ctx context.Context, cfg *config.WardenConfig, scopeID string, storages *store.Storages, records adapter.RecordStore, log *logger.Logger) (*Services, error) {
	codec := crypto.NewEnvelopeCodec()
	keys := NewKeyService(codec, log)
	sessionKeys := NewSessionKeyStore(keys, storages.KV, storages.Session, log)
	cipher := NewEntryCipher(sessionKeys, codec, log)
	entries := NewEntryService(storages.Entries, records, cipher, log)

	lock, err := NewLockMachine(ctx, LockSettings{
		ScopeID:          scopeID,
		AutoLockDisabled: !cfg.Vault.AutoLockEnabled,
		AutoLockTimeout:  cfg.Vault.AutoLockTimeout,
	}, keys, sessionKeys, codec, storages.KV, storages.Entries, records, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		Keys:        keys,
		SessionKeys: sessionKeys,
		Cipher:      cipher,
		Entries:     entries,
		Lock:        lock,
		IdleCheck:   NewIdleCheckJob(lock, cfg.Vault.IdleCheckInterval),
	}, nil
}
