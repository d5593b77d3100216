// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mzolotarev/keywarden/internal/adapter"
	"github.com/mzolotarev/keywarden/internal/crypto"
	"github.com/mzolotarev/keywarden/internal/logger"
	"github.com/mzolotarev/keywarden/internal/mock"
	"github.com/mzolotarev/keywarden/internal/service"
	"github.com/mzolotarev/keywarden/internal/store"
	"github.com/mzolotarev/keywarden/models"
)

func newTestEntrySvc(t *testing.T, ctrl *gomock.Controller, snap service.KeySnapshot) (service.EntryService, *mock.MockEntryRepository, *mock.MockRecordStore) {
	t.Helper()
	repo := mock.NewMockEntryRepository(ctrl)
	records := mock.NewMockRecordStore(ctrl)

	codec := crypto.NewEnvelopeCodec()
	ks := mock.NewMockSessionKeyStore(ctrl)
	ks.EXPECT().Snapshot().Return(snap).AnyTimes()
	cipher := service.NewEntryCipher(ks, codec, logger.Nop())

	return service.NewEntryService(repo, records, cipher, logger.Nop()), repo, records
}

func TestEntryService_Create_Local(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestEntrySvc(t, ctrl, service.KeySnapshot{})
	ctx := context.Background()

	var saved models.VaultRecord
	repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rec models.VaultRecord) error {
		saved = rec
		return nil
	})

	entry := models.VaultEntry{
		OwnerID:  "user42",
		Title:    "Mail",
		Category: models.CategoryLogin,
		Scope:    models.ScopeLocal,
		Secret:   models.Plaintext("hunter2"),
	}
	created, err := svc.Create(ctx, entry)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.ID, saved.ID)
	require.NotNil(t, saved.CreatedAt)
	assert.Equal(t, "hunter2", saved.Secret) // no key published, stored as legacy plaintext
}

func TestEntryService_Create_LocalSealsWithKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	codec := crypto.NewEnvelopeCodec()
	key, err := codec.Derive("correct-horse-battery", "local-user42")
	require.NoError(t, err)

	svc, repo, _ := newTestEntrySvc(t, ctrl, service.KeySnapshot{LocalKey: key})
	ctx := context.Background()

	var saved models.VaultRecord
	repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rec models.VaultRecord) error {
		saved = rec
		return nil
	})

	entry := models.VaultEntry{OwnerID: "user42", Scope: models.ScopeLocal, Secret: models.Plaintext("hunter2")}
	_, err = svc.Create(ctx, entry)
	require.NoError(t, err)

	require.True(t, codec.IsEnvelope(saved.Secret))
	plain, err := codec.Decrypt(saved.Secret, key)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", plain)
}

func TestEntryService_Create_Cloud(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, records := newTestEntrySvc(t, ctrl, service.KeySnapshot{})
	ctx := context.Background()

	records.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rec models.VaultRecord) (models.VaultRecord, error) {
		now := time.Now().UTC()
		rec.CreatedAt = &now
		return rec, nil
	})

	entry := models.VaultEntry{OwnerID: "user42", Scope: models.ScopeCloud, Secret: models.Plaintext("hunter2")}
	created, err := svc.Create(ctx, entry)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.CreatedAt)
}

func TestEntryService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestEntrySvc(t, ctrl, service.KeySnapshot{})
	ctx := context.Background()

	_, err := svc.Create(ctx, models.VaultEntry{Scope: models.ScopeLocal})
	assert.ErrorIs(t, err, service.ErrEmptyOwnerID)

	_, err = svc.Create(ctx, models.VaultEntry{OwnerID: "user42", Scope: "tape"})
	assert.ErrorIs(t, err, service.ErrInvalidScope)
}

func TestEntryService_GetAll_LocalOnlyWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, records := newTestEntrySvc(t, ctrl, service.KeySnapshot{})
	ctx := context.Background()

	repo.EXPECT().GetAll(ctx, "user42").Return([]models.VaultRecord{
		{ID: "id-1", OwnerID: "user42", Scope: models.ScopeLocal, Secret: "hunter2"},
	}, nil)
	records.EXPECT().Token().Return("")

	entries, err := svc.GetAll(ctx, "user42")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hunter2", entries[0].Secret.Display())
}

func TestEntryService_GetAll_MergesRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, records := newTestEntrySvc(t, ctrl, service.KeySnapshot{})
	ctx := context.Background()

	repo.EXPECT().GetAll(ctx, "user42").Return([]models.VaultRecord{
		{ID: "local-1", Scope: models.ScopeLocal},
	}, nil)
	records.EXPECT().Token().Return("token")
	records.EXPECT().List(ctx, "user42").Return([]models.VaultRecord{
		{ID: "cloud-1", Scope: models.ScopeCloud},
	}, nil)

	entries, err := svc.GetAll(ctx, "user42")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "local-1", entries[0].ID)
	assert.Equal(t, "cloud-1", entries[1].ID)
}

func TestEntryService_GetAll_EmptyOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestEntrySvc(t, ctrl, service.KeySnapshot{})

	_, err := svc.GetAll(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrEmptyOwnerID)
}

func TestEntryService_Update_SentinelDoesNotClobberCiphertext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	codec := crypto.NewEnvelopeCodec()
	key, err := codec.Derive("correct-horse-battery", "local-user42")
	require.NoError(t, err)
	env, err := codec.Encrypt("hunter2", key)
	require.NoError(t, err)

	// No key published at write time: the incoming entry carries a locked
	// sentinel from a read made while locked.
	svc, repo, _ := newTestEntrySvc(t, ctrl, service.KeySnapshot{})
	ctx := context.Background()

	prev := models.VaultRecord{ID: "id-1", OwnerID: "user42", Scope: models.ScopeLocal, Secret: env, Title: "Mail"}
	repo.EXPECT().Get(ctx, "id-1").Return(prev, nil)

	var updated models.VaultRecord
	repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rec models.VaultRecord) error {
		updated = rec
		return nil
	})

	entry := models.VaultEntry{ID: "id-1", OwnerID: "user42", Scope: models.ScopeLocal, Title: "Mail (renamed)", Secret: models.LockedField()}
	require.NoError(t, svc.Update(ctx, entry))

	assert.Equal(t, env, updated.Secret)
	assert.Equal(t, "Mail (renamed)", updated.Title)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestEntryService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestEntrySvc(t, ctrl, service.KeySnapshot{})
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "missing").Return(models.VaultRecord{}, store.ErrEntryNotFound)

	err := svc.Update(ctx, models.VaultEntry{ID: "missing", Scope: models.ScopeLocal})
	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestEntryService_Get_Cloud(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, records := newTestEntrySvc(t, ctrl, service.KeySnapshot{})
	ctx := context.Background()

	records.EXPECT().SessionOwner().Return("user42", nil).Times(2)
	records.EXPECT().List(ctx, "user42").Return([]models.VaultRecord{
		{ID: "cloud-1", Scope: models.ScopeCloud, Secret: "hunter2"},
	}, nil).Times(2)

	entry, err := svc.Get(ctx, "cloud-1", models.ScopeCloud)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", entry.Secret.Display())

	_, err = svc.Get(ctx, "missing", models.ScopeCloud)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestEntryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, records := newTestEntrySvc(t, ctrl, service.KeySnapshot{})
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "local-1").Return(nil)
	require.NoError(t, svc.Delete(ctx, "local-1", models.ScopeLocal))

	records.EXPECT().Delete(ctx, "cloud-1").Return(nil)
	require.NoError(t, svc.Delete(ctx, "cloud-1", models.ScopeCloud))

	assert.ErrorIs(t, svc.Delete(ctx, "x", "tape"), service.ErrInvalidScope)
}
