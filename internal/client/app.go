// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzolotarev/keywarden/internal/adapter"
	"github.com/mzolotarev/keywarden/internal/config"
	"github.com/mzolotarev/keywarden/internal/logger"
	"github.com/mzolotarev/keywarden/internal/service"
	"github.com/mzolotarev/keywarden/internal/store"
	"github.com/mzolotarev/keywarden/internal/workers"
)

// App owns the wired application graph. It is the composition root: the
// single session key store instance lives here and is handed to every
// consumer by reference.
type App struct {
	cfg      *config.WardenConfig
	log      *logger.Logger
	storages *store.Storages
	records  adapter.RecordStore
	services *service.Services
	workers  *workers.Workers
}

// NewApp wires storage, the remote record store client and the services.
// The local vault runs under the anonymous scope until an identity signs
// in; cloud entries become readable only after SignIn publishes the
// cloud key.
func NewApp(ctx context.Context, cfg *config.WardenConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	records, err := adapter.NewHTTPRecordStore(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create record store client: %w", err)
	}

	services, err := service.NewServices(ctx, cfg, service.ScopeAnonymous, storages, records, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &App{
		cfg:      cfg,
		log:      log,
		storages: storages,
		records:  records,
		services: services,
		workers:  workers.NewWorkers(services.IdleCheck),
	}, nil
}

// Services exposes the wired service layer.
func (a *App) Services() *service.Services {
	return a.services
}

// SignIn stores the session token and publishes the cloud key derived
// from the identity the token asserts.
func (a *App) SignIn(ctx context.Context, token string) error {
	a.records.SetToken(token)

	owner, err := a.records.SessionOwner()
	if err != nil {
		a.records.SetToken("")
		return fmt.Errorf("sign in: %w", err)
	}

	if err := a.services.SessionKeys.PublishCloudKey(ctx, owner); err != nil {
		a.records.SetToken("")
		return fmt.Errorf("sign in: %w", err)
	}

	a.services.Lock.RecordActivity()
	a.log.Info().Msg("signed in")
	return nil
}

// SignOut terminates the remote session and drops every session key. The
// key clearing happens regardless of whether the remote call succeeded.
func (a *App) SignOut(ctx context.Context) error {
	err := a.records.SignOut(ctx)
	a.services.SessionKeys.Clear()

	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	a.log.Info().Msg("signed out")
	return nil
}

// Run implements Client. It starts the background workers and blocks
// until ctx is cancelled, then shuts the workers down.
func (a *App) Run(ctx context.Context) error {
	unsubscribe := a.services.SessionKeys.Subscribe(func(snap service.KeySnapshot) {
		a.log.Debug().
			Bool("cloud_key", snap.CloudKey != nil).
			Bool("local_key", snap.LocalKey != nil).
			Msg("session key state changed")
	})
	defer unsubscribe()

	a.workers.Run()
	defer a.workers.Stop()

	<-ctx.Done()
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
