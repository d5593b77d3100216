// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by GetWardenConfig when a value is absent from every
// configuration source.
const (
	DefaultAutoLockTimeout   = 5 * time.Minute
	DefaultIdleCheckInterval = 10 * time.Second
	DefaultRequestTimeout    = 15 * time.Second
	DefaultDSN               = ":memory:"
)

// WardenVault holds the resolved lock-state settings.
type WardenVault struct {
	// AutoLockEnabled reports whether idle auto-lock is active.
	AutoLockEnabled bool
	// AutoLockTimeout is how long the vault may stay idle before locking.
	AutoLockTimeout time.Duration
	// IdleCheckInterval is the auto-lock check period.
	IdleCheckInterval time.Duration
}

// WardenAdapter holds the resolved remote record store client settings.
type WardenAdapter struct {
	// HTTPAddress is the remote record store base address.
	HTTPAddress string
	// RequestTimeout is the per-request timeout for outbound calls.
	RequestTimeout time.Duration
}

// WardenStorage holds the resolved local persistence settings.
type WardenStorage struct {
	// DSN is the sqlite file path or ":memory:".
	DSN string
}

// WardenConfig is the application view of the merged configuration, with
// defaults applied.
type WardenConfig struct {
	// Version is the application version string.
	Version string
	// Vault contains lock-state settings.
	Vault WardenVault
	// Adapter contains remote record store settings.
	Adapter WardenAdapter
	// Storage contains local persistence settings.
	Storage WardenStorage
}

// GetWardenConfig builds the application configuration by merging
// environment variables, command-line flags, and an optional JSON file, then
// applying defaults for anything still unset.
func GetWardenConfig() (*WardenConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building structured config: %w", err)
	}

	warden := &WardenConfig{
		Version: cfg.App.Version,
		Vault: WardenVault{
			AutoLockEnabled:   !cfg.Vault.AutoLockDisabled,
			AutoLockTimeout:   cfg.Vault.AutoLockTimeout,
			IdleCheckInterval: cfg.Vault.IdleCheckInterval,
		},
		Adapter: WardenAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: WardenStorage{
			DSN: cfg.Storage.DB.DSN,
		},
	}

	if warden.Vault.AutoLockTimeout == 0 {
		warden.Vault.AutoLockTimeout = DefaultAutoLockTimeout
	}
	if warden.Vault.IdleCheckInterval == 0 {
		warden.Vault.IdleCheckInterval = DefaultIdleCheckInterval
	}
	if warden.Adapter.RequestTimeout == 0 {
		warden.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if warden.Storage.DSN == "" {
		warden.Storage.DSN = DefaultDSN
	}

	return warden, nil
}
