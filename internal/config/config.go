// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for keywarden.
// It is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Vault holds the lock-state and auto-lock settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Adapter holds the remote record store endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged on top of the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Vault holds lock-state machine settings.
type Vault struct {
	// AutoLockDisabled turns the idle auto-lock off. The zero value keeps
	// auto-lock on, which is the safe default for a password vault.
	// Env: VAULT_AUTO_LOCK_DISABLED
	AutoLockDisabled bool `env:"AUTO_LOCK_DISABLED"`

	// AutoLockTimeout is how long the vault may stay idle before it locks
	// itself (e.g. "5m").
	// Env: VAULT_AUTO_LOCK_TIMEOUT
	AutoLockTimeout time.Duration `env:"AUTO_LOCK_TIMEOUT"`

	// IdleCheckInterval is how often the background job compares the last
	// activity timestamp against the timeout (e.g. "10s").
	// Env: VAULT_IDLE_CHECK_INTERVAL
	IdleCheckInterval time.Duration `env:"IDLE_CHECK_INTERVAL"`
}

// Adapter holds the remote record store client settings.
type Adapter struct {
	// HTTPAddress is the base address of the remote record store, in
	// "host:port" or full URL form.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the per-request timeout for outbound calls
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite file path (or ":memory:").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}
