package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote record store address in format [host]:[port] or URL
//	-d local sqlite database path
//	-c/-config json file path with configs
//	-auto-lock-timeout idle duration before the vault locks (e.g. "5m")
//	-idle-check-interval how often the auto-lock check runs (e.g. "10s")
//	-no-auto-lock disable idle auto-lock
//	-request-timeout outbound request timeout (e.g. "15s")
func ParseFlags() *StructuredConfig {
	var (
		adapterAddress    string
		databaseDSN       string
		jsonConfigPath    string
		autoLockTimeout   time.Duration
		idleCheckInterval time.Duration
		noAutoLock        bool
		requestTimeout    time.Duration
	)

	flag.StringVar(&adapterAddress, "a", "", "Remote record store address")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&autoLockTimeout, "auto-lock-timeout", 0, "Idle duration before the vault locks (e.g. 5m)")
	flag.DurationVar(&idleCheckInterval, "idle-check-interval", 0, "Auto-lock check period (e.g. 10s)")
	flag.BoolVar(&noAutoLock, "no-auto-lock", false, "Disable idle auto-lock")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g. 15s)")

	flag.Parse()

	return &StructuredConfig{
		Vault: Vault{
			AutoLockDisabled:  noAutoLock,
			AutoLockTimeout:   autoLockTimeout,
			IdleCheckInterval: idleCheckInterval,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
	}
}
