package config

import "errors"

var (
	ErrNegativeAutoLockTimeout   = errors.New("auto-lock timeout must not be negative")
	ErrNegativeIdleCheckInterval = errors.New("idle-check interval must not be negative")
	ErrNegativeRequestTimeout    = errors.New("request timeout must not be negative")
)
