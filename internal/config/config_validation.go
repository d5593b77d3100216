package config

import "errors"

// validate checks the merged configuration for values that cannot be worked
// around with defaults. Empty values are fine (defaults are applied by
// GetWardenConfig); negative durations are not.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Vault.AutoLockTimeout < 0 {
		errs = append(errs, ErrNegativeAutoLockTimeout)
	}
	if c.Vault.IdleCheckInterval < 0 {
		errs = append(errs, ErrNegativeIdleCheckInterval)
	}
	if c.Adapter.RequestTimeout < 0 {
		errs = append(errs, ErrNegativeRequestTimeout)
	}

	return errors.Join(errs...)
}
