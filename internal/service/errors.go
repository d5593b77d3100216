package service

import "errors"

var (
	// ErrAuthentication is returned for every failed unlock attempt. It
	// deliberately carries no detail: a wrong passphrase, a malformed key
	// and a corrupted verifier must all look identical to the caller.
	ErrAuthentication = errors.New("incorrect passphrase")

	// ErrVaultNotSetUp means the local vault has no verifier yet and must
	// go through setup before it can be unlocked.
	ErrVaultNotSetUp = errors.New("local vault has not been set up")

	// ErrVaultAlreadySetUp means setup was requested for a scope that
	// already has a verifier.
	ErrVaultAlreadySetUp = errors.New("local vault has already been set up")

	ErrEmptyUserID  = errors.New("empty user id")
	ErrEmptyOwnerID = errors.New("empty owner id")
	ErrInvalidScope = errors.New("unknown key scope")
)
