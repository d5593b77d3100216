package crypto

import "errors"

// Sentinel errors returned by the envelope codec. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrDerivation is returned when a key cannot be derived: the token is
	// empty or the underlying primitive rejects the inputs. Retrying with
	// the same inputs will not help.
	ErrDerivation = errors.New("key derivation failed")

	// ErrDecryption is returned when an authenticated decryption fails:
	// the key is wrong or the ciphertext is corrupted (auth-tag mismatch).
	// It is distinct from ErrMalformedEnvelope so callers can map it to a
	// "wrong key" sentinel rather than a parse problem.
	ErrDecryption = errors.New("decryption failed")

	// ErrMalformedEnvelope is returned when a string presented for
	// decryption does not decode to the envelope shape at all. On read
	// paths this is usually not an error but the signal for legacy
	// plaintext; use IsEnvelope to test without decrypting.
	ErrMalformedEnvelope = errors.New("malformed envelope")
)
