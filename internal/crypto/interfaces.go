package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_codec_mock.go -package=mock

// EnvelopeCodec is the pure cryptographic core of the vault: key derivation
// from user secrets and field-level authenticated encryption into
// self-describing envelopes. It knows nothing about sessions, storage or
// the network.
//
// The persisted envelope format is fixed for interoperability: a standard
// base64 string decoding to the UTF-8 JSON object {"iv":"<b64>","ct":"<b64>"},
// where iv is a 12-byte random nonce and ct is the AES-256-GCM output
// (ciphertext with appended authentication tag). Any string that does not
// decode to this shape is treated as legacy plaintext.
type EnvelopeCodec interface {
	// Derive deterministically produces a 256-bit key from token and
	// scopeLabel. The salt is the fixed application prefix concatenated
	// with scopeLabel, so keys for different scopes are independent even
	// when the token repeats. Same inputs always reproduce the same key.
	// Returns ErrDerivation if the inputs are unusable.
	Derive(token, scopeLabel string) (*DerivedKey, error)

	// Encrypt seals plaintext under key into an envelope string. Every
	// call draws a fresh random nonce, so encrypting the same plaintext
	// twice yields different envelopes.
	Encrypt(plaintext string, key *DerivedKey) (string, error)

	// Decrypt opens an envelope string produced by Encrypt. Returns
	// ErrMalformedEnvelope if the string does not parse as an envelope,
	// and ErrDecryption if authentication fails (wrong key or corrupted
	// ciphertext).
	Decrypt(envelope string, key *DerivedKey) (string, error)

	// IsEnvelope reports whether value parses as an envelope, without
	// attempting decryption. It returns false (never an error) on any
	// parse failure; that is the expected signal for legacy plaintext.
	IsEnvelope(value string) bool
}
