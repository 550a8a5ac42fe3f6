package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
)

// ShortFingerprintLen is the length of ShortFingerprint's output.
const ShortFingerprintLen = 12

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token,
// base64url encoded (43 chars).
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// ShortFingerprint is a log friendly prefix of FingerprintToken. It is enough
// to correlate requests made with the same token, not to recover it.
func ShortFingerprint(token string) string {
	return FingerprintToken(token)[:ShortFingerprintLen]
}
