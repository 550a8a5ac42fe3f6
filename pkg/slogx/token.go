package slogx

import (
	"log/slog"

	"github.com/aussiebroadwan/storefront/pkg/cryptox"
)

// Token logs a short fingerprint of a credential under key. Raw tokens never
// reach the log.
func Token(key, token string) slog.Attr {
	if token == "" {
		return slog.String(key, "")
	}
	return slog.String(key, cryptox.ShortFingerprint(token))
}
