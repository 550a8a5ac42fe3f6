// Package upstream holds what the outbound service clients share: HTTP
// client construction and bounded body reads.
package upstream

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aussiebroadwan/storefront/pkg/metricsx"
)

const (
	DefaultTimeout = 10 * time.Second

	// maxBodyBytes bounds how much of an upstream response is read.
	maxBodyBytes = 1 << 20
)

// NewHTTPClient returns a client whose transport is timed under name. Per
// call deadlines come from the request context, so the client itself has no
// timeout.
func NewHTTPClient(name string, m *metricsx.Metrics) *http.Client {
	return &http.Client{
		Transport: m.RoundTripper(name, http.DefaultTransport),
	}
}

// ReadBody reads at most 1 MiB of resp's body and closes it.
func ReadBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBodyBytes)
	}
	return body, nil
}

// Drain discards the remaining body so the connection can be reused.
func Drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()
}

// Timeout returns d, or DefaultTimeout when d is not positive.
func Timeout(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}
