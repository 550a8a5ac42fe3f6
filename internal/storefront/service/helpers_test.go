package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store/drivers/sqlite"
	"github.com/aussiebroadwan/storefront/internal/storefront/upstream/ticketing"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func ptr[T any](v T) *T { return &v }

func user(id int64) domain.Profile {
	return domain.Profile{ID: id, ClientID: "shop", UserID: id, Attributes: map[string]string{}}
}

func admin(id int64) domain.Profile {
	return domain.Profile{ID: id, ClientID: "shop", UserID: id, Attributes: map[string]string{"role": "admin"}}
}

type fakeIdentity struct {
	calls   atomic.Int32
	profile domain.Profile
	err     error
}

func (f *fakeIdentity) Validate(context.Context, domain.UserToken) (domain.Profile, error) {
	f.calls.Add(1)
	return f.profile, f.err
}

// countingCache wraps a cache and can be told to fail.
type countingCache struct {
	mu      sync.Mutex
	gets    int
	sets    int
	getErr  error
	setErr  error
	entries map[domain.UserToken]domain.Profile
}

func newCountingCache() *countingCache {
	return &countingCache{entries: map[domain.UserToken]domain.Profile{}}
}

func (c *countingCache) Get(_ context.Context, tok domain.UserToken) (domain.Profile, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return domain.Profile{}, false, c.getErr
	}
	p, ok := c.entries[tok]
	return p, ok, nil
}

func (c *countingCache) Set(_ context.Context, tok domain.UserToken, p domain.Profile, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[tok] = p
	return nil
}

func (c *countingCache) Ping(context.Context) error { return nil }

type fakeCorp struct {
	person domain.CorpPerson
	found  bool
	err    error
}

func (f *fakeCorp) Person(context.Context, int64) (domain.CorpPerson, bool, error) {
	return f.person, f.found, f.err
}

type fakeTickets struct {
	calls atomic.Int32
	last  ticketing.Ticket
	token domain.UserToken
	id    int64
	err   error
}

func (f *fakeTickets) Create(_ context.Context, tok domain.UserToken, t ticketing.Ticket) (int64, error) {
	f.calls.Add(1)
	f.last = t
	f.token = tok
	return f.id, f.err
}

var errBoom = errors.New("boom")
