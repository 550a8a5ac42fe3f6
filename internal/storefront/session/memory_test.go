package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewMemoryCache("", clock.Now)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "tok", testProfile(), 120*time.Second))

	clock.Advance(119 * time.Second)
	got, ok, err := c.Get(ctx, "tok")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, testProfile(), got)

	clock.Advance(time.Second)
	_, ok, err = c.Get(ctx, "tok")
	require.NoError(t, err)
	require.False(t, ok, "an entry is absent exactly at its expiry")
	require.Zero(t, c.Len())
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	t.Parallel()

	c := NewMemoryCache("", nil)
	ctx := context.Background()
	p := testProfile()
	require.NoError(t, c.Set(ctx, "tok", p, time.Minute))

	p.Attributes["role"] = "admin"
	got, ok, err := c.Get(ctx, "tok")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "user", got.Role())

	got.Attributes["role"] = "admin"
	again, _, _ := c.Get(ctx, "tok")
	require.Equal(t, "user", again.Role())
}

func TestMemoryCache_SweepsExpired(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Unix(0, 0)}
	c := NewMemoryCache("", clock.Now)
	ctx := context.Background()

	for i := range sweepThreshold {
		require.NoError(t, c.Set(ctx, domainToken(i), testProfile(), time.Second))
	}
	clock.Advance(2 * time.Second)
	require.NoError(t, c.Set(ctx, "fresh", testProfile(), time.Second))
	require.Equal(t, 1, c.Len())
}

func TestKey(t *testing.T) {
	t.Parallel()
	require.Equal(t, "session-token::abc", Key("", "abc"))
	require.Equal(t, "p:abc", Key("p", "abc"))
}

func domainToken(i int) domain.UserToken {
	return domain.UserToken(fmt.Sprintf("tok-%d", i))
}
