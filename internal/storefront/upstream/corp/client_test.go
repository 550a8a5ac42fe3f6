package corp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

const personJSON = `{
	"person": {"id": 9, "dni": "123X", "nombre": "Ana", "apellidos": "Ruiz", "email": "ana@example.com", "telefono": "600"},
	"lapp": [{"id": 1, "client_id": "shop", "client_url": "https://shop.example.com"}],
	"lpersonapp": [{"id": 2, "person_id": 9, "auth_client_id": 1, "profile": "admin"}]
}`

type fakeCorp struct {
	tokenCalls  atomic.Int32
	personCalls atomic.Int32

	tokenBody    string
	personStatus int
}

func (f *fakeCorp) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "shop", user)
		require.Equal(t, "s3cret", pass)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		_, _ = w.Write([]byte(f.tokenBody))
	})
	mux.HandleFunc("GET /person/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.personCalls.Add(1)
		require.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))
		if f.personStatus != http.StatusOK {
			w.WriteHeader(f.personStatus)
			return
		}
		_, _ = w.Write([]byte(personJSON))
	})
	return mux
}

func newClient(t *testing.T, f *fakeCorp, now func() time.Time) *Client {
	t.Helper()
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)
	return New(Config{
		TokenURL:     srv.URL + "/token",
		ClientID:     "shop",
		ClientSecret: "s3cret",
		BaseURL:      srv.URL + "/",
		Timeout:      time.Second,
		Now:          now,
	})
}

func TestPerson(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		f := &fakeCorp{tokenBody: `{"access_token":"svc-token","token_type":"Bearer","expires_in":300}`, personStatus: http.StatusOK}
		c := newClient(t, f, nil)

		p, found, err := c.Person(context.Background(), 9)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "Ana", p.Person.Name)
		require.Len(t, p.Apps, 1)
		require.EqualValues(t, 1, p.PersonAppGrants[0].AuthClientID)
	})

	t.Run("not found", func(t *testing.T) {
		f := &fakeCorp{tokenBody: `{"access_token":"svc-token","expires_in":300}`, personStatus: http.StatusNotFound}
		c := newClient(t, f, nil)

		_, found, err := c.Person(context.Background(), 9)
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("server error", func(t *testing.T) {
		f := &fakeCorp{tokenBody: `{"access_token":"svc-token","expires_in":300}`, personStatus: http.StatusInternalServerError}
		c := newClient(t, f, nil)

		_, found, err := c.Person(context.Background(), 9)
		require.ErrorIs(t, err, domain.ErrUnavailable)
		require.False(t, found)
	})

	t.Run("token endpoint failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		t.Cleanup(srv.Close)
		c := New(Config{TokenURL: srv.URL, BaseURL: srv.URL})

		_, _, err := c.Person(context.Background(), 9)
		require.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestServiceTokenIsCached(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	f := &fakeCorp{tokenBody: `{"access_token":"svc-token","expires_in":60}`, personStatus: http.StatusOK}
	c := newClient(t, f, clock)
	ctx := context.Background()

	for range 3 {
		_, _, err := c.Person(ctx, 9)
		require.NoError(t, err)
	}
	require.EqualValues(t, 1, f.tokenCalls.Load())
	require.EqualValues(t, 3, f.personCalls.Load())
	require.Equal(t, clock().Add(60*time.Second-expirySkew), c.token.ExpiresAt())

	// 60s lifetime minus the skew: refreshed after 30s.
	mu.Lock()
	now = now.Add(31 * time.Second)
	mu.Unlock()

	_, _, err := c.Person(ctx, 9)
	require.NoError(t, err)
	require.EqualValues(t, 2, f.tokenCalls.Load())
}

func TestServiceTokenExpiryFromJWT(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	c := New(Config{Now: func() time.Time { return now }})
	exp := c.expiry(tokenResponse{AccessToken: signed})
	require.Equal(t, now.Add(10*time.Minute-expirySkew), exp)

	require.True(t, c.expiry(tokenResponse{AccessToken: "opaque"}).IsZero())
	require.Equal(t, now.Add(90*time.Second), c.expiry(tokenResponse{AccessToken: "opaque", ExpiresIn: 120}))
}

func TestRejectedServiceTokenIsDropped(t *testing.T) {
	t.Parallel()

	f := &fakeCorp{tokenBody: `{"access_token":"svc-token","expires_in":300}`, personStatus: http.StatusUnauthorized}
	c := newClient(t, f, nil)
	ctx := context.Background()

	_, _, err := c.Person(ctx, 9)
	require.ErrorIs(t, err, domain.ErrUnavailable)
	_, _, err = c.Person(ctx, 9)
	require.ErrorIs(t, err, domain.ErrUnavailable)
	require.EqualValues(t, 2, f.tokenCalls.Load())
}

func TestPersonDeadlines(t *testing.T) {
	t.Parallel()

	slow := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}

	t.Run("slow directory", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"access_token":"svc-token","expires_in":300}`))
		})
		mux.HandleFunc("GET /person/{id}", slow)
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)
		c := New(Config{TokenURL: srv.URL + "/token", BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

		start := time.Now()
		_, found, err := c.Person(context.Background(), 9)
		require.ErrorIs(t, err, domain.ErrUnavailable)
		require.False(t, found)
		require.Less(t, time.Since(start), time.Second)
	})

	t.Run("slow token endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(slow))
		t.Cleanup(srv.Close)
		c := New(Config{TokenURL: srv.URL + "/token", BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

		_, _, err := c.Person(context.Background(), 9)
		require.ErrorIs(t, err, domain.ErrUnavailable)
	})

	t.Run("cancelled caller aborts the call", func(t *testing.T) {
		f := &fakeCorp{tokenBody: `{"access_token":"svc-token","expires_in":300}`, personStatus: http.StatusOK}
		c := newClient(t, f, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := c.Person(ctx, 9)
		require.ErrorIs(t, err, domain.ErrUnavailable)
		require.Zero(t, f.tokenCalls.Load())
		require.Zero(t, f.personCalls.Load())
	})
}
