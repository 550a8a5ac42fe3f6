package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{
		ProfileURL:     srv.URL + "/profile",
		AccessTokenURL: srv.URL + "/token",
		ClientID:       "shop",
		RedirectURI:    "https://shop.example.com/cb",
		Timeout:        time.Second,
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"id":3,"client_id":"shop","user_id":5,"attributes":{"role":"admin"}}`))
		})

		p, err := c.Validate(context.Background(), "abc")
		require.NoError(t, err)
		require.EqualValues(t, 5, p.UserID)
		require.True(t, p.IsAdmin())
	})

	t.Run("zero user id is returned as is", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":0,"client_id":"","user_id":0,"attributes":{}}`))
		})

		p, err := c.Validate(context.Background(), "abc")
		require.NoError(t, err)
		require.Zero(t, p.UserID)
	})

	cases := map[string]struct {
		handler http.HandlerFunc
		want    error
	}{
		"401": {
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusUnauthorized) },
			want:    domain.ErrUnauthorized,
		},
		"500": {
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			want:    domain.ErrUnavailable,
		},
		"403": {
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) },
			want:    domain.ErrUnavailable,
		},
		"malformed body": {
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"user_id":`)) },
			want:    domain.ErrUnavailable,
		},
		"timeout": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(3 * time.Second):
				}
			},
			want: domain.ErrUnavailable,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := newServer(t, tc.handler)
			_, err := c.Validate(context.Background(), "abc")
			require.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c := New(Config{ProfileURL: url, Timeout: time.Second})
		_, err := c.Validate(context.Background(), "abc")
		require.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestExchangeCode(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, r.ParseForm())
			require.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			require.Equal(t, "the-code", r.PostForm.Get("code"))
			require.Equal(t, "shop", r.PostForm.Get("client_id"))
			require.Equal(t, "https://shop.example.com/cb", r.PostForm.Get("redirect_uri"))
			_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600}`))
		})

		tok, err := c.ExchangeCode(context.Background(), "the-code")
		require.NoError(t, err)
		require.Equal(t, TokenResponse{AccessToken: "at", TokenType: "Bearer", ExpiresIn: 3600}, tok)
	})

	t.Run("rejected code", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadRequest) })
		_, err := c.ExchangeCode(context.Background(), "bad")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("empty code", func(t *testing.T) {
		c := New(Config{})
		_, err := c.ExchangeCode(context.Background(), " ")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing access token", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{}`)) })
		_, err := c.ExchangeCode(context.Background(), "code")
		require.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestDeadlines(t *testing.T) {
	t.Parallel()

	slow := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}

	t.Run("timeout is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(slow))
		t.Cleanup(srv.Close)
		c := New(Config{ProfileURL: srv.URL + "/profile", AccessTokenURL: srv.URL + "/token", Timeout: 50 * time.Millisecond})

		start := time.Now()
		_, err := c.Validate(context.Background(), "abc")
		require.ErrorIs(t, err, domain.ErrUnavailable)
		require.Less(t, time.Since(start), time.Second)

		_, err = c.ExchangeCode(context.Background(), "code")
		require.ErrorIs(t, err, domain.ErrUnavailable)
	})

	t.Run("cancelled caller aborts the call", func(t *testing.T) {
		var calls atomic.Int32
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) { calls.Add(1) })

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Validate(ctx, "abc")
		require.ErrorIs(t, err, domain.ErrUnavailable)
		_, err = c.ExchangeCode(ctx, "code")
		require.ErrorIs(t, err, domain.ErrUnavailable)
		require.Zero(t, calls.Load())
	})
}
