package storefront_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/app"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helpers for the storefront end-to-end tests. Redis
 * and Postgres run in containers; the identity provider, the corporate
 * directory and the ticket tracker are faked with httptest servers.
 */

const (
	userToken  = "e2e-user-token"
	otherToken = "e2e-other-token"
	adminToken = "e2e-admin-token"

	userID  int64 = 5
	otherID int64 = 6
	adminID int64 = 1

	corpServiceToken = "corp-service-token"
	ticketID         int64 = 4242
)

// upstreams fakes every outbound dependency of the service.
type upstreams struct {
	identity  *httptest.Server
	corp      *httptest.Server
	ticketing *httptest.Server

	identityCalls atomic.Int32
	corpStatus    atomic.Int32

	mu      sync.Mutex
	tickets []map[string]any
	failing bool
}

func newUpstreams(t *testing.T) *upstreams {
	t.Helper()
	u := &upstreams{}
	u.corpStatus.Store(http.StatusOK)

	profiles := map[string]string{
		userToken:  fmt.Sprintf(`{"id":10,"client_id":"shop","user_id":%d,"attributes":{}}`, userID),
		otherToken: fmt.Sprintf(`{"id":11,"client_id":"shop","user_id":%d,"attributes":{}}`, otherID),
		adminToken: fmt.Sprintf(`{"id":12,"client_id":"shop","user_id":%d,"attributes":{"role":"admin"}}`, adminID),
	}

	idMux := http.NewServeMux()
	idMux.HandleFunc("GET /profile", func(w http.ResponseWriter, r *http.Request) {
		u.identityCalls.Add(1)
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		body, ok := profiles[token]
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
	idMux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		switch r.FormValue("grant_type") {
		case "authorization_code":
			if r.FormValue("code") != "good-code" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"` + userToken + `","token_type":"Bearer","expires_in":3600}`))
		case "client_credentials":
			user, pass, ok := r.BasicAuth()
			if !ok || user != "shop" || pass != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"` + corpServiceToken + `","token_type":"Bearer","expires_in":300}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	u.identity = httptest.NewServer(idMux)
	t.Cleanup(u.identity.Close)

	corpMux := http.NewServeMux()
	corpMux.HandleFunc("GET /person/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+corpServiceToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if status := int(u.corpStatus.Load()); status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		if r.PathValue("id") != fmt.Sprint(userID) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"person": {"id": 77, "dni": "12345678Z", "nombre": "Ana", "apellidos": "García", "email": "ana@corp.example", "telefono": "600000000"},
			"lapp": [{"id": 1, "client_id": "shop", "client_url": "https://shop.example"}],
			"lpersonapp": [{"id": 3, "person_id": 77, "auth_client_id": 1, "profile": "customer"}]
		}`))
	})
	u.corp = httptest.NewServer(corpMux)
	t.Cleanup(u.corp.Close)

	u.ticketing = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		defer u.mu.Unlock()
		if u.failing {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		body["authorization"] = r.Header.Get("Authorization")
		u.tickets = append(u.tickets, body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"issue_id": %d}`, ticketID)
	}))
	t.Cleanup(u.ticketing.Close)

	return u
}

func (u *upstreams) setTicketingDown(down bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failing = down
}

func (u *upstreams) recordedTickets() []map[string]any {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]map[string]any(nil), u.tickets...)
}

// startContainer runs req and terminates it when the test ends.
func startContainer(t *testing.T, req testcontainers.ContainerRequest) testcontainers.Container {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})
	return container
}

// hostPort returns the host address mapped to the container's port.
func hostPort(t *testing.T, container testcontainers.Container, mapped string) string {
	t.Helper()
	ctx := context.Background()

	host, err := container.Host(ctx)
	require.NoError(t, err)
	return net.JoinHostPort(host, mapped)
}

func startRedis(t *testing.T) string {
	t.Helper()
	container := startContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	})

	mappedPort, err := container.MappedPort(context.Background(), "6379")
	require.NoError(t, err)
	return hostPort(t, container, mappedPort.Port())
}

func startPostgres(t *testing.T) string {
	t.Helper()
	container := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "storefront",
			"POSTGRES_PASSWORD": "storefront",
			"POSTGRES_DB":       "storefront",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	})

	mappedPort, err := container.MappedPort(context.Background(), "5432")
	require.NoError(t, err)
	return hostPort(t, container, mappedPort.Port())
}

// setupStorefront starts Redis, Postgres and the fake upstreams, then serves
// the fully wired application. It returns the base URL and the fakes.
func setupStorefront(t *testing.T) (string, *upstreams) {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests need docker")
	}

	redisAddr := startRedis(t)
	pgAddr := startPostgres(t)
	u := newUpstreams(t)

	t.Setenv("DATABASE_DRIVER", app.DriverPostgres)
	t.Setenv("DATABASE_URL", "postgres://storefront:storefront@"+pgAddr+"/storefront?sslmode=disable")
	t.Setenv("SESSION_CACHE", app.CacheRedis)
	t.Setenv("REDIS_URL", "redis://"+redisAddr+"/0")
	t.Setenv("AUTH_PROFILE_URL", u.identity.URL+"/profile")
	t.Setenv("AUTH_ACCESSTOKEN_URL", u.identity.URL+"/token")
	t.Setenv("REDIRECT_URI", "http://localhost:5173/callback")
	t.Setenv("AUTH_ACCESSTOKEN_CLIENT_URL", u.identity.URL+"/token")
	t.Setenv("CLIENT_ID", "shop")
	t.Setenv("CLIENT_SECRET", "secret")
	t.Setenv("CORP_SERVICE_USERDATA_URL", u.corp.URL)
	t.Setenv("ISSUE_CREATE_URL", u.ticketing.URL+"/issues.json")
	t.Setenv("ISSUE_PROJECT_ID", "3")
	t.Setenv("ISSUE_TRACKER_ID", "7")
	t.Setenv("PUBLIC_URL", "https://shop.example")
	t.Setenv("UPSTREAM_TIMEOUT", "2s")
	t.Setenv("ENV", "test")
	t.Setenv("LOG_LEVEL", "warn")

	application, err := app.New(context.Background(), app.LoadConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	return srv.URL, u
}

// requireAPIError asserts err is an API error with status and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, shopsdk.NewAPIError(status, code, ""))
}
