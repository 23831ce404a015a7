package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/database/memory"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/handler"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/item"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T, apiKey string) (http.Handler, inventory.Service) {
	t.Helper()

	repo := memory.NewInventoryRepository()
	_, err := item.NewLoader().Seed(context.Background(), item.DefaultConfig(), repo)
	require.NoError(t, err)

	svc := inventory.NewService(repo, inventory.NewEngine(inventory.DefaultRules()), inventory.Options{})
	router := NewRouter(Options{APIKey: apiKey, ServiceName: "gildedrose", Version: "test"}, svc)
	return router, svc
}

func send(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_InventoryFlow(t *testing.T) {
	router, _ := newTestServer(t, testAPIKey)
	auth := map[string]string{HeaderAPIKey: testAPIKey}

	w := send(router, http.MethodGet, "/api/v1/items", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inv handler.InventoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	assert.Equal(t, 0, inv.Day)
	require.Len(t, inv.Items, 9)

	w = send(router, http.MethodPost, "/api/v1/days/advance", `{"days":2}`, auth)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	assert.Equal(t, 2, inv.Day)
	assert.Equal(t, 18, inv.Items[0].Quality, "vest")
	assert.Equal(t, 2, inv.Items[1].Quality, "brie")
	assert.Equal(t, 80, inv.Items[3].Quality, "sulfuras")
	assert.Equal(t, 2, inv.Items[8].Quality, "conjured")

	w = send(router, http.MethodPost, "/api/v1/days/advance", "", auth)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	assert.Equal(t, 3, inv.Day)

	w = send(router, http.MethodGet, "/api/v1/items/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quality":4`)

	w = send(router, http.MethodPost, "/api/v1/items", `{"name":"Conjured Sword","sell_in":5,"quality":30}`, auth)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":10`)

	w = send(router, http.MethodGet, "/api/v1/items/10", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = send(router, http.MethodGet, "/api/v1/items/11", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Auth(t *testing.T) {
	router, _ := newTestServer(t, testAPIKey)

	t.Run("writes require the key", func(t *testing.T) {
		w := send(router, http.MethodPost, "/api/v1/days/advance", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = send(router, http.MethodPost, "/api/v1/items", `{"name":"x","sell_in":1,"quality":1}`,
			map[string]string{HeaderAPIKey: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("reads are public", func(t *testing.T) {
		w := send(router, http.MethodGet, "/api/v1/items", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("empty key disables auth", func(t *testing.T) {
		open, _ := newTestServer(t, "")
		w := send(open, http.MethodPost, "/api/v1/days/advance", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_Probes(t *testing.T) {
	router, _ := newTestServer(t, "")

	w := send(router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(HeaderRequestID), "probes are not request-logged")

	w = send(router, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store":"memory"`)

	w = send(router, http.MethodGet, "/version", "", nil)
	assert.Contains(t, w.Body.String(), `"version":"test"`)

	w = send(router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gildedrose_http_requests_total")
}

func TestRouter_RequestIDAndSecurityHeaders(t *testing.T) {
	router, _ := newTestServer(t, "")

	w := send(router, http.MethodGet, "/api/v1/items", "", nil)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueDeny, w.Header().Get(HeaderFrameOptions))

	w = send(router, http.MethodGet, "/api/v1/items", "", map[string]string{HeaderRequestID: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestServer_StopShutsDownInventory(t *testing.T) {
	_, svc := newTestServer(t, "")
	srv := NewServer(Options{Port: 0}, svc)

	require.NoError(t, srv.Stop(context.Background()))

	_, err := svc.AdvanceDays(context.Background(), 1)
	assert.Error(t, err)
}

func TestServer_StopClosesInventoryWhenDrainTimesOut(t *testing.T) {
	_, svc := newTestServer(t, "")
	srv := NewServer(Options{Port: 0}, svc)

	started := make(chan struct{})
	release := make(chan struct{})
	srv.httpServer.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	})
	t.Cleanup(func() { close(release) })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.httpServer.Serve(ln) }()

	go func() {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err == nil {
			_ = resp.Body.Close()
		}
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = srv.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Eventually(t, func() bool {
		_, err := svc.AdvanceDays(context.Background(), 1)
		return errors.Is(err, domain.ErrShuttingDown)
	}, time.Second, 10*time.Millisecond)
}

func TestRouter_RateLimit(t *testing.T) {
	repo := memory.NewInventoryRepository()
	svc := inventory.NewService(repo, inventory.NewEngine(inventory.DefaultRules()), inventory.Options{})
	router := NewRouter(Options{RateLimit: 2}, svc)

	assert.Equal(t, http.StatusOK, send(router, http.MethodGet, "/api/v1/items", "", nil).Code)
	assert.Equal(t, http.StatusOK, send(router, http.MethodGet, "/api/v1/items", "", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, send(router, http.MethodGet, "/api/v1/items", "", nil).Code)

	w := send(router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "probes are not rate limited")
}

func TestRouter_CORS(t *testing.T) {
	repo := memory.NewInventoryRepository()
	svc := inventory.NewService(repo, inventory.NewEngine(inventory.DefaultRules()), inventory.Options{})
	router := NewRouter(Options{CORSAllowedOrigins: []string{"https://shop.example"}}, svc)

	w := send(router, http.MethodOptions, "/api/v1/days/advance", "", map[string]string{
		"Origin":                        "https://shop.example",
		"Access-Control-Request-Method": http.MethodPost,
	})
	assert.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = send(router, http.MethodGet, "/api/v1/items", "", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
