package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepankarm/jsonguide/internal/logging"
	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Server.Addr = "127.0.0.1:0"
	cfg.Server.MaxTextBytes = 64
	cfg.Schemas = map[string]*schema.Node{
		"capital": schema.MustParse(capitalSchema),
		"verdict": schema.Boolean(),
	}
	return cfg
}

func TestNewServer(t *testing.T) {
	srv := newServer(testConfig(), logging.Discard(), prometheus.NewRegistry())
	assert.Equal(t, "127.0.0.1:0", srv.Addr)

	t.Run("configured schemas", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/schemas", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"schemas":["capital","verdict"]}`, w.Body.String())
	})

	t.Run("complete by name", func(t *testing.T) {
		body := strings.NewReader(`{"schema_name":"verdict","text":"t"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/complete", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"mode":"force","fragments":[{"kind":"Literal","text":"rue","end":true}],"wire":["rue\u0000"]}`, w.Body.String())
	})

	t.Run("text limit", func(t *testing.T) {
		body := strings.NewReader(`{"schema_name":"verdict","text":"` + strings.Repeat(" ", 65) + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/complete", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "jsonguide_requests_total")
	})
}

func TestServeShutdown(t *testing.T) {
	srv := newServer(testConfig(), logging.Discard(), prometheus.NewRegistry())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, serve(ctx, srv, logging.Discard()))
}

func TestServeListenError(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Addr = "127.0.0.1:-1"
	srv := newServer(cfg, logging.Discard(), prometheus.NewRegistry())
	err := serve(context.Background(), srv, logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
