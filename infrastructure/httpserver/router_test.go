package httpserver

import (
	"chat-relay/observability"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type presence struct{ connections, users int }

func (p presence) Counts() (int, int) { return p.connections, p.users }

func newRouter(upgrade mux.MiddlewareFunc) (*mux.Router, *observability.MonitoringManager) {
	log := logs.GetLoggerFromLevel(slog.LevelError)
	monitoring := observability.NewMonitoringManager(log)
	socket := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	return NewRouter(log, socket, upgrade, presence{connections: 3, users: 2}, monitoring), monitoring
}

func passThrough(next http.Handler) http.Handler { return next }

func TestRouter_Health(t *testing.T) {
	req := require.New(t)
	router, monitoring := newRouter(passThrough)
	monitoring.Update(1024, 12.5)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	req.Equal(http.StatusOK, rec.Code)
	var health Health
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &health))
	req.Equal("ok", health.Status)
	req.Equal(3, health.Connections)
	req.Equal(2, health.OnlineUsers)
	req.Equal(uint64(1024), health.RSSBytes)
	req.InDelta(12.5, health.CPUPercent, 0.001)
}

func TestRouter_SocketGoesThroughUpgradeMiddleware(t *testing.T) {
	req := require.New(t)
	refuse := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}

	rec := httptest.NewRecorder()
	router, _ := newRouter(refuse)
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))
	req.Equal(http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	router, _ = newRouter(passThrough)
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))
	req.Equal(http.StatusTeapot, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	req := require.New(t)
	router, monitoring := newRouter(passThrough)
	monitoring.Update(2048, 1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	req.Equal(http.StatusOK, rec.Code)
	req.True(strings.Contains(rec.Body.String(), "chatrelay_process_rss_bytes"))
}
