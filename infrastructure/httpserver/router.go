package httpserver

import (
	"chat-relay/observability"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Presence is the part of the registry the health endpoint reads.
type Presence interface {
	Counts() (connections, users int)
}

// Stats exposes the latest process sample.
type Stats interface {
	GetLatest() observability.ProcessStats
}

type Health struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Connections int       `json:"connections"`
	OnlineUsers int       `json:"onlineUsers"`
	RSSBytes    uint64    `json:"rssBytes"`
	CPUPercent  float64   `json:"cpuPercent"`
	Goroutines  int       `json:"goroutines"`
}

// NewRouter mounts the socket endpoint behind the upgrade middleware, the
// health probe and the Prometheus exposition.
func NewRouter(log *slog.Logger, socket http.Handler, upgrade mux.MiddlewareFunc, presence Presence, stats Stats) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/ws", upgrade(socket)).Methods(http.MethodGet)
	r.Handle("/health", healthHandler(log, presence, stats)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

func healthHandler(log *slog.Logger, presence Presence, stats Stats) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		connections, users := presence.Counts()
		latest := stats.GetLatest()
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(Health{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Connections: connections,
			OnlineUsers: users,
			RSSBytes:    latest.RSSBytes,
			CPUPercent:  latest.CPUPercent,
			Goroutines:  latest.Goroutines,
		})
		if err != nil {
			log.Warn("Health response not written", "error", err)
		}
	}
}
