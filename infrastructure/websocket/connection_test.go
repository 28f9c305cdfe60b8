package websocket

import (
	"chat-relay/domain/event"
	"chat-relay/errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestConnection_SendIsBounded(t *testing.T) {
	req := require.New(t)
	conn := NewConnection(logs.GetLoggerFromLevel(slog.LevelError), "c1", "", nil, Config{BufferSize: 2})

	req.NoError(conn.Send(event.New(event.Typing, nil)))
	req.NoError(conn.Send(event.New(event.Typing, nil)))
	req.ErrorIs(conn.Send(event.New(event.Typing, nil)), errors.ErrConnectionSaturated)

	req.NoError(conn.Close())
	req.NoError(conn.Close())
	req.ErrorIs(conn.Send(event.New(event.Typing, nil)), errors.ErrConnectionClosed)

	_, ok := conn.AuthenticatedUser()
	req.False(ok)
}

func TestCheckOrigin(t *testing.T) {
	req := require.New(t)
	withOrigin := func(origin string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/ws", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	req.True(checkOrigin(nil)(withOrigin("https://evil.example")))
	req.True(checkOrigin([]string{"*"})(withOrigin("https://evil.example")))

	allowed := checkOrigin([]string{"https://chat.example"})
	req.True(allowed(withOrigin("https://chat.example")))
	req.True(allowed(withOrigin("")))
	req.False(allowed(withOrigin("https://evil.example")))
}

func TestConfig_PingBeforePong(t *testing.T) {
	cfg := Config{PongWait: 60 * time.Second}
	require.Less(t, cfg.pingPeriod(), cfg.PongWait)
}
