package websocket

import (
	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

// Server upgrades HTTP requests and serves each socket until it closes.
// Every socket gone, gracefully or not, is followed by a disconnect event
// so presence never keeps a dead connection.
type Server struct {
	ctx       context.Context
	log       *slog.Logger
	submitter contract.ISubmitter
	upgrader  websocket.Upgrader
	cfg       Config

	mu    sync.Mutex
	conns map[domain.ConnectionID]*Connection
	wg    sync.WaitGroup
}

// NewServer binds the sockets to ctx: the read pumps and the final
// disconnect use it instead of the request context, which dies with the
// handler.
func NewServer(ctx context.Context, log *slog.Logger, submitter contract.ISubmitter, cfg Config, allowedOrigins []string) *Server {
	return &Server{
		ctx:       ctx,
		log:       log,
		submitter: submitter,
		cfg:       cfg,
		conns:     make(map[domain.ConnectionID]*Connection),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	socket, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("Upgrade refused", "remote_addr", r.RemoteAddr, "error", err)
		return
	}
	owner, _ := auth.UserFromContext(r.Context())
	conn := NewConnection(s.log, domain.ConnectionID(uuid.NewString()), owner, socket, s.cfg)

	s.track(conn)
	defer s.untrack(conn)
	s.log.Info("Socket opened", "connection_id", conn.ID(), "remote_addr", r.RemoteAddr, "authenticated", owner != "")

	conn.Serve(s.ctx, s.submitter)

	if err := s.submitter.Submit(s.ctx, contract.Request{
		Conn:    conn,
		Inbound: event.Inbound{Event: event.Disconnect},
	}); err != nil {
		s.log.Debug("Disconnect not submitted", "connection_id", conn.ID(), "error", err)
	}
	s.log.Info("Socket closed", "connection_id", conn.ID())
}

// Shutdown closes every open socket and waits for their handlers, or ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for _, conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) track(conn *Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wg.Add(1)
	s.conns[conn.ID()] = conn
}

func (s *Server) untrack(conn *Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn.ID())
	s.wg.Done()
}

// checkOrigin allows everything when the list is empty or holds "*".
// Requests without Origin header are not from a browser and pass.
func checkOrigin(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 || lo.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || lo.Contains(allowed, origin)
	}
}
