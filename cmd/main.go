package main

import (
	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/infrastructure/grpc/server"
	"chat-relay/infrastructure/httpserver"
	"chat-relay/infrastructure/storage"
	"chat-relay/infrastructure/websocket"
	"chat-relay/internal"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning instead of exiting lets every deferred cleanup run first.
func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env file is fine, the environment may already be set.
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	iceServers, err := config.ICEServers()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, internal.InspectMapper)
	}

	// 3. Services
	registry := runtime.NewRegistry()
	deps := services.Dependencies{
		Log:        logger,
		Registry:   registry,
		Typing:     runtime.NewTypingSet(),
		Users:      storage.NewUserRepository(db),
		Rooms:      storage.NewRoomRepository(db, logger),
		Messages:   storage.NewMessageRepository(db, logger),
		Calls:      storage.NewCallRepository(db),
		IceServers: iceServers,
		LedgerSize: config.DeliveryLedgerSize,
	}
	if config.ModerationEnabled {
		moderator, err := loadModerator(config, logger)
		if err != nil {
			return exitConfig, err
		}
		deps.Moderator = moderator
	}
	svc, err := services.New(deps)
	if err != nil {
		return exitConfig, fmt.Errorf("services init failed: %w", err)
	}
	router := svc.Routes(runtime.NewRouter(logger, registry))

	// 4. Setup Supervision & Orchestration
	monitoring := observability.NewMonitoringManager(logger)
	orchestrator := runtime.NewOrchestrator(logger, workers.NewSupervisor(logger, config.RestartInterval), router, config.EventBufferSize).
		Add(
			workers.NewHealthMonitoringWorker(logger, monitoring, registry, config.MetricInterval),
			server.NewHealthServer(logger, config.GrpcPort),
		)

	// 5. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	go func() {
		logger.Info("Starting orchestrator...")
		orchestrator.Start(ctx)
	}()

	// 6. HTTP & WebSocket Setup
	interceptor, err := buildInterceptor(config, logger)
	if err != nil {
		return exitConfig, err
	}
	sockets := websocket.NewServer(ctx, logger, orchestrator, websocket.Config{
		BufferSize:     config.ConnectionBufferSize,
		WriteTimeout:   config.WriteTimeout,
		PongWait:       config.PongWait,
		MaxMessageSize: config.MaxMessageSize,
	}, config.Origins())
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           httpserver.NewRouter(logger, sockets, interceptor.Middleware, registry, monitoring),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		orchestrator.Stop()
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	// Sockets close first so their disconnects still reach the event loop.
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := sockets.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Sockets did not drain in time", "error", err)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server did not stop in time", "error", err)
	}
	orchestrator.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

func loadModerator(config internal.Config, logger *slog.Logger) (contract.IModerator, error) {
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return nil, err
	}
	moderator, err := moderation.LoadModerator(charReplacement, logger)
	if err != nil {
		return nil, fmt.Errorf("moderation init failed: %w", err)
	}
	return moderator, nil
}

// buildInterceptor leaves sockets anonymous when no secret is configured.
func buildInterceptor(config internal.Config, logger *slog.Logger) (*auth.Interceptor, error) {
	if config.AuthSecret == "" {
		if config.AuthRequired {
			return nil, errors.New("AUTH_REQUIRED needs AUTH_SECRET")
		}
		logger.Warn("AUTH_SECRET not set, connections are anonymous")
		return auth.NewInterceptor(logger, nil, false), nil
	}
	tokens, err := auth.NewTokenService(config.AuthSecret)
	if err != nil {
		return nil, err
	}
	return auth.NewInterceptor(logger, tokens, config.AuthRequired), nil
}
