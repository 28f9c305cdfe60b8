package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/observability"
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"log/slog"
	"time"
)

var _ contract.IHandler = (*Router)(nil)

// HandlerFunc processes one decoded request.
type HandlerFunc func(ctx context.Context, req contract.Request) (contract.Reply, error)

type route struct {
	handler HandlerFunc
	// public routes are allowed before the connection subscribed
	public bool
}

// Router dispatches inbound events to their handler and answers the ack.
// A panic inside a handler is turned into a failure ack so one bad event
// never stops the event loop.
type Router struct {
	log      *slog.Logger
	registry contract.IRegistry
	routes   map[event.Name]route
}

func NewRouter(log *slog.Logger, registry contract.IRegistry) *Router {
	return &Router{log: log, registry: registry, routes: make(map[event.Name]route)}
}

// Route registers a handler that requires a subscribed connection.
func (r *Router) Route(name event.Name, handler HandlerFunc) *Router {
	r.routes[name] = route{handler: handler}
	return r
}

// Public registers a handler callable before subscribe.
func (r *Router) Public(name event.Name, handler HandlerFunc) *Router {
	r.routes[name] = route{handler: handler, public: true}
	return r
}

func (r *Router) Handle(ctx context.Context, req contract.Request) {
	name := req.Inbound.Event
	label := string(name)
	if _, ok := r.routes[name]; !ok {
		label = "unknown"
	}
	start := time.Now()
	observability.EventsTotal.WithLabelValues(label).Inc()

	reply, err := r.dispatch(ctx, req)
	observability.EventDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

	if err != nil {
		kind := errors.KindOf(err)
		observability.EventFailures.WithLabelValues(label, string(kind)).Inc()
		r.logFailure(req, kind, err)
	}
	if req.Inbound.AckID == "" {
		return
	}
	r.ack(req, reply, err)
}

func (r *Router) dispatch(ctx context.Context, req contract.Request) (reply contract.Reply, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", errors.ErrWorkerPanic, req.Inbound.Event, rec)
		}
	}()

	current, ok := r.routes[req.Inbound.Event]
	if !ok {
		return contract.Reply{}, fmt.Errorf("%w: %q", errors.ErrUnknownEvent, req.Inbound.Event)
	}
	if !current.public {
		if _, subscribed := r.registry.FindByConnection(req.Conn.ID()); !subscribed {
			return contract.Reply{}, errors.ErrNotSubscribed
		}
	}
	return current.handler(ctx, req)
}

// failureResult is implemented by errors that carry an entity for the client,
// like the existing room of a conflict.
type failureResult interface {
	FailureResult() any
}

func (r *Router) ack(req contract.Request, reply contract.Reply, err error) {
	var out event.Outbound
	if err != nil {
		var withResult failureResult
		var result any
		if goerrors.As(err, &withResult) {
			result = withResult.FailureResult()
		}
		out = event.Failure(req.Inbound.AckID, err, result)
	} else {
		out = event.Success(req.Inbound.AckID, reply.ID, reply.Result)
	}
	if sendErr := req.Conn.Send(out); sendErr != nil {
		r.log.Warn("Ack not delivered",
			"event", req.Inbound.Event,
			"connection_id", req.Conn.ID(),
			"error", sendErr)
	}
}

func (r *Router) logFailure(req contract.Request, kind errors.Kind, err error) {
	attrs := []any{"event", req.Inbound.Event, "connection_id", req.Conn.ID(), "kind", kind, "error", err}
	switch kind {
	case errors.KindInternal, errors.KindStoreFailure:
		r.log.Error("Event failed", attrs...)
	default:
		r.log.Debug("Event rejected", attrs...)
	}
}

// Bind decodes the payload into T and validates it before calling fn.
func Bind[T any](fn func(ctx context.Context, conn contract.Connection, cmd T) (contract.Reply, error)) HandlerFunc {
	return func(ctx context.Context, req contract.Request) (contract.Reply, error) {
		var cmd T
		if data := req.Inbound.Data; len(data) > 0 && string(data) != "null" {
			if err := json.Unmarshal(data, &cmd); err != nil {
				return contract.Reply{}, fmt.Errorf("%w: %w", errors.ErrMalformedPayload, err)
			}
		}
		if err := domain.Validate(cmd); err != nil {
			return contract.Reply{}, err
		}
		return fn(ctx, req.Conn, cmd)
	}
}
