package workers

import (
	"chat-relay/contract"
	"chat-relay/observability"
	"context"
	"log/slog"
)

var _ contract.Worker = (*EventLoopWorker)(nil)

// EventLoopWorker drains the request channel and hands every request to the
// handler, one at a time. Events of one connection are therefore processed
// in arrival order.
type EventLoopWorker struct {
	requests <-chan contract.Request
	handler  contract.IHandler
	log      *slog.Logger
}

func NewEventLoopWorker(requests <-chan contract.Request, handler contract.IHandler, log *slog.Logger) *EventLoopWorker {
	return &EventLoopWorker{
		requests: requests,
		handler:  handler,
		log:      log,
	}
}

func (w *EventLoopWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping event loop")
			return ctx.Err()
		case req, ok := <-w.requests:
			if !ok {
				w.log.Debug("Request channel is closed")
				return nil
			}
			observability.QueueDepth.Set(float64(len(w.requests)))
			w.handler.Handle(ctx, req)
		}
	}
}
