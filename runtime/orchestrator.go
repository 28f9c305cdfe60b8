// Package runtime owns the in-memory coordination state and the event loop.
// It routes events to the services without containing business rules.
package runtime

import (
	"chat-relay/contract"
	"chat-relay/observability"
	"chat-relay/runtime/workers"
	"context"
	"log/slog"
	"sync"
)

var _ contract.ISubmitter = (*Orchestrator)(nil)

// Orchestrator funnels the requests of every connection into one channel
// drained by a single supervised event loop.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	handler    contract.IHandler
	requests   chan contract.Request
	workers    []contract.Worker
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, handler contract.IHandler, bufferSize int) *Orchestrator {
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		handler:    handler,
		requests:   make(chan contract.Request, bufferSize),
	}
}

// Add registers side workers (health sampling) run next to the event loop.
func (o *Orchestrator) Add(w ...contract.Worker) *Orchestrator {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.workers = append(o.workers, w...)
	return o
}

// Submit blocks while the queue is full so a flooding connection only slows
// itself down.
func (o *Orchestrator) Submit(ctx context.Context, req contract.Request) error {
	select {
	case o.requests <- req:
		observability.QueueDepth.Set(float64(len(o.requests)))
		return nil
	case <-ctx.Done():
		o.log.Warn("Request dropped, event loop saturated",
			"event", req.Inbound.Event,
			"connection_id", req.Conn.ID())
		return ctx.Err()
	}
}

// Start blocks until ctx is canceled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	o.supervisor.Add(workers.NewEventLoopWorker(o.requests, o.handler, o.log))
	o.supervisor.Add(o.workers...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "workers", len(o.workers)+1)
	o.supervisor.Run(ctx)
}

func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
