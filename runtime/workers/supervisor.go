package workers

import (
	"chat-relay/contract"
	"chat-relay/errors"
	"chat-relay/observability"
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const waitTimeBeforeRestart = 200 * time.Millisecond

var _ contract.ISupervisor = (*Supervisor)(nil)

// Supervisor runs each worker in its own goroutine and restarts it after a
// panic or an error, until its context is canceled or Stop is called.
// A worker returning nil is considered done and is not restarted.
type Supervisor struct {
	log            *slog.Logger
	restartBackoff time.Duration
	wg             sync.WaitGroup

	mu      sync.Mutex
	workers []contract.Worker
	cancel  context.CancelFunc
	stopped bool
}

func NewSupervisor(log *slog.Logger, restartBackoff time.Duration) *Supervisor {
	if restartBackoff <= 0 {
		restartBackoff = waitTimeBeforeRestart
	}
	return &Supervisor{log: log, restartBackoff: restartBackoff}
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers = append(s.workers, worker...)
	return s
}

// Run blocks until every worker has returned.
func (s *Supervisor) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.cancel = cancel
	workers := append([]contract.Worker(nil), s.workers...)
	s.mu.Unlock()

	for _, worker := range workers {
		s.Start(ctx, worker)
	}
	s.wg.Wait()
}

// Start supervises one worker on ctx without waiting for it.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.supervise(ctx, worker, contract.GetWorkerName(worker))
	}()
}

func (s *Supervisor) supervise(ctx context.Context, worker contract.Worker, name string) {
	for ctx.Err() == nil {
		err := runOnce(ctx, worker)
		switch {
		case err == nil:
			s.log.Info("Worker finished", "name", name)
			return
		case ctx.Err() != nil:
			s.log.Info("Worker stopped (context canceled)", "name", name)
			return
		case goerrors.Is(err, errors.ErrWorkerPanic):
			s.log.Error("Worker panicked, restarting", "name", name, "error", err)
		default:
			s.log.Warn("Worker crashed, restarting", "name", name, "error", err)
		}
		observability.WorkerRestarts.WithLabelValues(name).Inc()

		select {
		case <-ctx.Done():
		case <-time.After(s.restartBackoff):
		}
	}
	s.log.Info("Stopping worker", "name", name)
}

// runOnce turns a panic of the worker into ErrWorkerPanic.
func runOnce(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return worker.Run(ctx)
}

// Stop cancels every supervised worker. A Run started afterwards returns
// immediately.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
}
