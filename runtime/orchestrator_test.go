package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/mocks"
	"chat-relay/runtime/workers"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrchestrator_SubmitReachesHandler(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	handler := mocks.NewMockIHandler(ctrl)
	side := mocks.NewMockWorker(ctrl)

	handled := make(chan event.Name, 1)
	handler.EXPECT().Handle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r contract.Request) {
			handled <- r.Inbound.Event
		})
	// Given a side worker running next to the event loop
	sideRan := make(chan struct{})
	side.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(sideRan)
		<-ctx.Done()
		return nil
	})

	o := NewOrchestrator(log, workers.NewSupervisor(log, time.Millisecond), handler, 4).Add(side)
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		o.Start(context.Background())
	}()

	// When a request is submitted
	req.NoError(o.Submit(context.Background(), contract.Request{Inbound: event.Inbound{Event: event.Typing}}))

	// Then the handler gets it and Stop ends everything
	select {
	case name := <-handled:
		req.Equal(event.Typing, name)
	case <-time.After(time.Second):
		req.Fail("request never handled")
	}
	<-sideRan
	o.Stop()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		req.Fail("orchestrator did not stop")
	}
}

func TestOrchestrator_SubmitBlocksWhenFull(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().ID().Return(domain.ConnectionID("c1")).AnyTimes()

	// Given a queue of one that nobody drains
	o := NewOrchestrator(log, workers.NewSupervisor(log, time.Millisecond), mocks.NewMockIHandler(ctrl), 1)
	r := contract.Request{Conn: conn, Inbound: event.Inbound{Event: event.SendMessage}}
	req.NoError(o.Submit(context.Background(), r))

	// When the next submit waits past its deadline
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := o.Submit(ctx, r)

	// Then the caller gets the context error
	req.ErrorIs(err, context.DeadlineExceeded)
}
