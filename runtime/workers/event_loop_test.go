package workers

import (
	"chat-relay/contract"
	"chat-relay/domain/event"
	"chat-relay/mocks"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventLoopWorker_HandlesInArrivalOrder(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	handler := mocks.NewMockIHandler(ctrl)

	// Given three requests queued before the loop starts
	requests := make(chan contract.Request, 3)
	for _, name := range []event.Name{event.Subscribe, event.SendMessage, event.Typing} {
		requests <- contract.Request{Inbound: event.Inbound{Event: name}}
	}
	close(requests)

	var seen []event.Name
	handler.EXPECT().Handle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r contract.Request) {
			seen = append(seen, r.Inbound.Event)
		}).Times(3)

	// When the loop drains a closed channel
	err := NewEventLoopWorker(requests, handler, log).Run(context.Background())

	// Then it returns without error after handling every request in order
	req.NoError(err)
	req.Equal([]event.Name{event.Subscribe, event.SendMessage, event.Typing}, seen)
}

func TestEventLoopWorker_StopsOnCancel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	handler := mocks.NewMockIHandler(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewEventLoopWorker(make(chan contract.Request), handler, log).Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.Fail("event loop should stop when its context is canceled")
	}
}
