package storage

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newAttempt(caller, receiver domain.UserID, roomID domain.RoomID, at time.Time) (domain.CallRecord, domain.CallRecord) {
	attemptID := domain.AttemptID(uuid.NewString())
	callerView := domain.CallRecord{
		ID:         domain.CallID(uuid.NewString()),
		AttemptID:  attemptID,
		CallerID:   caller,
		ReceiverID: receiver,
		RoomID:     roomID,
		Type:       domain.CallVoice,
		Status:     domain.CallRinging,
		Direction:  domain.Outgoing,
		StartTime:  at,
	}
	receiverView := callerView
	receiverView.ID = domain.CallID(uuid.NewString())
	receiverView.Direction = domain.Incoming
	return callerView, receiverView
}

func TestCallRepository_MutateAttemptUpdatesBothViews(t *testing.T) {
	req := require.New(t)
	repo := NewCallRepository(SetupTestDB(t))
	callerView, receiverView := newAttempt("alice", "bob", "r1", time.Now().UTC())
	req.NoError(repo.Create(callerView, receiverView))
	at := time.Now().UTC()

	// When the receiver rejects through its own view id
	views, changed, err := repo.MutateAttempt(receiverView.ID, func(c *domain.CallRecord) bool {
		return c.Transition(domain.CallRejected, at)
	})
	req.NoError(err)
	req.True(changed)
	req.Len(views, 2)

	// Then both views are rejected with an end time
	for _, id := range []domain.CallID{callerView.ID, receiverView.ID} {
		call, err := repo.Get(id)
		req.NoError(err)
		req.Equal(domain.CallRejected, call.Status)
		req.NotNil(call.EndTime)
	}

	// When a late accept arrives nothing changes
	_, changed, err = repo.MutateAttempt(callerView.ID, func(c *domain.CallRecord) bool {
		return c.Transition(domain.CallAccepted, at)
	})
	req.NoError(err)
	req.False(changed)

	_, _, err = repo.MutateAttempt("ghost", func(c *domain.CallRecord) bool { return true })
	req.ErrorIs(err, errors.ErrCallNotFound)
}

func TestCallRepository_HistoryHasOneEntryPerAttempt(t *testing.T) {
	req := require.New(t)
	repo := NewCallRepository(SetupTestDB(t))
	at := time.Now().UTC()

	// Given a delivered attempt, then an attempt to an offline receiver
	first, firstIncoming := newAttempt("alice", "bob", "r1", at)
	req.NoError(repo.Create(first))
	req.NoError(repo.Create(firstIncoming))
	second, _ := newAttempt("bob", "alice", "r1", at.Add(time.Minute))
	second.Status = domain.CallMissed
	req.NoError(repo.Create(second))

	// Then alice sees both attempts newest first
	history, err := repo.HistoryOf("alice", 50, 0)
	req.NoError(err)
	req.Len(history, 2)
	req.Equal(second.AttemptID, history[0].AttemptID)
	req.Equal(first.AttemptID, history[1].AttemptID)
	req.Equal(domain.Outgoing, history[1].Direction)

	// And a skip moves the window
	history, err = repo.HistoryOf("alice", 50, 1)
	req.NoError(err)
	req.Len(history, 1)
	req.Equal(first.AttemptID, history[0].AttemptID)

	roomHistory, err := repo.HistoryOfRoom("r1", 20, 0)
	req.NoError(err)
	req.Len(roomHistory, 2)

	empty, err := repo.HistoryOf("carol", 50, 0)
	req.NoError(err)
	req.Empty(empty)
}

func TestCallRepository_OpenInRoom(t *testing.T) {
	req := require.New(t)
	repo := NewCallRepository(SetupTestDB(t))
	at := time.Now().UTC()

	closed, _ := newAttempt("alice", "bob", "r1", at)
	closed.Status = domain.CallEnded
	req.NoError(repo.Create(closed))
	open, openIncoming := newAttempt("alice", "bob", "r1", at.Add(time.Second))
	req.NoError(repo.Create(open, openIncoming))

	calls, err := repo.OpenInRoom("r1", nil)
	req.NoError(err)
	req.Len(calls, 2)
	req.Equal(open.AttemptID, calls[0].AttemptID)

	// Only the views where bob is the caller
	calls, err = repo.OpenInRoom("r1", func(c domain.CallRecord) bool { return c.CallerID == "bob" })
	req.NoError(err)
	req.Empty(calls)
}
