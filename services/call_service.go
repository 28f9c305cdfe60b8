package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	defaultUserHistory = 50
	defaultRoomHistory = 20
	maxHistory         = 200
)

// CallService brokers signaling between two parties and keeps the record of
// every attempt. Notifications and history messages only follow a mutation
// that changed at least one view, so a losing racer is a silent no-op.
type CallService struct {
	log         *slog.Logger
	calls       contract.ICallRepository
	registry    contract.IRegistry
	broadcaster *Broadcaster
	messages    *MessageService
	now         func() time.Time
}

func NewCallService(
	log *slog.Logger,
	calls contract.ICallRepository,
	registry contract.IRegistry,
	broadcaster *Broadcaster,
	messages *MessageService,
) *CallService {
	return &CallService{
		log:         log,
		calls:       calls,
		registry:    registry,
		broadcaster: broadcaster,
		messages:    messages,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Initiate creates the attempt. An unreachable receiver is not a failure:
// the ack succeeds with the missed or failed status.
func (s *CallService) Initiate(_ context.Context, conn contract.Connection, cmd domain.InitiateCallCommand) (contract.Reply, error) {
	at := s.now()
	caller := domain.CallRecord{
		ID:         domain.CallID(uuid.NewString()),
		AttemptID:  domain.AttemptID(uuid.NewString()),
		CallerID:   cmd.From,
		ReceiverID: cmd.To,
		RoomID:     cmd.RoomID,
		Type:       cmd.CallType,
		Status:     domain.CallInitiated,
		Direction:  domain.Outgoing,
		StartTime:  at,
	}
	observability.SignalsRelayed.WithLabelValues(domain.SignalKind(cmd.Signal)).Inc()

	receiverConns := s.registry.FindByUser(cmd.To)
	if len(receiverConns) == 0 {
		caller.Transition(domain.CallMissed, at)
		if err := s.calls.Create(caller); err != nil {
			return contract.Reply{}, err
		}
		observability.CallTransitions.WithLabelValues(string(domain.CallMissed)).Inc()
		s.log.Info("Call receiver offline", "call_id", caller.ID, "user_id", cmd.To, "room_id", cmd.RoomID)
		s.summarize(caller, domain.CallSummary(domain.CallMissed, caller.Type, 0))
		s.userOffline(conn, caller)
		return stateReply(caller), nil
	}

	receiver := caller
	receiver.ID = domain.CallID(uuid.NewString())
	receiver.Status = domain.CallRinging
	receiver.Direction = domain.Incoming
	if err := s.calls.Create(caller, receiver); err != nil {
		return contract.Reply{}, err
	}

	incoming := event.New(event.CallIncoming, event.IncomingCall{
		From:   cmd.From,
		Signal: cmd.Signal,
		Type:   cmd.CallType,
		RoomID: cmd.RoomID,
		CallID: receiver.ID,
	})
	delivered := 0
	for _, c := range receiverConns {
		if s.broadcaster.ToConnection(c, incoming) == nil {
			delivered++
		}
	}

	next := domain.CallRinging
	if delivered == 0 {
		next = domain.CallFailed
	}
	views, changed, err := s.calls.MutateAttempt(caller.ID, func(c *domain.CallRecord) bool {
		return c.Transition(next, at)
	})
	if err != nil {
		return contract.Reply{}, err
	}
	current := callerView(views, caller)
	if changed {
		observability.CallTransitions.WithLabelValues(string(next)).Inc()
	}
	if next == domain.CallFailed {
		s.log.Warn("Call offer not delivered to any connection", "call_id", caller.ID, "user_id", cmd.To)
		s.userOffline(conn, current)
		return stateReply(current), nil
	}
	_ = s.broadcaster.ToConnection(conn, event.New(event.CallInitiated, event.CallState{
		CallID: current.ID,
		RoomID: current.RoomID,
		Status: current.Status,
	}))
	return stateReply(current), nil
}

// Accept moves the attempt to accepted and forwards the answer to the caller.
func (s *CallService) Accept(_ context.Context, _ contract.Connection, cmd domain.AcceptCallCommand) (contract.Reply, error) {
	at := s.now()
	views, changed, err := s.mutate(cmd.CallID, cmd.RoomID, callerIs(cmd.To), func(c *domain.CallRecord) bool {
		return c.Transition(domain.CallAccepted, at)
	})
	if err != nil {
		return contract.Reply{}, err
	}
	current := callerView(views, domain.CallRecord{})
	if changed {
		observability.CallTransitions.WithLabelValues(string(domain.CallAccepted)).Inc()
		observability.SignalsRelayed.WithLabelValues(domain.SignalKind(cmd.Signal)).Inc()
		s.broadcaster.ToUser(current.CallerID, event.New(event.CallAccepted, event.CallAnswer{
			Signal: cmd.Signal,
			RoomID: current.RoomID,
			CallID: current.ID,
		}))
	}
	return stateReply(current), nil
}

// Reject is sent by the receiver, the caller is notified.
func (s *CallService) Reject(_ context.Context, _ contract.Connection, cmd domain.CallControlCommand) (contract.Reply, error) {
	at := s.now()
	views, changed, err := s.mutate(cmd.CallID, cmd.RoomID, callerIs(cmd.To), func(c *domain.CallRecord) bool {
		return c.Transition(domain.CallRejected, at)
	})
	if err != nil {
		return contract.Reply{}, err
	}
	current := callerView(views, domain.CallRecord{})
	if changed {
		observability.CallTransitions.WithLabelValues(string(domain.CallRejected)).Inc()
		s.summarize(current, domain.CallSummary(domain.CallRejected, current.Type, 0))
		s.broadcaster.ToUser(current.CallerID, event.New(event.CallRejected, event.CallState{
			CallID: current.ID,
			RoomID: current.RoomID,
			Status: current.Status,
		}))
	}
	return stateReply(current), nil
}

// Cancel withdraws an attempt not accepted yet. An accepted call is ended,
// not cancelled, so the mutation leaves it untouched.
func (s *CallService) Cancel(_ context.Context, conn contract.Connection, cmd domain.CallControlCommand) (contract.Reply, error) {
	at := s.now()
	requester := s.requester(conn, cmd.From)
	views, changed, err := s.mutate(cmd.CallID, cmd.RoomID, involves(requester), func(c *domain.CallRecord) bool {
		if c.Status == domain.CallAccepted {
			return false
		}
		return c.Transition(domain.CallMissed, at)
	})
	if err != nil {
		return contract.Reply{}, err
	}
	current := callerView(views, domain.CallRecord{})
	if changed {
		observability.CallTransitions.WithLabelValues(string(domain.CallMissed)).Inc()
		s.summarize(current, domain.CancelSummary(current.Type))
		s.broadcaster.ToUser(s.other(current, requester, cmd.To), event.New(event.CallCancelled, event.CallState{
			CallID: current.ID,
			RoomID: current.RoomID,
			Status: current.Status,
		}))
	}
	return stateReply(current), nil
}

// End closes the call with its duration and notifies the other party and
// the room, each connection once.
func (s *CallService) End(_ context.Context, conn contract.Connection, cmd domain.EndCallCommand) (contract.Reply, error) {
	at := s.now()
	requester := s.requester(conn, cmd.From)
	views, changed, err := s.mutate(cmd.CallID, cmd.RoomID, involves(requester), func(c *domain.CallRecord) bool {
		return c.End(cmd.Duration, at)
	})
	if err != nil {
		return contract.Reply{}, err
	}
	current := callerView(views, domain.CallRecord{})
	if changed {
		observability.CallTransitions.WithLabelValues(string(domain.CallEnded)).Inc()
		s.summarize(current, domain.CallSummary(domain.CallEnded, current.Type, current.Duration))
		s.broadcaster.ToAudience(
			event.New(event.CallEnded, event.CallState{CallID: current.ID, RoomID: current.RoomID, Status: current.Status}),
			[]domain.RoomID{current.RoomID},
			[]domain.UserID{s.other(current, requester, cmd.To)},
		)
	}
	return stateReply(current), nil
}

// RelayIceCandidate forwards a candidate as is. An offline target drops it.
func (s *CallService) RelayIceCandidate(_ context.Context, conn contract.Connection, cmd domain.IceCandidateCommand) (contract.Reply, error) {
	from := s.requester(conn, "")
	sent := s.broadcaster.ToUser(cmd.To, event.New(event.CallIceCandidate, event.RelayedCandidate{
		From:      from,
		RoomID:    cmd.RoomID,
		Candidate: cmd.Candidate,
	}))
	if sent > 0 {
		observability.SignalsRelayed.WithLabelValues(domain.SignalCandidate).Inc()
	}
	return contract.Reply{ID: string(cmd.To), Result: sent > 0}, nil
}

func (s *CallService) History(_ context.Context, _ contract.Connection, cmd domain.GetCallHistoryCommand) (contract.Reply, error) {
	records, err := s.calls.HistoryOf(cmd.UserID, window(cmd.Limit, defaultUserHistory), cmd.Skip)
	if err != nil {
		return contract.Reply{}, err
	}
	entries := lo.Map(records, func(c domain.CallRecord, _ int) domain.CallHistoryEntry {
		return c.HistoryEntryFor(cmd.UserID)
	})
	return contract.Reply{ID: string(cmd.UserID), Result: CallHistory{Calls: entries}}, nil
}

func (s *CallService) RoomHistory(_ context.Context, conn contract.Connection, cmd domain.GetRoomCallHistoryCommand) (contract.Reply, error) {
	records, err := s.calls.HistoryOfRoom(cmd.RoomID, window(cmd.Limit, defaultRoomHistory), cmd.Skip)
	if err != nil {
		return contract.Reply{}, err
	}
	viewer := s.requester(conn, "")
	entries := lo.Map(records, func(c domain.CallRecord, _ int) domain.CallHistoryEntry {
		return c.HistoryEntryFor(viewer)
	})
	return contract.Reply{ID: string(cmd.RoomID), Result: CallHistory{Calls: entries}}, nil
}

// mutate applies the mutation to every view of the attempt of callID. Only
// an empty callID falls back to the newest open record of the room matching
// filter, an unknown one is ErrCallNotFound.
func (s *CallService) mutate(
	callID domain.CallID,
	roomID domain.RoomID,
	filter func(domain.CallRecord) bool,
	mutation contract.CallMutation,
) ([]domain.CallRecord, bool, error) {
	if callID != "" {
		return s.calls.MutateAttempt(callID, mutation)
	}
	open, err := s.calls.OpenInRoom(roomID, filter)
	if err != nil {
		return nil, false, err
	}
	if len(open) == 0 {
		return nil, false, errors.ErrCallNotFound
	}
	s.log.Debug("No call id, using the newest open call of the room", "call_id", open[0].ID, "room_id", roomID)
	return s.calls.MutateAttempt(open[0].ID, mutation)
}

// summarize persists the history message of an attempt in its room.
func (s *CallService) summarize(c domain.CallRecord, body string) {
	_, err := s.messages.PostSystem(c.RoomID, c.CallerID, body, &domain.CallInfo{
		CallID:     c.ID,
		CallType:   c.Type,
		CallStatus: c.Status,
		Duration:   c.Duration,
	})
	if err != nil {
		s.log.Error("Call history message not persisted", "call_id", c.ID, "room_id", c.RoomID, "error", err)
	}
}

func (s *CallService) userOffline(conn contract.Connection, c domain.CallRecord) {
	_ = s.broadcaster.ToConnection(conn, event.New(event.CallUserOffline, event.UserOffline{
		UserID: c.ReceiverID,
		RoomID: c.RoomID,
		CallID: c.ID,
	}))
}

// requester is the user bound to the connection, or fallback when the
// connection is not known.
func (s *CallService) requester(conn contract.Connection, fallback domain.UserID) domain.UserID {
	if entry, ok := s.registry.FindByConnection(conn.ID()); ok {
		return entry.UserID
	}
	return fallback
}

// other is the party to notify: the explicit target when given, the peer of
// the requester otherwise.
func (s *CallService) other(c domain.CallRecord, requester, to domain.UserID) domain.UserID {
	if to != "" && to != requester {
		return to
	}
	return c.Peer(requester)
}

func callerView(views []domain.CallRecord, fallback domain.CallRecord) domain.CallRecord {
	return lo.FindOrElse(views, fallback, func(c domain.CallRecord) bool {
		return c.Direction == domain.Outgoing
	})
}

func callerIs(userID domain.UserID) func(domain.CallRecord) bool {
	return func(c domain.CallRecord) bool {
		return userID == "" || c.CallerID == userID
	}
}

func involves(userID domain.UserID) func(domain.CallRecord) bool {
	return func(c domain.CallRecord) bool {
		return userID == "" || c.Involves(userID)
	}
}

func stateReply(c domain.CallRecord) contract.Reply {
	return contract.Reply{ID: string(c.ID), Result: event.CallState{CallID: c.ID, RoomID: c.RoomID, Status: c.Status}}
}

func window(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return min(limit, maxHistory)
}
