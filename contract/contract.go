//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Connection is one live client socket. Send never blocks: a full or closed
// connection rejects the event.
type Connection interface {
	ID() domain.ConnectionID
	Send(e event.Outbound) error
	Close() error
}

// Registration is the outcome of IRegistry.Register. Replaced is set when the
// connection was bound to another user, ReplacedLast when it was the last
// connection of that user.
type Registration struct {
	FirstForUser bool
	Replaced     *domain.PresenceEntry
	ReplacedLast bool
}

type IRegistry interface {
	Register(userID domain.UserID, conn Connection) Registration
	Remove(connID domain.ConnectionID) (entry domain.PresenceEntry, lastForUser bool, ok bool)
	FindByUser(userID domain.UserID) []Connection
	FindByConnection(connID domain.ConnectionID) (domain.PresenceEntry, bool)
	Join(roomID domain.RoomID, connID domain.ConnectionID)
	Leave(roomID domain.RoomID, connID domain.ConnectionID)
	DropGroup(roomID domain.RoomID)
	GroupConnections(roomID domain.RoomID) []Connection
	SubscribedConnections() []Connection
	Snapshot() []domain.PresenceEntry
	Counts() (connections, users int)
}

type ITypingSet interface {
	Start(roomID domain.RoomID, userID domain.UserID) bool
	Stop(roomID domain.RoomID, userID domain.UserID) bool
	ClearUser(userID domain.UserID) []domain.RoomID
}

type IUserRepository interface {
	Get(userID domain.UserID) (domain.User, error)
	GetMany(userIDs []domain.UserID) ([]domain.User, error)
	Save(user domain.User) error
	SetStatus(userID domain.UserID, status domain.UserStatus) error
	SetReadPosition(userID domain.UserID, roomID domain.RoomID, scrollPos float64) (domain.User, error)
	UpdateProfile(userID domain.UserID, update domain.ProfileUpdate) (domain.User, bool, error)
}

type IRoomRepository interface {
	Get(roomID domain.RoomID) (domain.Room, error)
	GetByName(name string) (domain.Room, error)
	Create(room domain.Room, first *domain.Message) error
	AddParticipant(roomID domain.RoomID, userID domain.UserID) (domain.Room, bool, error)
	Update(roomID domain.RoomID, update domain.RoomUpdate, at time.Time) (domain.Room, error)
	Delete(roomID domain.RoomID) error
	RoomsOf(userID domain.UserID) ([]domain.Room, error)
}

// MessageMutation changes one message inside a transaction and reports
// whether something changed.
type MessageMutation func(m *domain.Message) (bool, error)

type IMessageRepository interface {
	Get(messageID domain.MessageID) (domain.Message, error)
	GetByTempID(tempID string) (domain.Message, bool, error)
	Post(msg domain.Message) (domain.Message, bool, error)
	Mutate(messageID domain.MessageID, mutation MessageMutation) (domain.Message, bool, error)
	Delete(messageID domain.MessageID) (domain.Room, error)
	List(roomID domain.RoomID, viewer domain.UserID, cursor string, limit int) ([]domain.Message, string, error)
	CountUnseen(roomID domain.RoomID, viewer domain.UserID) (int, error)
}

// CallMutation is applied to every view of an attempt in one transaction.
type CallMutation func(c *domain.CallRecord) bool

type ICallRepository interface {
	Create(calls ...domain.CallRecord) error
	Get(callID domain.CallID) (domain.CallRecord, error)
	MutateAttempt(callID domain.CallID, mutation CallMutation) ([]domain.CallRecord, bool, error)
	OpenInRoom(roomID domain.RoomID, filter func(domain.CallRecord) bool) ([]domain.CallRecord, error)
	HistoryOf(userID domain.UserID, limit, skip int) ([]domain.CallRecord, error)
	HistoryOfRoom(roomID domain.RoomID, limit, skip int) ([]domain.CallRecord, error)
}

// Request is one inbound envelope read from a connection, queued for the event loop.
type Request struct {
	Conn    Connection
	Inbound event.Inbound
}

// Reply is what a successful handler acknowledges with.
type Reply struct {
	ID     string
	Result any
}

// IHandler processes one request to completion, acknowledgment included.
type IHandler interface {
	Handle(ctx context.Context, req Request)
}

// ISubmitter queues a request for the event loop. It blocks while the queue
// is full, until ctx is done.
type ISubmitter interface {
	Submit(ctx context.Context, req Request) error
}

// Authenticated is implemented by connections opened with a valid token.
type Authenticated interface {
	AuthenticatedUser() (domain.UserID, bool)
}

type IModerator interface {
	Censor(original string) (string, []string)
}
