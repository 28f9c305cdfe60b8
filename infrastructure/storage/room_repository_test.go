package storage

import (
	"chat-relay/domain"
	"chat-relay/errors"
	goerrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRoomRepository_PrivateRoomIsUniqueByName(t *testing.T) {
	req := require.New(t)
	repo := NewRoomRepository(SetupTestDB(t), testLogger())

	// Given a private room between alice and bob
	room := seedRoom(t, repo, domain.RoomPrivate, "alice:bob", "alice", "bob")

	// When the same private room is created again with another id
	again, err := domain.NewRoom(domain.RoomSpec{Name: "alice:bob", Type: domain.RoomPrivate, Participants: []domain.UserID{"alice", "bob"}}, time.Now())
	req.NoError(err)
	err = repo.Create(again, nil)

	// Then it is a conflict carrying the existing room
	req.ErrorIs(err, errors.ErrRoomAlreadyExists)
	req.ErrorIs(err, errors.ErrConflict)
	var conflict *ConflictError
	req.True(goerrors.As(err, &conflict))
	req.Equal(room.ID, conflict.Room.ID)

	byName, err := repo.GetByName("alice:bob")
	req.NoError(err)
	req.Equal(room.ID, byName.ID)
}

func TestRoomRepository_GroupIsUniqueByID(t *testing.T) {
	req := require.New(t)
	repo := NewRoomRepository(SetupTestDB(t), testLogger())

	first, err := domain.NewRoom(domain.RoomSpec{ID: "g1", Name: "team", Type: domain.RoomGroup, Participants: []domain.UserID{"alice"}}, time.Now())
	req.NoError(err)
	req.NoError(repo.Create(first, nil))

	// Two groups may share a name
	other, err := domain.NewRoom(domain.RoomSpec{Name: "team", Type: domain.RoomGroup, Participants: []domain.UserID{"bob"}}, time.Now())
	req.NoError(err)
	req.NoError(repo.Create(other, nil))

	// But not an id
	req.ErrorIs(repo.Create(first, nil), errors.ErrRoomAlreadyExists)
}

func TestRoomRepository_CreateWithFirstMessage(t *testing.T) {
	req := require.New(t)
	db := SetupTestDB(t)
	rooms := NewRoomRepository(db, testLogger())
	messages := NewMessageRepository(db, testLogger())

	room, err := domain.NewRoom(domain.RoomSpec{Name: "alice:bob", Type: domain.RoomPrivate, Participants: []domain.UserID{"alice", "bob"}}, time.Now())
	req.NoError(err)
	first := domain.Message{ID: "m1", TempID: "t1", Sender: "alice", RoomID: room.ID, Body: "hello", CreatedAt: time.Now()}

	req.NoError(rooms.Create(room, &first))

	stored, err := rooms.Get(room.ID)
	req.NoError(err)
	req.Equal([]domain.MessageID{"m1"}, stored.MessageIDs)
	msg, found, err := messages.GetByTempID("t1")
	req.NoError(err)
	req.True(found)
	req.Equal("hello", msg.Body)
}

func TestRoomRepository_MembershipIndex(t *testing.T) {
	req := require.New(t)
	repo := NewRoomRepository(SetupTestDB(t), testLogger())
	group := seedRoom(t, repo, domain.RoomGroup, "team", "alice")
	seedRoom(t, repo, domain.RoomPrivate, "alice:bob", "alice", "bob")

	rooms, err := repo.RoomsOf("alice")
	req.NoError(err)
	req.Len(rooms, 2)

	// When bob joins the group twice
	joined, changed, err := repo.AddParticipant(group.ID, "bob")
	req.NoError(err)
	req.True(changed)
	req.ElementsMatch([]domain.UserID{"alice", "bob"}, joined.Participants)
	_, changed, err = repo.AddParticipant(group.ID, "bob")
	req.NoError(err)
	req.False(changed)

	rooms, err = repo.RoomsOf("bob")
	req.NoError(err)
	req.Len(rooms, 2)

	_, _, err = repo.AddParticipant("missing", "bob")
	req.ErrorIs(err, errors.ErrRoomNotFound)
}

func TestRoomRepository_UpdateAndDelete(t *testing.T) {
	req := require.New(t)
	db := SetupTestDB(t)
	rooms := NewRoomRepository(db, testLogger())
	messages := NewMessageRepository(db, testLogger())
	room := seedRoom(t, rooms, domain.RoomGroup, "team", "alice", "bob")

	name := "new team"
	updated, err := rooms.Update(room.ID, domain.RoomUpdate{Name: &name}, time.Now())
	req.NoError(err)
	req.Equal(name, updated.Name)

	// Given a few messages in the room
	for i := 0; i < 3; i++ {
		_, created, err := messages.Post(domain.Message{
			ID:        domain.MessageID(uuid.NewString()),
			TempID:    uuid.NewString(),
			Sender:    "alice",
			RoomID:    room.ID,
			Body:      "hi",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Millisecond),
		})
		req.NoError(err)
		req.True(created)
	}

	// When the room is deleted
	req.NoError(rooms.Delete(room.ID))

	// Then the room, its index and its messages are gone
	_, err = rooms.Get(room.ID)
	req.ErrorIs(err, errors.ErrRoomNotFound)
	list, err := rooms.RoomsOf("alice")
	req.NoError(err)
	req.Empty(list)
	_, _, err = messages.List(room.ID, "alice", "", 10)
	req.ErrorIs(err, errors.ErrRoomNotFound)
	req.ErrorIs(rooms.Delete(room.ID), errors.ErrRoomNotFound)
}

func TestRoomRepository_IDsCannotHoldSeparator(t *testing.T) {
	req := require.New(t)
	db := SetupTestDB(t)
	rooms := NewRoomRepository(db, testLogger())
	calls := NewCallRepository(db)

	group, err := domain.NewRoom(domain.RoomSpec{ID: "a", Name: "a", Type: domain.RoomGroup, Participants: []domain.UserID{"alice"}}, time.Now())
	req.NoError(err)
	req.NoError(rooms.Create(group, nil))

	// When ids would extend the index prefix of another one
	nested, err := domain.NewRoom(domain.RoomSpec{ID: "a:b", Name: "a:b", Type: domain.RoomGroup, Participants: []domain.UserID{"alice"}}, time.Now())
	req.NoError(err)
	err = rooms.Create(nested, nil)

	// Then they are refused before anything is written
	req.ErrorIs(err, errors.ErrValidation)
	_, err = rooms.Get("a:b")
	req.ErrorIs(err, errors.ErrRoomNotFound)
	_, _, err = rooms.AddParticipant(group.ID, "alice:x")
	req.ErrorIs(err, errors.ErrValidation)
	callerView, receiverView := newAttempt("alice:x", "bob", group.ID, time.Now().UTC())
	req.ErrorIs(calls.Create(callerView, receiverView), errors.ErrValidation)

	// And the room that was accepted is intact
	stored, err := rooms.Get(group.ID)
	req.NoError(err)
	req.Equal([]domain.UserID{"alice"}, stored.Participants)
}

func TestRoomRepository_FirstMessageTempIDIsUnique(t *testing.T) {
	req := require.New(t)
	db := SetupTestDB(t)
	rooms := NewRoomRepository(db, testLogger())
	messages := NewMessageRepository(db, testLogger())
	chat := seedRoom(t, rooms, domain.RoomPrivate, "alice:bob", "alice", "bob")
	_, _, err := messages.Post(domain.Message{ID: "m1", TempID: "t1", Sender: "alice", RoomID: chat.ID, Body: "hi", CreatedAt: time.Now()})
	req.NoError(err)

	// When a room is created with a first message reusing that tempID
	group, err := domain.NewRoom(domain.RoomSpec{Name: "team", Type: domain.RoomGroup, Participants: []domain.UserID{"alice"}}, time.Now())
	req.NoError(err)
	first := domain.Message{ID: "m2", TempID: "t1", Sender: "alice", RoomID: group.ID, Body: "hello", CreatedAt: time.Now()}
	err = rooms.Create(group, &first)

	// Then it conflicts with the room already holding the message
	var conflict *ConflictError
	req.True(goerrors.As(err, &conflict))
	req.Equal(chat.ID, conflict.Room.ID)
	_, err = rooms.Get(group.ID)
	req.ErrorIs(err, errors.ErrRoomNotFound)
	msg, found, err := messages.GetByTempID("t1")
	req.NoError(err)
	req.True(found)
	req.Equal(domain.MessageID("m1"), msg.ID)

	// And once the message is deleted the tempID stays taken
	_, err = messages.Delete("m1")
	req.NoError(err)
	err = rooms.Create(group, &first)
	req.ErrorIs(err, errors.ErrTempIDTaken)
	req.ErrorIs(err, errors.ErrConflict)
}

func TestRoomRepository_RenamePrivateRoomMovesNameIndex(t *testing.T) {
	req := require.New(t)
	repo := NewRoomRepository(SetupTestDB(t), testLogger())
	chat := seedRoom(t, repo, domain.RoomPrivate, "alice:bob", "alice", "bob")
	other := seedRoom(t, repo, domain.RoomPrivate, "alice:carol", "alice", "carol")

	// When the first private room is renamed
	name := "renamed"
	_, err := repo.Update(chat.ID, domain.RoomUpdate{Name: &name}, time.Now())
	req.NoError(err)

	// Then only the new name resolves to it
	byName, err := repo.GetByName(name)
	req.NoError(err)
	req.Equal(chat.ID, byName.ID)
	_, err = repo.GetByName("alice:bob")
	req.ErrorIs(err, errors.ErrRoomNotFound)

	// And the new name is taken for creation and renames alike
	again, err := domain.NewRoom(domain.RoomSpec{Name: name, Type: domain.RoomPrivate, Participants: []domain.UserID{"carol", "dave"}}, time.Now())
	req.NoError(err)
	req.ErrorIs(repo.Create(again, nil), errors.ErrRoomAlreadyExists)
	_, err = repo.Update(other.ID, domain.RoomUpdate{Name: &name}, time.Now())
	var conflict *ConflictError
	req.True(goerrors.As(err, &conflict))
	req.Equal(chat.ID, conflict.Room.ID)
	stored, err := repo.GetByName("alice:carol")
	req.NoError(err)
	req.Equal("alice:carol", stored.Name)
}
