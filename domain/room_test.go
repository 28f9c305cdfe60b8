package domain

import (
	"chat-relay/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRoom_PrivateNeedsExactlyTwoParticipants(t *testing.T) {
	req := require.New(t)
	now := time.Now()

	// Given a private room with a duplicated participant
	_, err := NewRoom(RoomSpec{Name: "alice-bob", Type: RoomPrivate, Participants: []UserID{"alice", "alice"}}, now)

	// Then the duplicate is not counted twice
	req.ErrorIs(err, errors.ErrPrivateRoomParticipants)

	// When there are exactly two distinct participants
	room, err := NewRoom(RoomSpec{Name: "alice-bob", Type: RoomPrivate, Participants: []UserID{"alice", "bob"}}, now)
	req.NoError(err)
	req.ElementsMatch([]UserID{"alice", "bob"}, room.Participants)
	req.NotEmpty(room.ID)
	req.Empty(room.MessageIDs)
}

func TestNewRoom_GroupAddsCreatorAsAdmin(t *testing.T) {
	req := require.New(t)

	room, err := NewRoom(RoomSpec{
		ID:           "r1",
		Name:         "team",
		Type:         RoomGroup,
		Creator:      "carol",
		Participants: []UserID{"alice", "bob"},
		Admins:       []UserID{"alice", "mallory"},
	}, time.Now())

	req.NoError(err)
	req.Equal(RoomID("r1"), room.ID)
	req.ElementsMatch([]UserID{"alice", "bob", "carol"}, room.Participants)
	// Then admins are restricted to participants
	req.ElementsMatch([]UserID{"alice", "carol"}, room.Admins)
}

func TestRoom_AddParticipant(t *testing.T) {
	req := require.New(t)
	group, err := NewRoom(RoomSpec{Name: "g", Type: RoomGroup, Participants: []UserID{"alice"}}, time.Now())
	req.NoError(err)

	changed, err := group.AddParticipant("bob")
	req.NoError(err)
	req.True(changed)

	// Joining twice is a no-op
	changed, err = group.AddParticipant("bob")
	req.NoError(err)
	req.False(changed)
	req.Len(group.Participants, 2)

	private, err := NewRoom(RoomSpec{Name: "p", Type: RoomPrivate, Participants: []UserID{"alice", "bob"}}, time.Now())
	req.NoError(err)
	_, err = private.AddParticipant("carol")
	req.ErrorIs(err, errors.ErrPrivateRoomParticipants)
	req.Len(private.Participants, 2)
}

func TestRoom_MessageSequence(t *testing.T) {
	req := require.New(t)
	room := Room{}

	room.AppendMessage("m1")
	room.AppendMessage("m2")
	room.AppendMessage("m1")
	req.Equal([]MessageID{"m1", "m2"}, room.MessageIDs)
	req.Equal(MessageID("m2"), room.LastMessageID())

	room.RemoveMessage("m2")
	req.Equal(MessageID("m1"), room.LastMessageID())
	room.RemoveMessage("m1")
	req.Equal(MessageID(""), room.LastMessageID())
}

func TestMessage_MarkSeenIsSetIdempotent(t *testing.T) {
	req := require.New(t)
	msg := Message{ID: "m1", Sender: "alice"}

	req.True(msg.UnseenBy("bob"))
	req.True(msg.MarkSeen("bob", time.Now()))
	req.False(msg.MarkSeen("bob", time.Now()))
	req.Equal([]UserID{"bob"}, msg.SeenBy)
	req.False(msg.UnseenBy("bob"))
	req.False(msg.UnseenBy("alice"))
}

func TestMessage_TogglePin(t *testing.T) {
	req := require.New(t)
	msg := Message{}

	msg.TogglePin(time.Now())
	req.NotNil(msg.PinnedAt)
	msg.TogglePin(time.Now())
	req.Nil(msg.PinnedAt)
}

func TestMessage_MarkPlayedOnlyOnce(t *testing.T) {
	req := require.New(t)
	msg := Message{Voice: &Voice{Src: "s3://voice.ogg", Duration: 3}}

	req.True(msg.MarkPlayed("bob", time.Now()))
	req.False(msg.MarkPlayed("bob", time.Now()))
	req.Len(msg.Voice.PlayedBy, 1)

	// A text message cannot be played
	text := Message{}
	req.False(text.MarkPlayed("bob", time.Now()))
}

func TestProfileUpdate_ReportsPublicChanges(t *testing.T) {
	req := require.New(t)
	user := User{ID: "alice", Name: "Alice", Phone: "1"}
	phone := "2"
	name := "Alicia"

	req.False(ProfileUpdate{Phone: &phone}.Apply(&user))
	req.Equal("2", user.Phone)
	req.True(ProfileUpdate{Name: &name}.Apply(&user))
	req.Equal("Alicia", user.Name)
}

func TestUser_SetReadPosition(t *testing.T) {
	req := require.New(t)
	user := User{}

	user.SetReadPosition("r1", 10)
	user.SetReadPosition("r2", 5)
	user.SetReadPosition("r1", 42)

	req.Equal([]ReadPosition{{RoomID: "r1", ScrollPos: 42}, {RoomID: "r2", ScrollPos: 5}}, user.ReadPositions)
}
