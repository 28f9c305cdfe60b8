package runtime

import (
	"chat-relay/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypingSet(t *testing.T) {
	req := require.New(t)
	typing := NewTypingSet()

	// A repeated start is a no-op
	req.True(typing.Start("r1", "alice"))
	req.False(typing.Start("r1", "alice"))
	req.True(typing.Start("r2", "alice"))
	req.True(typing.Start("r1", "bob"))

	req.True(typing.Stop("r1", "bob"))
	req.False(typing.Stop("r1", "bob"))

	// Clearing a user returns every room it was typing in
	req.ElementsMatch([]domain.RoomID{"r1", "r2"}, typing.ClearUser("alice"))
	req.Empty(typing.ClearUser("alice"))
}
