package internal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", t.TempDir())

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.Equal(8080, config.Port)
	req.Equal(60*time.Second, config.PongWait)
	req.Equal(int64(65536), config.MaxMessageSize)
	req.Equal([]string{"*"}, config.Origins())
	servers, err := config.ICEServers()
	req.NoError(err)
	req.Len(servers, 1)
	req.Equal([]string{"stun:stun.l.google.com:19302"}, servers[0].URLs)
}

func TestConfig_ICEServers(t *testing.T) {
	req := require.New(t)
	config := Config{IceServers: "stun:stun.example:3478, turn:turn.example:3478|relay|s3cret,"}

	servers, err := config.ICEServers()

	req.NoError(err)
	req.Len(servers, 2)
	req.Empty(servers[0].Username)
	req.Equal("relay", servers[1].Username)
	req.Equal("s3cret", servers[1].Credential)

	_, err = Config{IceServers: "http://stun.example"}.ICEServers()
	req.Error(err)
}

func TestConfig_Origins(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"https://a.example", "https://b.example"},
		Config{AllowedOrigins: " https://a.example ,https://b.example"}.Origins())
	req.Empty(Config{}.Origins())
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)
	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("##")
	req.Error(err)
	_, err = CharacterRune("")
	req.Error(err)
}

func TestDescribe(t *testing.T) {
	req := require.New(t)
	user, _ := json.Marshal(map[string]any{"id": "alice", "name": "Alice", "username": "alice", "status": "online"})

	req.Equal(Row{Key: "user:alice", Type: "USER", Detail: "Alice (@alice) online"}, Describe("user:alice", user))
	req.Equal("-> m1", Describe("tempid:t1", []byte("m1")).Detail)
	req.Equal("INDEX", Describe("member:alice:r1", nil).Type)
}
