package internal

import (
	"chat-relay/domain"
	"fmt"
	"strings"
	"time"

	"github.com/pion/webrtc/v4"
	"github.com/samber/lo"
)

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=8080"`
	GrpcPort             int           `env:"GRPC_PORT,default=8090"`
	DebugPort            int           `env:"DEBUG_PORT,default=8081"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	EventBufferSize      int           `env:"EVENT_BUFFER_SIZE,default=1024"`
	WriteTimeout         time.Duration `env:"WRITE_TIMEOUT,default=10s"`
	PongWait             time.Duration `env:"PONG_WAIT,default=60s"`
	MaxMessageSize       int64         `env:"MAX_MESSAGE_SIZE,default=65536"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=15s"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	AuthSecret           string        `env:"AUTH_SECRET"`
	AuthRequired         bool          `env:"AUTH_REQUIRED,default=false"`
	AllowedOrigins       string        `env:"ALLOWED_ORIGINS,default=*"`
	IceServers           string        `env:"ICE_SERVERS,default=stun:stun.l.google.com:19302"`
	ModerationEnabled    bool          `env:"MODERATION_ENABLED,default=false"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	DeliveryLedgerSize   int           `env:"DELIVERY_LEDGER_SIZE,default=10000"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// Origins splits ALLOWED_ORIGINS, an empty list accepts every origin.
func (c Config) Origins() []string {
	return splitList(c.AllowedOrigins)
}

// ICEServers validates ICE_SERVERS before handing it to clients.
func (c Config) ICEServers() ([]webrtc.ICEServer, error) {
	servers := domain.ParseICEServers(c.IceServers)
	for _, server := range servers {
		url := server.URLs[0]
		if !lo.SomeBy([]string{"stun:", "stuns:", "turn:", "turns:"}, func(scheme string) bool {
			return strings.HasPrefix(url, scheme)
		}) {
			return nil, fmt.Errorf("ICE_SERVERS entry %q must use a stun or turn scheme", url)
		}
	}
	return servers, nil
}

func splitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}
