package domain

import (
	"encoding/json"
	"strings"

	"github.com/pion/webrtc/v4"
	"github.com/samber/lo"
)

// Signal is the opaque WebRTC payload a peer hands to the other one.
// The coordinator relays it untouched, it only peeks at its kind for logs.
type Signal = json.RawMessage

// ICECandidate is relayed as-is between the two peers.
type ICECandidate = webrtc.ICECandidateInit

const (
	SignalCandidate = "candidate"
	SignalUnknown   = "unknown"
)

// SignalKind returns "offer", "answer", "pranswer", "rollback", "candidate"
// or "unknown" for the given raw signal.
func SignalKind(raw Signal) string {
	if len(raw) == 0 {
		return SignalUnknown
	}
	var sd webrtc.SessionDescription
	if err := json.Unmarshal(raw, &sd); err == nil && sd.Type != 0 {
		return sd.Type.String()
	}
	var candidate struct {
		Candidate *webrtc.ICECandidateInit `json:"candidate"`
	}
	if err := json.Unmarshal(raw, &candidate); err == nil && candidate.Candidate != nil {
		return SignalCandidate
	}
	return SignalUnknown
}

// ParseICEServers turns "stun:a:3478,turn:b:3478|user|secret" into the list
// handed to clients on subscribe. Blank entries are skipped.
func ParseICEServers(raw string) []webrtc.ICEServer {
	entries := lo.FilterMap(strings.Split(raw, ","), func(item string, _ int) (string, bool) {
		entry := strings.TrimSpace(item)
		return entry, entry != ""
	})
	return lo.Map(entries, func(entry string, _ int) webrtc.ICEServer {
		parts := strings.SplitN(entry, "|", 3)
		server := webrtc.ICEServer{URLs: []string{parts[0]}}
		if len(parts) == 3 {
			server.Username = parts[1]
			server.Credential = parts[2]
		}
		return server
	})
}
