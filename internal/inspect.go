package internal

import (
	"chat-relay/domain"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mama165/sdk-go/database"
)

// Row is one badger entry rendered for humans.
type Row struct {
	Key    string
	Type   string
	Detail string
}

// Describe renders a stored entry. Index keys carry no value and are only
// tagged with their namespace.
func Describe(key string, val []byte) Row {
	namespace, _, _ := strings.Cut(key, ":")
	row := Row{Key: key, Type: strings.ToUpper(namespace), Detail: fmt.Sprintf("Size: %d bytes", len(val))}

	switch namespace {
	case "user":
		var u domain.User
		if json.Unmarshal(val, &u) == nil {
			row.Detail = fmt.Sprintf("%s (@%s) %s", u.Name, u.Username, u.Status)
		}
	case "room":
		var r domain.Room
		if json.Unmarshal(val, &r) == nil {
			row.Detail = fmt.Sprintf("%s %s, %d participants, %d messages", r.Type, r.Name, len(r.Participants), len(r.MessageIDs))
		}
	case "msg":
		var m domain.Message
		if json.Unmarshal(val, &m) == nil {
			row.Detail = fmt.Sprintf("%s in %s: %s", m.Sender, m.RoomID, m.Body)
		}
	case "call":
		var c domain.CallRecord
		if json.Unmarshal(val, &c) == nil {
			row.Detail = fmt.Sprintf("%s %s %s -> %s (%ds)", c.Type, c.Status, c.CallerID, c.ReceiverID, c.Duration)
		}
	case "tempid", "roomname":
		row.Detail = "-> " + string(val)
	default:
		row.Type = "INDEX"
		row.Detail = namespace
	}
	return row
}

// InspectMapper plugs Describe into the badger debug server.
func InspectMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	described := Describe(key, val)
	row.Type = described.Type
	row.Detail = described.Detail
	return row
}
