package domain

import (
	"fmt"
	"strings"
)

// FormatDuration renders a call length the way history messages show it:
// "45 seconds", "1 minute", "2 minutes 5 seconds", "1 hour 3 minutes".
// Zero units are left out.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return plural(0, "second")
	}
	hours, minutes, rest := seconds/3600, seconds%3600/60, seconds%60
	var parts []string
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	if rest > 0 {
		parts = append(parts, plural(rest, "second"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// CallSummary builds the body of the history message synthesized for a call.
func CallSummary(status CallStatus, callType CallType, duration int) string {
	kind := strings.ToLower(string(callType))
	if kind == "" {
		kind = string(CallVoice)
	}
	switch status {
	case CallMissed:
		return fmt.Sprintf("Missed %s call", kind)
	case CallRejected:
		return fmt.Sprintf("Rejected %s call", kind)
	case CallEnded:
		return fmt.Sprintf("%s%s call - duration: %s", strings.ToUpper(kind[:1]), kind[1:], FormatDuration(duration))
	default:
		return fmt.Sprintf("%s%s call", strings.ToUpper(kind[:1]), kind[1:])
	}
}

// CancelSummary is used when the caller hangs up before an answer.
func CancelSummary(callType CallType) string {
	return fmt.Sprintf("Cancelled %s call", strings.ToLower(string(callType)))
}
