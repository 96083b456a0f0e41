// Package timefmt parses the loosely formatted date and clock strings the
// server hands out.
package timefmt

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

const (
	// DateLayout is the layout used when the client writes a due date.
	DateLayout = "2006-01-02T15:04:05"
	// ClockLayout is the display form of a schedule time.
	ClockLayout = "15:04"
)

// Tried in order, first match wins.
var dateLayouts = []string{
	"2006-01-02T15:04:05.000000",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000Z",
	time.RFC3339Nano,
	"2006-01-02",
}

var clockLayouts = []string{
	"15:04:05.000000",
	"15:04:05.000",
	"15:04:05",
	"2006-01-02T15:04:05.000000Z",
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05Z",
	"15:04",
}

// ParseDate parses a due date. The boolean is false when no layout matches.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeClock renders a schedule time as HH:MM. Unrecognized input is
// returned unchanged.
func NormalizeClock(s string) string {
	trimmed := strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(ClockLayout)
		}
	}
	return s
}

var natural = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// ParseInput accepts either a layout ParseDate understands or a natural
// phrase such as "next friday 10am", resolved relative to now.
func ParseInput(s string, now time.Time) (time.Time, bool) {
	if t, ok := ParseDate(s); ok {
		return t, true
	}
	r, err := natural.Parse(s, now)
	if err != nil || r == nil {
		return time.Time{}, false
	}
	return r.Time, true
}

// FormatDate renders t in the layout the client stores due dates in.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
