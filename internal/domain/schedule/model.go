package schedule

import (
	"strings"
	"time"

	"tau/internal/domain/sync"
)

// Fields is the user-editable part of a weekly class slot. DayOfWeek runs
// from 0 (Sunday) to 6 (Saturday); DisciplineID is a local discipline id.
type Fields struct {
	DayOfWeek    int    `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	DisciplineID int64  `json:"discipline_id"`
}

type Schedule struct {
	LocalID int64      `json:"local_id"`
	OwnerID int64      `json:"owner_id"`
	State   sync.State `json:"sync"`
	Fields
}

func (s Schedule) RemoteID() int64 {
	id, _ := s.State.RemoteID()
	return id
}

func (s Schedule) Synced() bool {
	return s.State.IsSynced()
}

// View is a schedule joined with its discipline, times rendered as HH:MM.
type View struct {
	Schedule
	DayName            string `json:"day_name"`
	Start              string `json:"start"`
	End                string `json:"end"`
	DisciplineRemoteID int64  `json:"discipline_remote_id"`
	DisciplineName     string `json:"discipline_name"`
	DisciplineColor    string `json:"discipline_color"`
}

// DayName returns the English weekday name for 0..6.
func DayName(day int) string {
	if day < 0 || day > 6 {
		return "Unknown"
	}
	return time.Weekday(day).String()
}

// ParseDay accepts a weekday number or an English name or prefix.
func ParseDay(s string) (int, bool) {
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return int(s[0] - '0'), true
	}
	if len(s) < 2 {
		return 0, false
	}
	for d := 0; d < 7; d++ {
		name := time.Weekday(d).String()
		if len(s) <= len(name) && strings.EqualFold(name[:len(s)], s) {
			return d, true
		}
	}
	return 0, false
}
