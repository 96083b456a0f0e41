package task

import (
	"fmt"
	"strconv"
	"time"

	"tau/internal/domain/task"
	"tau/internal/utils/timefmt"
)

// matcher builds the predicate for a task listing. A date bound given as a
// plain date covers that whole day.
func matcher(in *listInput) (func(task.Response) bool, error) {
	var completed *bool
	if in.Status != "" {
		v, err := strconv.ParseBool(in.Status)
		if err != nil {
			return nil, fmt.Errorf("status: %w", err)
		}
		completed = &v
	}

	from, hasFrom, err := bound(in.From, false)
	if err != nil {
		return nil, fmt.Errorf("data_inicio: %w", err)
	}
	to, hasTo, err := bound(in.To, true)
	if err != nil {
		return nil, fmt.Errorf("data_fim: %w", err)
	}

	return func(t task.Response) bool {
		if in.OwnerID > 0 && t.OwnerID != in.OwnerID {
			return false
		}
		if in.DisciplineID > 0 && t.DisciplineID != in.DisciplineID {
			return false
		}
		if completed != nil && t.Completed != *completed {
			return false
		}
		if !hasFrom && !hasTo {
			return true
		}
		due, ok := timefmt.ParseDate(t.DueDate)
		if !ok {
			return false
		}
		if hasFrom && due.Before(from) {
			return false
		}
		if hasTo && !due.Before(to) {
			return false
		}
		return true
	}, nil
}

// bound parses a filter date. Upper bounds are exclusive.
func bound(s string, upper bool) (time.Time, bool, error) {
	if s == "" {
		return time.Time{}, false, nil
	}
	t, ok := timefmt.ParseDate(s)
	if !ok {
		return time.Time{}, false, fmt.Errorf("unrecognized date %q", s)
	}
	if upper {
		if len(s) == len("2006-01-02") {
			return t.AddDate(0, 0, 1), true, nil
		}
		return t.Add(time.Nanosecond), true, nil
	}
	return t, true, nil
}
