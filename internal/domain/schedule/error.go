package schedule

import "errors"

var (
	ErrNotFound = errors.New("schedule not found")
	ErrNoID     = errors.New("server returned no schedule id")
)
