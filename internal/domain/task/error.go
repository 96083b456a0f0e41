package task

import "errors"

var (
	ErrNotFound = errors.New("task not found")
	// ErrDisciplineNotSynced rejects a create whose discipline has no remote id.
	ErrDisciplineNotSynced = errors.New("discipline not synced")
	ErrNoID                = errors.New("server returned no task id")
)
