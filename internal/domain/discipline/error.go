package discipline

import "errors"

var (
	ErrNotFound = errors.New("discipline not found")
	ErrNoID     = errors.New("server returned no discipline id")
)
