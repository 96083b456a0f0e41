package sync

import (
	"encoding/json"
	"strconv"
	"time"
)

// Kind is the synchronization status of a locally cached record.
type Kind int

const (
	// KindUnsynced records have never reached the server.
	KindUnsynced Kind = iota
	// KindPending records have a server counterpart but carry local edits.
	KindPending
	// KindSynced records match their server counterpart.
	KindSynced
)

func (k Kind) String() string {
	switch k {
	case KindUnsynced:
		return "unsynced"
	case KindPending:
		return "pending"
	case KindSynced:
		return "synced"
	default:
		return "unknown"
	}
}

// State couples the sync status with the server-assigned id.
// A synced record always has a remote id.
type State struct {
	kind     Kind
	remoteID int64
}

func Unsynced() State {
	return State{kind: KindUnsynced}
}

func Pending(remoteID int64) State {
	return State{kind: KindPending, remoteID: remoteID}
}

func Synced(remoteID int64) State {
	return State{kind: KindSynced, remoteID: remoteID}
}

// Restore rebuilds a State from its persisted columns.
// A row flagged synced without a remote id is read back as unsynced.
func Restore(remoteID *int64, synced bool) State {
	if remoteID == nil {
		return Unsynced()
	}
	if synced {
		return Synced(*remoteID)
	}
	return Pending(*remoteID)
}

func (s State) Kind() Kind {
	return s.kind
}

// RemoteID returns the server id and whether one has been assigned.
func (s State) RemoteID() (int64, bool) {
	if s.kind == KindUnsynced {
		return 0, false
	}
	return s.remoteID, true
}

func (s State) IsSynced() bool {
	return s.kind == KindSynced
}

// Edited returns the state of a record after a local modification.
func (s State) Edited() State {
	if s.kind == KindSynced {
		return Pending(s.remoteID)
	}
	return s
}

// Columns returns the persisted form of the state.
func (s State) Columns() (*int64, bool) {
	id, ok := s.RemoteID()
	if !ok {
		return nil, false
	}
	return &id, s.kind == KindSynced
}

func (s State) String() string {
	if id, ok := s.RemoteID(); ok {
		return s.kind.String() + "#" + strconv.FormatInt(id, 10)
	}
	return s.kind.String()
}

// MarshalJSON renders the state as {"status": ..., "remote_id": ...}.
func (s State) MarshalJSON() ([]byte, error) {
	out := struct {
		Status   string `json:"status"`
		RemoteID *int64 `json:"remote_id,omitempty"`
	}{Status: s.kind.String()}
	if id, ok := s.RemoteID(); ok {
		out.RemoteID = &id
	}
	return json.Marshal(out)
}

// PullStats describes one reconciliation of the local cache against the server.
type PullStats struct {
	Fetched  int `json:"fetched"`
	Updated  int `json:"updated"`
	Inserted int `json:"inserted"`
}

// PushStats describes one sweep of unsynced records towards the server.
type PushStats struct {
	Attempted int `json:"attempted"`
	Pushed    int `json:"pushed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// EntityResult groups pull and push statistics for one record type.
type EntityResult struct {
	Pull PullStats `json:"pull"`
	Push PushStats `json:"push"`
}

// Result is the outcome of a full synchronization run.
type Result struct {
	Disciplines EntityResult  `json:"disciplines"`
	Tasks       EntityResult  `json:"tasks"`
	Schedules   EntityResult  `json:"schedules"`
	Errors      []string      `json:"errors,omitempty"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
}

func (r *Result) Success() bool {
	return len(r.Errors) == 0
}

func (r *Result) AddError(err error) {
	if err != nil {
		r.Errors = append(r.Errors, err.Error())
	}
}
