package task

import (
	"time"

	"tau/internal/domain/sync"
)

// Fields is the user-editable part of a task. DisciplineID is a local
// discipline id.
type Fields struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Completed    bool   `json:"completed"`
	DueDate      string `json:"due_date"`
	DisciplineID int64  `json:"discipline_id"`
}

type Task struct {
	LocalID int64      `json:"local_id"`
	OwnerID int64      `json:"owner_id"`
	State   sync.State `json:"sync"`
	Fields
}

func (t Task) RemoteID() int64 {
	id, _ := t.State.RemoteID()
	return id
}

func (t Task) Synced() bool {
	return t.State.IsSynced()
}

// View is a task joined with its discipline for display.
type View struct {
	Task
	DisciplineRemoteID int64     `json:"discipline_remote_id"`
	DisciplineName     string    `json:"discipline_name"`
	DisciplineColor    string    `json:"discipline_color"`
	Due                time.Time `json:"due,omitempty"`
	HasDue             bool      `json:"has_due"`
}

// Filter narrows a remote task listing. Zero values mean no constraint.
// DisciplineID is a remote discipline id.
type Filter struct {
	OwnerID      int64
	DisciplineID int64
	Completed    *bool
	From         string
	To           string
}
