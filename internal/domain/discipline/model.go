package discipline

import (
	"tau/internal/domain/sync"
)

// Fields is the user-editable part of a discipline.
type Fields struct {
	Name    string `json:"name"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
	Color   string `json:"color"`
}

// Discipline is a class subject cached on the device.
type Discipline struct {
	LocalID int64      `json:"local_id"`
	OwnerID int64      `json:"owner_id"`
	State   sync.State `json:"sync"`
	Fields
}

// RemoteID returns the server id, or 0 when the discipline never reached the server.
func (d Discipline) RemoteID() int64 {
	id, _ := d.State.RemoteID()
	return id
}

func (d Discipline) Synced() bool {
	return d.State.IsSynced()
}
