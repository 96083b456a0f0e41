package discipline

// Request is the wire form sent on create and update.
type Request struct {
	OwnerID int64  `json:"usuario_id"`
	Name    string `json:"nome"`
	Teacher string `json:"professor"`
	Room    string `json:"sala"`
	Color   string `json:"cores"`
}

// Response is the wire form returned by the server.
type Response struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"usuario_id"`
	Name    string `json:"nome"`
	Teacher string `json:"professor"`
	Room    string `json:"sala"`
	Color   string `json:"cores"`
}

func NewRequest(ownerID int64, f Fields) Request {
	return Request{
		OwnerID: ownerID,
		Name:    f.Name,
		Teacher: f.Teacher,
		Room:    f.Room,
		Color:   f.Color,
	}
}

func (r Response) Fields() Fields {
	return Fields{
		Name:    r.Name,
		Teacher: r.Teacher,
		Room:    r.Room,
		Color:   r.Color,
	}
}
