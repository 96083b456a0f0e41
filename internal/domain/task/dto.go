package task

type Request struct {
	OwnerID      int64  `json:"usuario_id"`
	Title        string `json:"titulo"`
	Description  string `json:"descricao"`
	Completed    bool   `json:"status"`
	DisciplineID int64  `json:"disciplina_id"`
	DueDate      string `json:"data_validade"`
}

type Response struct {
	ID           int64  `json:"id"`
	OwnerID      int64  `json:"usuario_id"`
	Title        string `json:"titulo"`
	Description  string `json:"descricao"`
	Completed    bool   `json:"status"`
	DisciplineID int64  `json:"disciplina_id"`
	DueDate      string `json:"data_validade"`
}

// NewRequest builds the wire form. disciplineRemoteID replaces the local
// discipline reference carried by f.
func NewRequest(ownerID int64, f Fields, disciplineRemoteID int64) Request {
	return Request{
		OwnerID:      ownerID,
		Title:        f.Title,
		Description:  f.Description,
		Completed:    f.Completed,
		DisciplineID: disciplineRemoteID,
		DueDate:      f.DueDate,
	}
}

// Fields converts the response, pointing it at the given local discipline.
func (r Response) Fields(localDisciplineID int64) Fields {
	return Fields{
		Title:        r.Title,
		Description:  r.Description,
		Completed:    r.Completed,
		DueDate:      r.DueDate,
		DisciplineID: localDisciplineID,
	}
}
