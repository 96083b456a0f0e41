package schedule

type Request struct {
	OwnerID      int64  `json:"usuario_id"`
	DisciplineID int64  `json:"disciplina_id"`
	StartTime    string `json:"hora_comeco"`
	EndTime      string `json:"hora_fim"`
	DayOfWeek    int    `json:"dia_semana"`
}

type Response struct {
	ID           int64  `json:"id"`
	OwnerID      int64  `json:"usuario_id"`
	DisciplineID int64  `json:"disciplina_id"`
	StartTime    string `json:"hora_comeco"`
	EndTime      string `json:"hora_fim"`
	DayOfWeek    int    `json:"dia_semana"`
}

func NewRequest(ownerID int64, f Fields, disciplineRemoteID int64) Request {
	return Request{
		OwnerID:      ownerID,
		DisciplineID: disciplineRemoteID,
		StartTime:    f.StartTime,
		EndTime:      f.EndTime,
		DayOfWeek:    f.DayOfWeek,
	}
}

func (r Response) Fields(localDisciplineID int64) Fields {
	return Fields{
		DayOfWeek:    r.DayOfWeek,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		DisciplineID: localDisciplineID,
	}
}
