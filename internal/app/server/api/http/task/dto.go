package task

import "tau/internal/domain/task"

type TaskRequest struct {
	OwnerID      int64  `json:"usuario_id"`
	Title        string `json:"titulo" minLength:"1"`
	Description  string `json:"descricao,omitempty"`
	Completed    bool   `json:"status,omitempty" doc:"Whether the task is done"`
	DisciplineID int64  `json:"disciplina_id" doc:"Remote discipline id"`
	DueDate      string `json:"data_validade,omitempty" doc:"Due date, 2006-01-02T15:04:05"`
}

type TaskResponse struct {
	ID           int64  `json:"id"`
	OwnerID      int64  `json:"usuario_id"`
	Title        string `json:"titulo"`
	Description  string `json:"descricao"`
	Completed    bool   `json:"status"`
	DisciplineID int64  `json:"disciplina_id"`
	DueDate      string `json:"data_validade"`
}

type listInput struct {
	OwnerID      int64  `query:"usuario_id"`
	DisciplineID int64  `query:"disciplina_id"`
	Status       string `query:"status" doc:"Filter by completion"`
	From         string `query:"data_inicio" doc:"Earliest due date"`
	To           string `query:"data_fim" doc:"Latest due date"`
}

type listOutput struct {
	Body []TaskResponse
}

type createInput struct {
	Body TaskRequest
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"Task id"`
	Body TaskRequest
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"Task id"`
}

type output struct {
	Body TaskResponse
}

type deleteOutput struct{}

func (r TaskRequest) model(id int64) task.Response {
	return task.Response{
		ID:           id,
		OwnerID:      r.OwnerID,
		Title:        r.Title,
		Description:  r.Description,
		Completed:    r.Completed,
		DisciplineID: r.DisciplineID,
		DueDate:      r.DueDate,
	}
}

func newResponse(t task.Response) TaskResponse {
	return TaskResponse(t)
}
