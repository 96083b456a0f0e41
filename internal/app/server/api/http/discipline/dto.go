package discipline

import "tau/internal/domain/discipline"

type DisciplineRequest struct {
	OwnerID int64  `json:"usuario_id" doc:"Owner id"`
	Name    string `json:"nome" minLength:"1" doc:"Discipline name"`
	Teacher string `json:"professor,omitempty"`
	Room    string `json:"sala,omitempty"`
	Color   string `json:"cores,omitempty" doc:"Hex color or color name"`
}

type DisciplineResponse struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"usuario_id"`
	Name    string `json:"nome"`
	Teacher string `json:"professor"`
	Room    string `json:"sala"`
	Color   string `json:"cores"`
}

type listInput struct {
	OwnerID int64 `query:"usuario_id" doc:"Only disciplines of this user"`
}

type listOutput struct {
	Body []DisciplineResponse
}

type createInput struct {
	Body DisciplineRequest
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"Discipline id"`
	Body DisciplineRequest
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"Discipline id"`
}

type output struct {
	Body DisciplineResponse
}

type deleteOutput struct{}

func (r DisciplineRequest) model(id int64) discipline.Response {
	return discipline.Response{
		ID:      id,
		OwnerID: r.OwnerID,
		Name:    r.Name,
		Teacher: r.Teacher,
		Room:    r.Room,
		Color:   r.Color,
	}
}

func newResponse(d discipline.Response) DisciplineResponse {
	return DisciplineResponse(d)
}
