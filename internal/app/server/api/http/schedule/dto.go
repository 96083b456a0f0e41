package schedule

import "tau/internal/domain/schedule"

type ScheduleRequest struct {
	OwnerID      int64  `json:"usuario_id"`
	DisciplineID int64  `json:"disciplina_id" doc:"Remote discipline id"`
	StartTime    string `json:"hora_comeco" minLength:"1"`
	EndTime      string `json:"hora_fim" minLength:"1"`
	DayOfWeek    int    `json:"dia_semana" minimum:"0" maximum:"6" doc:"0 is Sunday"`
}

type ScheduleResponse struct {
	ID           int64  `json:"id"`
	OwnerID      int64  `json:"usuario_id"`
	DisciplineID int64  `json:"disciplina_id"`
	StartTime    string `json:"hora_comeco"`
	EndTime      string `json:"hora_fim"`
	DayOfWeek    int    `json:"dia_semana"`
}

type listInput struct {
	OwnerID int64 `query:"usuario_id"`
}

type listOutput struct {
	Body []ScheduleResponse
}

type createInput struct {
	Body ScheduleRequest
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"Schedule id"`
	Body ScheduleRequest
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"Schedule id"`
}

type output struct {
	Body ScheduleResponse
}

type deleteOutput struct{}

// model stores times the way the original server does, with seconds.
func (r ScheduleRequest) model(id int64) schedule.Response {
	return schedule.Response{
		ID:           id,
		OwnerID:      r.OwnerID,
		DisciplineID: r.DisciplineID,
		StartTime:    withSeconds(r.StartTime),
		EndTime:      withSeconds(r.EndTime),
		DayOfWeek:    r.DayOfWeek,
	}
}

func withSeconds(clock string) string {
	if len(clock) == len("15:04") {
		return clock + ":00"
	}
	return clock
}

func newResponse(sc schedule.Response) ScheduleResponse {
	return ScheduleResponse(sc)
}
