package health

type Input struct{}

type Output struct {
	Body StatusResponse
}

// StatusResponse reports the stub state: whether failures are injected and
// how many rows each collection holds.
type StatusResponse struct {
	Status         string `json:"status" enum:"OK,FAILING" doc:"FAILING while every API call is forced to fail"`
	InjectedStatus int    `json:"injected_status,omitempty" doc:"HTTP status the API calls currently fail with"`
	Accounts       int    `json:"accounts" doc:"Registered users"`
	Disciplines    int    `json:"disciplines" doc:"Stored disciplines"`
	Tasks          int    `json:"tasks" doc:"Stored tasks"`
	Schedules      int    `json:"schedules" doc:"Stored schedules"`
}
