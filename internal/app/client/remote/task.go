package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"tau/internal/domain/task"
)

const tasksPath = "/api/tarefas"

func (c *Client) CreateTask(ctx context.Context, req task.Request) (task.Response, error) {
	var resp task.Response
	err := c.call(ctx, http.MethodPost, tasksPath, req, &resp)
	return resp, err
}

func (c *Client) ListTasks(ctx context.Context, filter task.Filter) ([]task.Response, error) {
	var resp []task.Response
	if err := c.call(ctx, http.MethodGet, tasksPath+"?"+taskQuery(filter).Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) UpdateTask(ctx context.Context, remoteID int64, req task.Request) (task.Response, error) {
	var resp task.Response
	err := c.call(ctx, http.MethodPut, fmt.Sprintf("%s/%d", tasksPath, remoteID), req, &resp)
	return resp, err
}

func (c *Client) DeleteTask(ctx context.Context, remoteID int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", tasksPath, remoteID), nil, nil)
}

func taskQuery(f task.Filter) url.Values {
	q := url.Values{}
	q.Set("usuario_id", strconv.FormatInt(f.OwnerID, 10))
	if f.DisciplineID > 0 {
		q.Set("disciplina_id", strconv.FormatInt(f.DisciplineID, 10))
	}
	if f.Completed != nil {
		q.Set("status", strconv.FormatBool(*f.Completed))
	}
	if f.From != "" {
		q.Set("data_inicio", f.From)
	}
	if f.To != "" {
		q.Set("data_fim", f.To)
	}
	return q
}
