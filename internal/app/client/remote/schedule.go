package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"tau/internal/domain/schedule"
)

const schedulesPath = "/api/horarios"

func (c *Client) CreateSchedule(ctx context.Context, req schedule.Request) (schedule.Response, error) {
	var resp schedule.Response
	err := c.call(ctx, http.MethodPost, schedulesPath, req, &resp)
	return resp, err
}

func (c *Client) ListSchedules(ctx context.Context, ownerID int64) ([]schedule.Response, error) {
	q := url.Values{}
	q.Set("usuario_id", strconv.FormatInt(ownerID, 10))

	var resp []schedule.Response
	if err := c.call(ctx, http.MethodGet, schedulesPath+"?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) UpdateSchedule(ctx context.Context, remoteID int64, req schedule.Request) (schedule.Response, error) {
	var resp schedule.Response
	err := c.call(ctx, http.MethodPut, fmt.Sprintf("%s/%d", schedulesPath, remoteID), req, &resp)
	return resp, err
}

func (c *Client) DeleteSchedule(ctx context.Context, remoteID int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", schedulesPath, remoteID), nil, nil)
}
