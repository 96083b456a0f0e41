package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"tau/internal/domain/discipline"
)

const disciplinesPath = "/api/disciplinas"

func (c *Client) CreateDiscipline(ctx context.Context, req discipline.Request) (discipline.Response, error) {
	var resp discipline.Response
	err := c.call(ctx, http.MethodPost, disciplinesPath, req, &resp)
	return resp, err
}

func (c *Client) ListDisciplines(ctx context.Context, ownerID int64) ([]discipline.Response, error) {
	q := url.Values{}
	q.Set("usuario_id", strconv.FormatInt(ownerID, 10))

	var resp []discipline.Response
	if err := c.call(ctx, http.MethodGet, disciplinesPath+"?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) UpdateDiscipline(ctx context.Context, remoteID int64, req discipline.Request) (discipline.Response, error) {
	var resp discipline.Response
	err := c.call(ctx, http.MethodPut, fmt.Sprintf("%s/%d", disciplinesPath, remoteID), req, &resp)
	return resp, err
}

func (c *Client) DeleteDiscipline(ctx context.Context, remoteID int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", disciplinesPath, remoteID), nil, nil)
}
