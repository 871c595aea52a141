package client

import (
	"context"

	"github.com/pkg/errors"
)

type GetStatsResponse struct {
	Stats Stats `json:"stats"`
}

func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var res GetStatsResponse

	if err := c.jsonRequest(ctx, "GET", "/stats", nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Stats, nil
}
