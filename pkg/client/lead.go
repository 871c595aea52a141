package client

import (
	"context"

	"github.com/pkg/errors"
)

type ListLeadsResponse struct {
	Leads []Lead `json:"leads"`
}

func (c *Client) ListLeads(ctx context.Context) ([]Lead, error) {
	var res ListLeadsResponse

	if err := c.jsonRequest(ctx, "GET", "/leads", nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Leads, nil
}

type CreateLeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

type CreateLeadResponse struct {
	Lead Lead `json:"lead"`
}

func (c *Client) CreateLead(ctx context.Context, req CreateLeadRequest) (*Lead, error) {
	var res CreateLeadResponse

	if err := c.jsonRequest(ctx, "POST", "/leads", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Lead, nil
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status"`
}

type UpdateLeadStatusResponse struct {
	Lead Lead `json:"lead"`
}

func (c *Client) UpdateLeadStatus(ctx context.Context, leadID string, status string) (*Lead, error) {
	var res UpdateLeadStatusResponse

	req := UpdateLeadStatusRequest{Status: status}

	if err := c.jsonRequest(ctx, "PUT", "/leads/"+leadID+"/status", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Lead, nil
}
