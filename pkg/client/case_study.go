package client

import (
	"context"

	"github.com/pkg/errors"
)

type ListCaseStudiesResponse struct {
	CaseStudies []CaseStudy `json:"cases"`
}

func (c *Client) ListCaseStudies(ctx context.Context) ([]CaseStudy, error) {
	var res ListCaseStudiesResponse

	if err := c.jsonRequest(ctx, "GET", "/cases", nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.CaseStudies, nil
}

type CreateCaseStudyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

type CreateCaseStudyResponse struct {
	CaseStudy CaseStudy `json:"case"`
}

func (c *Client) CreateCaseStudy(ctx context.Context, req CreateCaseStudyRequest) (*CaseStudy, error) {
	var res CreateCaseStudyResponse

	if err := c.jsonRequest(ctx, "POST", "/cases", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.CaseStudy, nil
}
