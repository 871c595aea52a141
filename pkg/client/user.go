package client

import (
	"context"

	"github.com/pkg/errors"
)

type ListUsersResponse struct {
	Users []User `json:"users"`
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var res ListUsersResponse

	if err := c.jsonRequest(ctx, "GET", "/users", nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Users, nil
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type CreateUserResponse struct {
	User User `json:"user"`
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var res CreateUserResponse

	if err := c.jsonRequest(ctx, "POST", "/users", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.User, nil
}
