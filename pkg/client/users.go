package client

import (
	"context"
	"net/http"
)

// User mirrors the API's user resource.
type User struct {
	ID             uint64 `json:"id"`
	OrganizationID uint64 `json:"organization_id"`
	UserName       string `json:"user_name"`
	Role           string `json:"role"`
	Status         string `json:"status"`
}

// UserInput is the payload for creating or editing a user.
type UserInput struct {
	UserName string `json:"userName"`
	Role     string `json:"role"`
}

func (c *Client) ListUsers(ctx context.Context, orgID uint64) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, organizationPath(orgID)+"/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, orgID uint64, in UserInput) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, organizationPath(orgID)+"/users", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser edits a user of orgID. The server rejects users of other
// organizations with a 404.
func (c *Client) UpdateUser(ctx context.Context, orgID, userID uint64, in UserInput) error {
	return c.do(ctx, http.MethodPut, organizationPath(orgID)+userPath(userID), in, &messageResponse{})
}

// DeleteUser removes a user of orgID.
func (c *Client) DeleteUser(ctx context.Context, orgID, userID uint64) error {
	return c.do(ctx, http.MethodDelete, organizationPath(orgID)+userPath(userID), nil, &messageResponse{})
}
