package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/nfrund/bcard/internal/domain"
)

var _ domain.UserAPI = (*Client)(nil)

func userPath(id string) string {
	return "/users/" + url.PathEscape(id)
}

// Login exchanges credentials for an access token (POST /users/login).
// The API answers with the bare token as the response body.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	_, body, err := c.call(ctx, "login", http.MethodPost, "/users/login", creds)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(body))
	var quoted string
	if err := json.Unmarshal([]byte(token), &quoted); err == nil {
		token = quoted
	}
	if token == "" {
		return "", fmt.Errorf("login: empty token in response")
	}
	return token, nil
}

// Register creates an account (POST /users). When the API reports 201 Created
// the new user is logged in with the same credentials and the token returned.
func (c *Client) Register(ctx context.Context, in domain.RegisterInput) (string, error) {
	status, _, err := c.call(ctx, "register", http.MethodPost, "/users", in)
	if err != nil {
		return "", err
	}
	if status != http.StatusCreated {
		return "", &Error{Operation: "register", StatusCode: status, Message: "account was not created"}
	}
	return c.Login(ctx, domain.Credentials{Email: in.Email, Password: in.Password})
}

// GetUser fetches one user (GET /users/:id).
func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := c.callJSON(ctx, "get user", http.MethodGet, userPath(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers fetches every user (GET /users). Admin only on the API side.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.callJSON(ctx, "list users", http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser replaces a user's profile fields (PUT /users/:id).
func (c *Client) UpdateUser(ctx context.Context, id string, in domain.ProfileInput) (*domain.User, error) {
	var user domain.User
	if err := c.callJSON(ctx, "update user", http.MethodPut, userPath(id), in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ToggleBusiness flips a user's business status (PATCH /users/:id).
func (c *Client) ToggleBusiness(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := c.callJSON(ctx, "toggle business", http.MethodPatch, userPath(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user (DELETE /users/:id).
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.callJSON(ctx, "delete user", http.MethodDelete, userPath(id), nil, nil)
}
