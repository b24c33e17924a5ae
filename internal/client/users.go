package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/autoocto/testrail-tools/internal/http"
	"github.com/autoocto/testrail-tools/pkg/testrail"
)

// UsersClient implements testrail.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// Get implements testrail.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID int64) (*testrail.User, error) {
	resp, err := c.httpClient.Get(ctx, "get_user/"+strconv.FormatInt(userID, 10), nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user testrail.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// GetByEmail implements testrail.UsersClient.GetByEmail.
func (c *UsersClient) GetByEmail(ctx context.Context, email string) (*testrail.User, error) {
	query := url.Values{}
	query.Set("email", email)

	resp, err := c.httpClient.Get(ctx, "get_user_by_email", query)
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	var user testrail.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// List implements testrail.UsersClient.List. The endpoint returns a bare
// array with no envelope and no continuation links, however many users
// exist.
func (c *UsersClient) List(ctx context.Context, opts *testrail.UserListOptions) ([]testrail.User, error) {
	resp, err := c.httpClient.Get(ctx, "get_users", opts.Values())
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var users []testrail.User

	err = json.Unmarshal(resp.Body, &users)
	if err != nil {
		return nil, fmt.Errorf("parsing users list: %w", err)
	}

	return users, nil
}
