package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/autoocto/testrail-tools/internal/http"
	"github.com/autoocto/testrail-tools/pkg/testrail"
)

// GroupsClient implements testrail.GroupsClient. Every operation here may
// answer 403 for non-admin accounts; callers check testrail.IsForbidden.
type GroupsClient struct {
	httpClient *http.Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *http.Client) *GroupsClient {
	return &GroupsClient{
		httpClient: httpClient,
	}
}

// Get implements testrail.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, groupID int64) (*testrail.Group, error) {
	resp, err := c.httpClient.Get(ctx, "get_group/"+strconv.FormatInt(groupID, 10), nil)
	if err != nil {
		return nil, fmt.Errorf("getting group: %w", err)
	}

	var group testrail.Group

	err = json.Unmarshal(resp.Body, &group)
	if err != nil {
		return nil, fmt.Errorf("parsing group: %w", err)
	}

	return &group, nil
}

// List implements testrail.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, opts *testrail.ListOptions) (*testrail.GroupPage, error) {
	resp, err := c.httpClient.Get(ctx, "get_groups", opts.Values())
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	var page testrail.GroupPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing groups list: %w", err)
	}

	return &page, nil
}

// ListLink implements testrail.GroupsClient.ListLink.
func (c *GroupsClient) ListLink(ctx context.Context, link string) (*testrail.GroupPage, error) {
	resp, err := c.httpClient.FollowLink(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	var page testrail.GroupPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing groups list: %w", err)
	}

	return &page, nil
}

// Iterate implements testrail.GroupsClient.Iterate.
func (c *GroupsClient) Iterate(ctx context.Context, opts *testrail.ListOptions) *testrail.PageIterator[testrail.Group] {
	return testrail.NewPageIterator(ctx, func(ctx context.Context, link string) ([]testrail.Group, string, error) {
		var (
			page *testrail.GroupPage
			err  error
		)

		if link == "" {
			page, err = c.List(ctx, opts)
		} else {
			page, err = c.ListLink(ctx, link)
		}

		if err != nil {
			return nil, "", err
		}

		return page.Groups, page.NextLink(), nil
	})
}

// Create implements testrail.GroupsClient.Create.
func (c *GroupsClient) Create(ctx context.Context, request *testrail.GroupRequest) (*testrail.Group, error) {
	resp, err := c.httpClient.Post(ctx, "add_group", request)
	if err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	var group testrail.Group

	err = json.Unmarshal(resp.Body, &group)
	if err != nil {
		return nil, fmt.Errorf("parsing group response: %w", err)
	}

	return &group, nil
}

// Update implements testrail.GroupsClient.Update.
func (c *GroupsClient) Update(ctx context.Context, groupID int64, request *testrail.GroupRequest) (*testrail.Group, error) {
	resp, err := c.httpClient.Post(ctx, "update_group/"+strconv.FormatInt(groupID, 10), request)
	if err != nil {
		return nil, fmt.Errorf("updating group: %w", err)
	}

	var group testrail.Group

	err = json.Unmarshal(resp.Body, &group)
	if err != nil {
		return nil, fmt.Errorf("parsing group response: %w", err)
	}

	return &group, nil
}

// Delete implements testrail.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, groupID int64) error {
	_, err := c.httpClient.Post(ctx, "delete_group/"+strconv.FormatInt(groupID, 10), nil)
	if err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}

	return nil
}
