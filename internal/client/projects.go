package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/autoocto/testrail-tools/internal/http"
	"github.com/autoocto/testrail-tools/pkg/testrail"
)

// ProjectsClient implements testrail.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// Get implements testrail.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, projectID int64) (*testrail.Project, error) {
	resp, err := c.httpClient.Get(ctx, "get_project/"+strconv.FormatInt(projectID, 10), nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project testrail.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	return &project, nil
}

// List implements testrail.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, opts *testrail.ProjectListOptions) (*testrail.ProjectPage, error) {
	resp, err := c.httpClient.Get(ctx, "get_projects", opts.Values())
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var page testrail.ProjectPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing projects list: %w", err)
	}

	return &page, nil
}

// ListLink implements testrail.ProjectsClient.ListLink.
func (c *ProjectsClient) ListLink(ctx context.Context, link string) (*testrail.ProjectPage, error) {
	resp, err := c.httpClient.FollowLink(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var page testrail.ProjectPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing projects list: %w", err)
	}

	return &page, nil
}

// Iterate implements testrail.ProjectsClient.Iterate.
func (c *ProjectsClient) Iterate(ctx context.Context, opts *testrail.ProjectListOptions) *testrail.PageIterator[testrail.Project] {
	return testrail.NewPageIterator(ctx, func(ctx context.Context, link string) ([]testrail.Project, string, error) {
		page, err := c.fetchPage(ctx, link, opts)
		if err != nil {
			return nil, "", err
		}

		return page.Projects, page.NextLink(), nil
	})
}

func (c *ProjectsClient) fetchPage(ctx context.Context, link string, opts *testrail.ProjectListOptions) (*testrail.ProjectPage, error) {
	if link == "" {
		return c.List(ctx, opts)
	}

	return c.ListLink(ctx, link)
}

// Create implements testrail.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, request *testrail.ProjectRequest) (*testrail.Project, error) {
	resp, err := c.httpClient.Post(ctx, "add_project", request)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	var project testrail.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// Update implements testrail.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, projectID int64, request *testrail.ProjectRequest) (*testrail.Project, error) {
	resp, err := c.httpClient.Post(ctx, "update_project/"+strconv.FormatInt(projectID, 10), request)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	var project testrail.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// Delete implements testrail.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, projectID int64) error {
	_, err := c.httpClient.Post(ctx, "delete_project/"+strconv.FormatInt(projectID, 10), nil)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}
