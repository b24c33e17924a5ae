package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/autoocto/testrail-tools/internal/http"
	"github.com/autoocto/testrail-tools/pkg/testrail"
)

// SuitesClient implements testrail.SuitesClient.
type SuitesClient struct {
	httpClient *http.Client
}

// NewSuitesClient creates a new suites client.
func NewSuitesClient(httpClient *http.Client) *SuitesClient {
	return &SuitesClient{
		httpClient: httpClient,
	}
}

// Get implements testrail.SuitesClient.Get.
func (c *SuitesClient) Get(ctx context.Context, suiteID int64) (*testrail.Suite, error) {
	resp, err := c.httpClient.Get(ctx, "get_suite/"+strconv.FormatInt(suiteID, 10), nil)
	if err != nil {
		return nil, fmt.Errorf("getting suite: %w", err)
	}

	var suite testrail.Suite

	err = json.Unmarshal(resp.Body, &suite)
	if err != nil {
		return nil, fmt.Errorf("parsing suite: %w", err)
	}

	return &suite, nil
}

// List implements testrail.SuitesClient.List.
func (c *SuitesClient) List(ctx context.Context, projectID int64, opts *testrail.ListOptions) (*testrail.SuitePage, error) {
	resp, err := c.httpClient.Get(ctx, "get_suites/"+strconv.FormatInt(projectID, 10), opts.Values())
	if err != nil {
		return nil, fmt.Errorf("listing suites: %w", err)
	}

	var page testrail.SuitePage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing suites list: %w", err)
	}

	return &page, nil
}

// ListLink implements testrail.SuitesClient.ListLink.
func (c *SuitesClient) ListLink(ctx context.Context, link string) (*testrail.SuitePage, error) {
	resp, err := c.httpClient.FollowLink(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("listing suites: %w", err)
	}

	var page testrail.SuitePage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing suites list: %w", err)
	}

	return &page, nil
}

// Iterate implements testrail.SuitesClient.Iterate.
func (c *SuitesClient) Iterate(ctx context.Context, projectID int64, opts *testrail.ListOptions) *testrail.PageIterator[testrail.Suite] {
	return testrail.NewPageIterator(ctx, func(ctx context.Context, link string) ([]testrail.Suite, string, error) {
		var (
			page *testrail.SuitePage
			err  error
		)

		if link == "" {
			page, err = c.List(ctx, projectID, opts)
		} else {
			page, err = c.ListLink(ctx, link)
		}

		if err != nil {
			return nil, "", err
		}

		return page.Suites, page.NextLink(), nil
	})
}

// Create implements testrail.SuitesClient.Create.
func (c *SuitesClient) Create(ctx context.Context, projectID int64, request *testrail.SuiteRequest) (*testrail.Suite, error) {
	resp, err := c.httpClient.Post(ctx, "add_suite/"+strconv.FormatInt(projectID, 10), request)
	if err != nil {
		return nil, fmt.Errorf("creating suite: %w", err)
	}

	var suite testrail.Suite

	err = json.Unmarshal(resp.Body, &suite)
	if err != nil {
		return nil, fmt.Errorf("parsing suite response: %w", err)
	}

	return &suite, nil
}

// Update implements testrail.SuitesClient.Update.
func (c *SuitesClient) Update(ctx context.Context, suiteID int64, request *testrail.SuiteRequest) (*testrail.Suite, error) {
	resp, err := c.httpClient.Post(ctx, "update_suite/"+strconv.FormatInt(suiteID, 10), request)
	if err != nil {
		return nil, fmt.Errorf("updating suite: %w", err)
	}

	var suite testrail.Suite

	err = json.Unmarshal(resp.Body, &suite)
	if err != nil {
		return nil, fmt.Errorf("parsing suite response: %w", err)
	}

	return &suite, nil
}

// Delete implements testrail.SuitesClient.Delete.
func (c *SuitesClient) Delete(ctx context.Context, suiteID int64) error {
	_, err := c.httpClient.Post(ctx, "delete_suite/"+strconv.FormatInt(suiteID, 10), nil)
	if err != nil {
		return fmt.Errorf("deleting suite: %w", err)
	}

	return nil
}
