package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/autoocto/testrail-tools/internal/http"
	"github.com/autoocto/testrail-tools/pkg/testrail"
)

// CasesClient implements testrail.CasesClient.
type CasesClient struct {
	httpClient *http.Client
}

// NewCasesClient creates a new cases client.
func NewCasesClient(httpClient *http.Client) *CasesClient {
	return &CasesClient{
		httpClient: httpClient,
	}
}

// Get implements testrail.CasesClient.Get.
func (c *CasesClient) Get(ctx context.Context, caseID int64) (*testrail.Case, error) {
	resp, err := c.httpClient.Get(ctx, "get_case/"+strconv.FormatInt(caseID, 10), nil)
	if err != nil {
		return nil, fmt.Errorf("getting case: %w", err)
	}

	var testCase testrail.Case

	err = json.Unmarshal(resp.Body, &testCase)
	if err != nil {
		return nil, fmt.Errorf("parsing case: %w", err)
	}

	return &testCase, nil
}

// List implements testrail.CasesClient.List.
func (c *CasesClient) List(ctx context.Context, projectID int64, opts *testrail.CaseListOptions) (*testrail.CasePage, error) {
	resp, err := c.httpClient.Get(ctx, "get_cases/"+strconv.FormatInt(projectID, 10), opts.Values())
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}

	var page testrail.CasePage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing cases list: %w", err)
	}

	return &page, nil
}

// ListLink implements testrail.CasesClient.ListLink.
func (c *CasesClient) ListLink(ctx context.Context, link string) (*testrail.CasePage, error) {
	resp, err := c.httpClient.FollowLink(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}

	var page testrail.CasePage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing cases list: %w", err)
	}

	return &page, nil
}

// Iterate implements testrail.CasesClient.Iterate.
func (c *CasesClient) Iterate(ctx context.Context, projectID int64, opts *testrail.CaseListOptions) *testrail.PageIterator[testrail.Case] {
	return testrail.NewPageIterator(ctx, func(ctx context.Context, link string) ([]testrail.Case, string, error) {
		var (
			page *testrail.CasePage
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

		return page.Cases, page.NextLink(), nil
	})
}

// Create implements testrail.CasesClient.Create. Cases are created under a
// section, not directly under a project.
func (c *CasesClient) Create(ctx context.Context, sectionID int64, request *testrail.CaseRequest) (*testrail.Case, error) {
	resp, err := c.httpClient.Post(ctx, "add_case/"+strconv.FormatInt(sectionID, 10), request)
	if err != nil {
		return nil, fmt.Errorf("creating case: %w", err)
	}

	var testCase testrail.Case

	err = json.Unmarshal(resp.Body, &testCase)
	if err != nil {
		return nil, fmt.Errorf("parsing case response: %w", err)
	}

	return &testCase, nil
}

// Update implements testrail.CasesClient.Update.
func (c *CasesClient) Update(ctx context.Context, caseID int64, request *testrail.CaseRequest) (*testrail.Case, error) {
	resp, err := c.httpClient.Post(ctx, "update_case/"+strconv.FormatInt(caseID, 10), request)
	if err != nil {
		return nil, fmt.Errorf("updating case: %w", err)
	}

	var testCase testrail.Case

	err = json.Unmarshal(resp.Body, &testCase)
	if err != nil {
		return nil, fmt.Errorf("parsing case response: %w", err)
	}

	return &testCase, nil
}

// Delete implements testrail.CasesClient.Delete. Whether deleting an
// already-deleted case succeeds or fails is the service's call; the answer
// is surfaced unchanged.
func (c *CasesClient) Delete(ctx context.Context, caseID int64) error {
	_, err := c.httpClient.Post(ctx, "delete_case/"+strconv.FormatInt(caseID, 10), nil)
	if err != nil {
		return fmt.Errorf("deleting case: %w", err)
	}

	return nil
}
