package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/autoocto/testrail-tools/internal/http"
	"github.com/autoocto/testrail-tools/pkg/testrail"
)

// SectionsClient implements testrail.SectionsClient.
type SectionsClient struct {
	httpClient *http.Client
}

// NewSectionsClient creates a new sections client.
func NewSectionsClient(httpClient *http.Client) *SectionsClient {
	return &SectionsClient{
		httpClient: httpClient,
	}
}

// Get implements testrail.SectionsClient.Get.
func (c *SectionsClient) Get(ctx context.Context, sectionID int64) (*testrail.Section, error) {
	resp, err := c.httpClient.Get(ctx, "get_section/"+strconv.FormatInt(sectionID, 10), nil)
	if err != nil {
		return nil, fmt.Errorf("getting section: %w", err)
	}

	var section testrail.Section

	err = json.Unmarshal(resp.Body, &section)
	if err != nil {
		return nil, fmt.Errorf("parsing section: %w", err)
	}

	return &section, nil
}

// List implements testrail.SectionsClient.List.
func (c *SectionsClient) List(ctx context.Context, projectID int64, opts *testrail.SectionListOptions) (*testrail.SectionPage, error) {
	resp, err := c.httpClient.Get(ctx, "get_sections/"+strconv.FormatInt(projectID, 10), opts.Values())
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}

	var page testrail.SectionPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing sections list: %w", err)
	}

	return &page, nil
}

// ListLink implements testrail.SectionsClient.ListLink. The link may embed a
// suite_id filter the caller never passed; it travels to the server
// untouched.
func (c *SectionsClient) ListLink(ctx context.Context, link string) (*testrail.SectionPage, error) {
	resp, err := c.httpClient.FollowLink(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}

	var page testrail.SectionPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing sections list: %w", err)
	}

	return &page, nil
}

// Iterate implements testrail.SectionsClient.Iterate.
func (c *SectionsClient) Iterate(ctx context.Context, projectID int64, opts *testrail.SectionListOptions) *testrail.PageIterator[testrail.Section] {
	return testrail.NewPageIterator(ctx, func(ctx context.Context, link string) ([]testrail.Section, string, error) {
		var (
			page *testrail.SectionPage
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

		return page.Sections, page.NextLink(), nil
	})
}

// Create implements testrail.SectionsClient.Create.
func (c *SectionsClient) Create(ctx context.Context, projectID int64, request *testrail.SectionRequest) (*testrail.Section, error) {
	resp, err := c.httpClient.Post(ctx, "add_section/"+strconv.FormatInt(projectID, 10), request)
	if err != nil {
		return nil, fmt.Errorf("creating section: %w", err)
	}

	var section testrail.Section

	err = json.Unmarshal(resp.Body, &section)
	if err != nil {
		return nil, fmt.Errorf("parsing section response: %w", err)
	}

	return &section, nil
}

// Update implements testrail.SectionsClient.Update.
func (c *SectionsClient) Update(ctx context.Context, sectionID int64, request *testrail.SectionRequest) (*testrail.Section, error) {
	resp, err := c.httpClient.Post(ctx, "update_section/"+strconv.FormatInt(sectionID, 10), request)
	if err != nil {
		return nil, fmt.Errorf("updating section: %w", err)
	}

	var section testrail.Section

	err = json.Unmarshal(resp.Body, &section)
	if err != nil {
		return nil, fmt.Errorf("parsing section response: %w", err)
	}

	return &section, nil
}

// Delete implements testrail.SectionsClient.Delete.
func (c *SectionsClient) Delete(ctx context.Context, sectionID int64) error {
	_, err := c.httpClient.Post(ctx, "delete_section/"+strconv.FormatInt(sectionID, 10), nil)
	if err != nil {
		return fmt.Errorf("deleting section: %w", err)
	}

	return nil
}
