package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/autoocto/testrail-tools/internal/http"
	"github.com/autoocto/testrail-tools/pkg/testrail"
)

// PrioritiesClient implements testrail.PrioritiesClient.
type PrioritiesClient struct {
	httpClient *http.Client
}

// NewPrioritiesClient creates a new priorities client.
func NewPrioritiesClient(httpClient *http.Client) *PrioritiesClient {
	return &PrioritiesClient{
		httpClient: httpClient,
	}
}

// List implements testrail.PrioritiesClient.List. The endpoint takes no
// parameters and returns a bare array with no envelope.
func (c *PrioritiesClient) List(ctx context.Context) ([]testrail.Priority, error) {
	resp, err := c.httpClient.Get(ctx, "get_priorities", nil)
	if err != nil {
		return nil, fmt.Errorf("listing priorities: %w", err)
	}

	var priorities []testrail.Priority

	err = json.Unmarshal(resp.Body, &priorities)
	if err != nil {
		return nil, fmt.Errorf("parsing priorities list: %w", err)
	}

	return priorities, nil
}
