// Package trclient provides the main entry point for creating TestRail API clients
package trclient

import (
	"strings"

	"github.com/autoocto/testrail-tools/internal/client"
	"github.com/autoocto/testrail-tools/pkg/testrail"
)

// New creates a new TestRail API client.
//
// The base URL is normalized (trailing slash trimmed, "https://" assumed
// when no scheme is present). Construction fails fast when the base URL,
// email, or API key is missing; nothing is deferred to the first call.
func New(config *testrail.Config) (testrail.Client, error) {
	if config == nil {
		return nil, testrail.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, testrail.ErrBaseURLRequired
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	return client.New(config)
}

// NewWithCredentials creates a new client from the three required values.
func NewWithCredentials(baseURL, email, apiKey string) (testrail.Client, error) {
	return New(&testrail.Config{
		BaseURL: baseURL,
		Email:   email,
		APIKey:  apiKey,
	})
}
