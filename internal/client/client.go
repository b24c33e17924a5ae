// Package client implements the testrail.Client interface over the
// internal transport.
package client

import (
	"github.com/autoocto/testrail-tools/internal/http"
	"github.com/autoocto/testrail-tools/pkg/testrail"
)

// Client implements the testrail.Client interface.
type Client struct {
	httpClient *http.Client

	// Resource clients
	projects   testrail.ProjectsClient
	suites     testrail.SuitesClient
	sections   testrail.SectionsClient
	cases      testrail.CasesClient
	users      testrail.UsersClient
	groups     testrail.GroupsClient
	priorities testrail.PrioritiesClient
}

// New creates a new TestRail API client. Missing credentials fail here, not
// lazily on the first call.
func New(config *testrail.Config) (*Client, error) {
	if config == nil {
		return nil, testrail.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, testrail.ErrBaseURLRequired
	}

	if config.Email == "" {
		return nil, testrail.ErrEmailRequired
	}

	if config.APIKey == "" {
		return nil, testrail.ErrAPIKeyRequired
	}

	creds := http.Credentials{
		Email:  config.Email,
		APIKey: config.APIKey,
	}

	httpClient := http.NewClient(config.BaseURL, creds, createHTTPClientOptions(config)...)

	client := &Client{httpClient: httpClient}
	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *testrail.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.suites = NewSuitesClient(c.httpClient)
	c.sections = NewSectionsClient(c.httpClient)
	c.cases = NewCasesClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.groups = NewGroupsClient(c.httpClient)
	c.priorities = NewPrioritiesClient(c.httpClient)
}

// Projects implements testrail.Client.Projects.
func (c *Client) Projects() testrail.ProjectsClient {
	return c.projects
}

// Suites implements testrail.Client.Suites.
func (c *Client) Suites() testrail.SuitesClient {
	return c.suites
}

// Sections implements testrail.Client.Sections.
func (c *Client) Sections() testrail.SectionsClient {
	return c.sections
}

// Cases implements testrail.Client.Cases.
func (c *Client) Cases() testrail.CasesClient {
	return c.cases
}

// Users implements testrail.Client.Users.
func (c *Client) Users() testrail.UsersClient {
	return c.users
}

// Groups implements testrail.Client.Groups.
func (c *Client) Groups() testrail.GroupsClient {
	return c.groups
}

// Priorities implements testrail.Client.Priorities.
func (c *Client) Priorities() testrail.PrioritiesClient {
	return c.priorities
}

// loggerAdapter adapts testrail.Logger to http.Logger.
type loggerAdapter struct {
	logger testrail.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
