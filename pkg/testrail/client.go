package testrail

import (
	"context"
	"time"
)

// Client provides access to the TestRail API, one resource client per entity
// type. The client is a stateless pass-through: it holds no entities and
// performs no caching, so it is safe to share across goroutines.
type Client interface {
	Projects() ProjectsClient
	Suites() SuitesClient
	Sections() SectionsClient
	Cases() CasesClient
	Users() UsersClient
	Groups() GroupsClient
	Priorities() PrioritiesClient
}

// ProjectsClient manages projects.
type ProjectsClient interface {
	Get(ctx context.Context, projectID int64) (*Project, error)
	List(ctx context.Context, opts *ProjectListOptions) (*ProjectPage, error)
	ListLink(ctx context.Context, link string) (*ProjectPage, error)
	Iterate(ctx context.Context, opts *ProjectListOptions) *PageIterator[Project]
	Create(ctx context.Context, request *ProjectRequest) (*Project, error)
	Update(ctx context.Context, projectID int64, request *ProjectRequest) (*Project, error)
	Delete(ctx context.Context, projectID int64) error
}

// SuitesClient manages test suites within a project.
type SuitesClient interface {
	Get(ctx context.Context, suiteID int64) (*Suite, error)
	List(ctx context.Context, projectID int64, opts *ListOptions) (*SuitePage, error)
	ListLink(ctx context.Context, link string) (*SuitePage, error)
	Iterate(ctx context.Context, projectID int64, opts *ListOptions) *PageIterator[Suite]
	Create(ctx context.Context, projectID int64, request *SuiteRequest) (*Suite, error)
	Update(ctx context.Context, suiteID int64, request *SuiteRequest) (*Suite, error)
	Delete(ctx context.Context, suiteID int64) error
}

// SectionsClient manages sections within a suite.
type SectionsClient interface {
	Get(ctx context.Context, sectionID int64) (*Section, error)
	List(ctx context.Context, projectID int64, opts *SectionListOptions) (*SectionPage, error)
	ListLink(ctx context.Context, link string) (*SectionPage, error)
	Iterate(ctx context.Context, projectID int64, opts *SectionListOptions) *PageIterator[Section]
	Create(ctx context.Context, projectID int64, request *SectionRequest) (*Section, error)
	Update(ctx context.Context, sectionID int64, request *SectionRequest) (*Section, error)
	Delete(ctx context.Context, sectionID int64) error
}

// CasesClient manages test cases. New cases are created under a section.
type CasesClient interface {
	Get(ctx context.Context, caseID int64) (*Case, error)
	List(ctx context.Context, projectID int64, opts *CaseListOptions) (*CasePage, error)
	ListLink(ctx context.Context, link string) (*CasePage, error)
	Iterate(ctx context.Context, projectID int64, opts *CaseListOptions) *PageIterator[Case]
	Create(ctx context.Context, sectionID int64, request *CaseRequest) (*Case, error)
	Update(ctx context.Context, caseID int64, request *CaseRequest) (*Case, error)
	Delete(ctx context.Context, caseID int64) error
}

// UsersClient reads user accounts. The listing is not paginated and never
// carries continuation links.
type UsersClient interface {
	Get(ctx context.Context, userID int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, opts *UserListOptions) ([]User, error)
}

// GroupsClient manages user groups. Listing may answer 403 for non-admin
// accounts; callers decide whether that is fatal.
type GroupsClient interface {
	Get(ctx context.Context, groupID int64) (*Group, error)
	List(ctx context.Context, opts *ListOptions) (*GroupPage, error)
	ListLink(ctx context.Context, link string) (*GroupPage, error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Group]
	Create(ctx context.Context, request *GroupRequest) (*Group, error)
	Update(ctx context.Context, groupID int64, request *GroupRequest) (*Group, error)
	Delete(ctx context.Context, groupID int64) error
}

// PrioritiesClient reads case priorities. The listing is not paginated.
type PrioritiesClient interface {
	List(ctx context.Context) ([]Priority, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a testrail.Client.
//
// BaseURL, Email, and APIKey are required; construction fails fast when any
// is missing. Credentials are immutable for the lifetime of the client and
// the Basic-Auth header is computed fresh on every request.
//
// RetryMax defaults to 0: the service contract includes no retries, and
// concurrent callers can exceed its rate limits. Opting in via RetryMax is a
// local decision, not something the client does silently.
type Config struct {
	// BaseURL: instance URL (e.g., "https://example.testrail.io"). trclient.New
	// normalizes this value by trimming a trailing slash and adding "https://"
	// if no scheme is present.
	BaseURL string
	// Email: the account identifier for Basic auth.
	Email string
	// APIKey: the account's API key (or password) for Basic auth.
	APIKey string

	// Optional configurations
	// HTTPTimeout: overall per-request timeout. Zero relies on context
	// deadlines alone.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500, 429,
	// connection errors). Zero disables retrying.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
