package testrail

import (
	"net/url"
	"strconv"
)

// ListOptions carries the pagination parameters shared by all paginated
// listings. Nil fields are omitted from the query string entirely; a pointer
// to zero is still sent, so an explicit offset=0 reaches the service. All
// Values methods tolerate a nil receiver.
type ListOptions struct {
	Limit  *int
	Offset *int
}

// Values renders the options as query parameters.
func (o *ListOptions) Values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.Limit != nil {
		values.Set("limit", strconv.Itoa(*o.Limit))
	}

	if o.Offset != nil {
		values.Set("offset", strconv.Itoa(*o.Offset))
	}

	return values
}

// ProjectListOptions filters get_projects.
type ProjectListOptions struct {
	ListOptions

	// IsCompleted selects completed (true) or active (false) projects; nil
	// selects both.
	IsCompleted *bool
}

// Values renders the options as query parameters.
func (o *ProjectListOptions) Values() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.Values()
	if o.IsCompleted != nil {
		values.Set("is_completed", boolFlag(*o.IsCompleted))
	}

	return values
}

// SectionListOptions filters get_sections. SuiteID is required by the
// service for multi-suite projects.
type SectionListOptions struct {
	ListOptions

	SuiteID *int64
}

// Values renders the options as query parameters.
func (o *SectionListOptions) Values() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.Values()
	if o.SuiteID != nil {
		values.Set("suite_id", strconv.FormatInt(*o.SuiteID, 10))
	}

	return values
}

// CaseListOptions filters get_cases.
type CaseListOptions struct {
	ListOptions

	SuiteID   *int64
	SectionID *int64
}

// Values renders the options as query parameters.
func (o *CaseListOptions) Values() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.Values()
	if o.SuiteID != nil {
		values.Set("suite_id", strconv.FormatInt(*o.SuiteID, 10))
	}

	if o.SectionID != nil {
		values.Set("section_id", strconv.FormatInt(*o.SectionID, 10))
	}

	return values
}

// UserListOptions filters get_users. The endpoint is not paginated, so there
// are no limit/offset fields to send.
type UserListOptions struct {
	ProjectID *int64
}

// Values renders the options as query parameters.
func (o *UserListOptions) Values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.ProjectID != nil {
		values.Set("project_id", strconv.FormatInt(*o.ProjectID, 10))
	}

	return values
}

// boolFlag renders the service's 0/1 boolean query convention.
func boolFlag(v bool) string {
	if v {
		return "1"
	}

	return "0"
}
