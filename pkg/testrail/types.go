package testrail

import (
	"encoding/json"
	"strings"
)

// customFieldPrefix marks the open-ended case fields configured per TestRail
// instance.
const customFieldPrefix = "custom_"

// PageLinks carries the server-issued continuation links of a paginated
// response. A nil link means the page has no continuation in that direction.
// The link values are opaque: they embed whatever filter state the server
// chose to encode and must be dereferenced without modification.
type PageLinks struct {
	Next *string `json:"next" yaml:"next"`
	Prev *string `json:"prev" yaml:"prev"`
}

// Pagination is the metadata shared by all paginated list responses. Size is
// the total number of items matching the request's filters, not the count in
// the current page.
type Pagination struct {
	Offset int       `json:"offset" yaml:"offset"`
	Limit  int       `json:"limit"  yaml:"limit"`
	Size   int       `json:"size"   yaml:"size"`
	Links  PageLinks `json:"_links" yaml:"links"`
}

// NextLink returns the continuation link for the next page, or "" on the
// last page.
func (p Pagination) NextLink() string {
	if p.Links.Next != nil {
		return *p.Links.Next
	}

	return ""
}

// PrevLink returns the continuation link for the previous page, or "" on the
// first page.
func (p Pagination) PrevLink() string {
	if p.Links.Prev != nil {
		return *p.Links.Prev
	}

	return ""
}

// HasNext reports whether the server issued a next-page link.
func (p Pagination) HasNext() bool {
	return p.Links.Next != nil
}

// Project represents a TestRail project.
type Project struct {
	ID               int64  `json:"id"                yaml:"id"`
	Name             string `json:"name"              yaml:"name"`
	Announcement     string `json:"announcement"      yaml:"announcement"`
	ShowAnnouncement bool   `json:"show_announcement" yaml:"show_announcement"`
	IsCompleted      bool   `json:"is_completed"      yaml:"is_completed"`
	CompletedOn      *int64 `json:"completed_on"      yaml:"completed_on"`
	SuiteMode        int    `json:"suite_mode"        yaml:"suite_mode"`
	URL              string `json:"url"               yaml:"url"`
}

// Suite represents a test suite within a project.
type Suite struct {
	ID          int64  `json:"id"           yaml:"id"`
	ProjectID   int64  `json:"project_id"   yaml:"project_id"`
	Name        string `json:"name"         yaml:"name"`
	Description string `json:"description"  yaml:"description"`
	IsMaster    bool   `json:"is_master"    yaml:"is_master"`
	IsBaseline  bool   `json:"is_baseline"  yaml:"is_baseline"`
	IsCompleted bool   `json:"is_completed" yaml:"is_completed"`
	CompletedOn *int64 `json:"completed_on" yaml:"completed_on"`
	URL         string `json:"url"          yaml:"url"`
}

// Section represents a section within a suite. ParentID is nil for top-level
// sections; Depth counts ancestors.
type Section struct {
	ID           int64  `json:"id"            yaml:"id"`
	SuiteID      int64  `json:"suite_id"      yaml:"suite_id"`
	ParentID     *int64 `json:"parent_id"     yaml:"parent_id"`
	Name         string `json:"name"          yaml:"name"`
	Description  string `json:"description"   yaml:"description"`
	DisplayOrder int    `json:"display_order" yaml:"display_order"`
	Depth        int    `json:"depth"         yaml:"depth"`
}

// Case represents a test case. Fields specific to the instance's case field
// configuration arrive as "custom_" prefixed keys and are collected into
// Custom, keyed without the prefix; MarshalJSON flattens them back.
type Case struct {
	ID               int64  `json:"id"                yaml:"id"`
	Title            string `json:"title"             yaml:"title"`
	SectionID        int64  `json:"section_id"        yaml:"section_id"`
	SuiteID          int64  `json:"suite_id"          yaml:"suite_id"`
	TemplateID       int64  `json:"template_id"       yaml:"template_id"`
	TypeID           int64  `json:"type_id"           yaml:"type_id"`
	PriorityID       int64  `json:"priority_id"       yaml:"priority_id"`
	MilestoneID      *int64 `json:"milestone_id"      yaml:"milestone_id"`
	Refs             string `json:"refs"              yaml:"refs"`
	Estimate         string `json:"estimate"          yaml:"estimate"`
	EstimateForecast string `json:"estimate_forecast" yaml:"estimate_forecast"`
	DisplayOrder     int    `json:"display_order"     yaml:"display_order"`
	CreatedBy        int64  `json:"created_by"        yaml:"created_by"`
	CreatedOn        int64  `json:"created_on"        yaml:"created_on"`
	UpdatedBy        int64  `json:"updated_by"        yaml:"updated_by"`
	UpdatedOn        int64  `json:"updated_on"        yaml:"updated_on"`

	// Custom holds the instance-configured case fields ("custom_steps"
	// becomes Custom["steps"]). Values keep whatever JSON shape the service
	// sent: string, number, bool, nil, or nested structure.
	Custom map[string]interface{} `json:"-" yaml:"custom,omitempty"`
}

// caseAlias avoids recursing into the custom JSON methods.
type caseAlias Case

// UnmarshalJSON decodes the fixed fields and collects every "custom_"
// prefixed key into Custom.
func (c *Case) UnmarshalJSON(data []byte) error {
	var base caseAlias

	err := json.Unmarshal(data, &base)
	if err != nil {
		return err
	}

	var raw map[string]json.RawMessage

	err = json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	for key, value := range raw {
		if !strings.HasPrefix(key, customFieldPrefix) {
			continue
		}

		var parsed interface{}

		err = json.Unmarshal(value, &parsed)
		if err != nil {
			return err
		}

		if base.Custom == nil {
			base.Custom = make(map[string]interface{})
		}

		base.Custom[strings.TrimPrefix(key, customFieldPrefix)] = parsed
	}

	*c = Case(base)

	return nil
}

// MarshalJSON flattens Custom back into "custom_" prefixed keys.
func (c Case) MarshalJSON() ([]byte, error) {
	return marshalWithCustom(caseAlias(c), c.Custom)
}

// User represents a TestRail user account.
type User struct {
	ID       int64  `json:"id"        yaml:"id"`
	Name     string `json:"name"      yaml:"name"`
	Email    string `json:"email"     yaml:"email"`
	IsActive bool   `json:"is_active" yaml:"is_active"`
	IsAdmin  bool   `json:"is_admin"  yaml:"is_admin"`
	RoleID   int64  `json:"role_id"   yaml:"role_id"`
	Role     string `json:"role"      yaml:"role"`
}

// Group represents a user group.
type Group struct {
	ID      int64   `json:"id"       yaml:"id"`
	Name    string  `json:"name"     yaml:"name"`
	UserIDs []int64 `json:"user_ids" yaml:"user_ids"`
}

// Priority represents a case priority. Priority is the numeric rank used for
// ordering; IsDefault marks the instance default.
type Priority struct {
	ID        int64  `json:"id"         yaml:"id"`
	Name      string `json:"name"       yaml:"name"`
	ShortName string `json:"short_name" yaml:"short_name"`
	IsDefault bool   `json:"is_default" yaml:"is_default"`
	Priority  int    `json:"priority"   yaml:"priority"`
}

// ProjectPage is a paginated list of projects.
type ProjectPage struct {
	Pagination `yaml:",inline"`

	Projects []Project `json:"projects" yaml:"projects"`
}

// SuitePage is a paginated list of suites.
type SuitePage struct {
	Pagination `yaml:",inline"`

	Suites []Suite `json:"suites" yaml:"suites"`
}

// SectionPage is a paginated list of sections.
type SectionPage struct {
	Pagination `yaml:",inline"`

	Sections []Section `json:"sections" yaml:"sections"`
}

// CasePage is a paginated list of cases.
type CasePage struct {
	Pagination `yaml:",inline"`

	Cases []Case `json:"cases" yaml:"cases"`
}

// GroupPage is a paginated list of groups.
type GroupPage struct {
	Pagination `yaml:",inline"`

	Groups []Group `json:"groups" yaml:"groups"`
}

// ProjectRequest is the payload for add_project and update_project. Only
// non-nil fields are sent; the service fills in the rest.
type ProjectRequest struct {
	Name             *string `json:"name,omitempty"`
	Announcement     *string `json:"announcement,omitempty"`
	ShowAnnouncement *bool   `json:"show_announcement,omitempty"`
	IsCompleted      *bool   `json:"is_completed,omitempty"`
	SuiteMode        *int    `json:"suite_mode,omitempty"`
}

// SuiteRequest is the payload for add_suite and update_suite.
type SuiteRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SectionRequest is the payload for add_section and update_section. SuiteID
// is required by the service when the project is in multi-suite mode.
type SectionRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	SuiteID     *int64  `json:"suite_id,omitempty"`
	ParentID    *int64  `json:"parent_id,omitempty"`
}

// CaseRequest is the payload for add_case and update_case. Custom fields are
// flattened into "custom_" prefixed keys on marshal.
type CaseRequest struct {
	Title       *string `json:"title,omitempty"`
	TemplateID  *int64  `json:"template_id,omitempty"`
	TypeID      *int64  `json:"type_id,omitempty"`
	PriorityID  *int64  `json:"priority_id,omitempty"`
	MilestoneID *int64  `json:"milestone_id,omitempty"`
	Refs        *string `json:"refs,omitempty"`
	Estimate    *string `json:"estimate,omitempty"`

	// Custom is keyed without the "custom_" prefix, like Case.Custom.
	Custom map[string]interface{} `json:"-"`
}

type caseRequestAlias CaseRequest

// MarshalJSON flattens Custom back into "custom_" prefixed keys.
func (r CaseRequest) MarshalJSON() ([]byte, error) {
	return marshalWithCustom(caseRequestAlias(r), r.Custom)
}

// GroupRequest is the payload for add_group and update_group.
type GroupRequest struct {
	Name    *string `json:"name,omitempty"`
	UserIDs []int64 `json:"user_ids,omitempty"`
}

// marshalWithCustom merges custom fields into the fixed-field encoding of v.
func marshalWithCustom(v interface{}, custom map[string]interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	if len(custom) == 0 {
		return data, nil
	}

	var merged map[string]interface{}

	err = json.Unmarshal(data, &merged)
	if err != nil {
		return nil, err
	}

	for key, value := range custom {
		merged[customFieldPrefix+key] = value
	}

	return json.Marshal(merged)
}

// String returns a pointer to v, for optional request fields.
func String(v string) *string { return &v }

// Int returns a pointer to v, for optional request fields. An explicit zero
// is still sent; only a nil pointer is omitted.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v, for optional request fields.
func Int64(v int64) *int64 { return &v }

// Bool returns a pointer to v, for optional request fields.
func Bool(v bool) *bool { return &v }
