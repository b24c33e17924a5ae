package testrail_test

import (
	"testing"

	"github.com/autoocto/testrail-tools/pkg/testrail"
	"github.com/stretchr/testify/assert"
)

func TestListOptions_Values(t *testing.T) {
	tests := []struct {
		name string
		opts *testrail.ListOptions
		want string
	}{
		{
			name: "nil receiver",
			opts: nil,
			want: "",
		},
		{
			name: "empty",
			opts: &testrail.ListOptions{},
			want: "",
		},
		{
			name: "limit only",
			opts: &testrail.ListOptions{Limit: testrail.Int(50)},
			want: "limit=50",
		},
		{
			name: "explicit zero offset is sent",
			opts: &testrail.ListOptions{Offset: testrail.Int(0)},
			want: "offset=0",
		},
		{
			name: "both",
			opts: &testrail.ListOptions{Limit: testrail.Int(250), Offset: testrail.Int(250)},
			want: "limit=250&offset=250",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, testCase.opts.Values().Encode())
		})
	}
}

func TestProjectListOptions_Values(t *testing.T) {
	opts := &testrail.ProjectListOptions{
		ListOptions: testrail.ListOptions{Limit: testrail.Int(10)},
		IsCompleted: testrail.Bool(false),
	}

	assert.Equal(t, "is_completed=0&limit=10", opts.Values().Encode())

	opts.IsCompleted = testrail.Bool(true)
	assert.Equal(t, "is_completed=1&limit=10", opts.Values().Encode())

	var nilOpts *testrail.ProjectListOptions

	assert.Empty(t, nilOpts.Values().Encode())
}

func TestSectionListOptions_Values(t *testing.T) {
	opts := &testrail.SectionListOptions{
		SuiteID: testrail.Int64(3),
	}

	assert.Equal(t, "suite_id=3", opts.Values().Encode())
}

func TestCaseListOptions_Values(t *testing.T) {
	opts := &testrail.CaseListOptions{
		ListOptions: testrail.ListOptions{Limit: testrail.Int(250), Offset: testrail.Int(0)},
		SuiteID:     testrail.Int64(3),
		SectionID:   testrail.Int64(42),
	}

	assert.Equal(t, "limit=250&offset=0&section_id=42&suite_id=3", opts.Values().Encode())
}

func TestUserListOptions_Values(t *testing.T) {
	var nilOpts *testrail.UserListOptions

	assert.Empty(t, nilOpts.Values().Encode())

	opts := &testrail.UserListOptions{ProjectID: testrail.Int64(7)}
	assert.Equal(t, "project_id=7", opts.Values().Encode())
}
