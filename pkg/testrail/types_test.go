package testrail_test

import (
	"encoding/json"
	"testing"

	"github.com/autoocto/testrail-tools/pkg/testrail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCase_UnmarshalJSON_CustomFields(t *testing.T) {
	payload := `{
		"id": 101,
		"title": "Login with valid credentials",
		"section_id": 5,
		"suite_id": 3,
		"type_id": 6,
		"priority_id": 2,
		"refs": "RF-1,RF-2",
		"estimate": "3m",
		"custom_preconds": "User exists",
		"custom_steps_separated": [
			{"content": "Open login page", "expected": "Form shown"},
			{"content": "Submit credentials", "expected": "Dashboard shown"}
		],
		"custom_automated": true,
		"custom_legacy_id": null
	}`

	var testCase testrail.Case

	err := json.Unmarshal([]byte(payload), &testCase)
	require.NoError(t, err)

	assert.Equal(t, int64(101), testCase.ID)
	assert.Equal(t, "Login with valid credentials", testCase.Title)
	assert.Equal(t, int64(5), testCase.SectionID)
	assert.Equal(t, "RF-1,RF-2", testCase.Refs)

	// Custom keys lose the prefix and keep their JSON shape.
	assert.Equal(t, "User exists", testCase.Custom["preconds"])
	assert.Equal(t, true, testCase.Custom["automated"])
	assert.Nil(t, testCase.Custom["legacy_id"])

	steps, ok := testCase.Custom["steps_separated"].([]interface{})
	require.True(t, ok)
	assert.Len(t, steps, 2)

	_, exists := testCase.Custom["custom_preconds"]
	assert.False(t, exists)
}

func TestCase_UnmarshalJSON_NoCustomFields(t *testing.T) {
	var testCase testrail.Case

	err := json.Unmarshal([]byte(`{"id": 1, "title": "Smoke"}`), &testCase)
	require.NoError(t, err)

	assert.Equal(t, int64(1), testCase.ID)
	assert.Nil(t, testCase.Custom)
}

func TestCase_MarshalJSON_FlattensCustomFields(t *testing.T) {
	testCase := testrail.Case{
		ID:        101,
		Title:     "Login with valid credentials",
		SectionID: 5,
		Custom: map[string]interface{}{
			"preconds":  "User exists",
			"automated": true,
		},
	}

	data, err := json.Marshal(testCase)
	require.NoError(t, err)

	var raw map[string]interface{}

	err = json.Unmarshal(data, &raw)
	require.NoError(t, err)

	assert.Equal(t, "User exists", raw["custom_preconds"])
	assert.Equal(t, true, raw["custom_automated"])
	assert.NotContains(t, raw, "preconds")
	assert.NotContains(t, raw, "custom")
}

func TestCase_JSONRoundTrip(t *testing.T) {
	original := testrail.Case{
		ID:      7,
		Title:   "Export report",
		SuiteID: 2,
		Custom: map[string]interface{}{
			"expected": "CSV downloads",
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded testrail.Case

	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, original.Title, decoded.Title)
	assert.Equal(t, original.Custom, decoded.Custom)
}

func TestCaseRequest_MarshalJSON(t *testing.T) {
	request := testrail.CaseRequest{
		Title:      testrail.String("New case"),
		PriorityID: testrail.Int64(2),
		Custom: map[string]interface{}{
			"preconds": "Account provisioned",
		},
	}

	data, err := json.Marshal(request)
	require.NoError(t, err)

	var raw map[string]interface{}

	err = json.Unmarshal(data, &raw)
	require.NoError(t, err)

	assert.Equal(t, "New case", raw["title"])
	assert.EqualValues(t, 2, raw["priority_id"])
	assert.Equal(t, "Account provisioned", raw["custom_preconds"])

	// Unset optional fields never reach the wire.
	assert.NotContains(t, raw, "type_id")
	assert.NotContains(t, raw, "refs")
}

func TestProjectRequest_MarshalJSON_OmitsUnset(t *testing.T) {
	request := testrail.ProjectRequest{
		Name:        testrail.String("Web"),
		IsCompleted: testrail.Bool(false),
	}

	data, err := json.Marshal(request)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Web", "is_completed": false}`, string(data))
}

func TestCasePage_Unmarshal(t *testing.T) {
	payload := `{
		"offset": 0,
		"limit": 250,
		"size": 402,
		"_links": {
			"next": "/api/v2/get_cases/1&suite_id=3&limit=250&offset=250",
			"prev": null
		},
		"cases": [
			{"id": 1, "title": "First", "custom_automated": false}
		]
	}`

	var page testrail.CasePage

	err := json.Unmarshal([]byte(payload), &page)
	require.NoError(t, err)

	assert.Equal(t, 0, page.Offset)
	assert.Equal(t, 250, page.Limit)
	assert.Equal(t, 402, page.Size)
	assert.True(t, page.HasNext())
	assert.Equal(t, "/api/v2/get_cases/1&suite_id=3&limit=250&offset=250", page.NextLink())
	assert.Empty(t, page.PrevLink())

	require.Len(t, page.Cases, 1)
	assert.Equal(t, "First", page.Cases[0].Title)
	assert.Equal(t, false, page.Cases[0].Custom["automated"])
}

func TestSection_ParentID(t *testing.T) {
	var root testrail.Section

	err := json.Unmarshal([]byte(`{"id": 1, "name": "Root", "parent_id": null, "depth": 0}`), &root)
	require.NoError(t, err)
	assert.Nil(t, root.ParentID)

	var child testrail.Section

	err = json.Unmarshal([]byte(`{"id": 2, "name": "Child", "parent_id": 1, "depth": 1}`), &child)
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, int64(1), *child.ParentID)
}
