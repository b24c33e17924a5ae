package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/autoocto/testrail-tools/pkg/testrail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/get_project/1", r.URL.RawQuery)
		assert.Equal(t, "GET", r.Method)

		project := testrail.Project{
			ID:        1,
			Name:      "Web",
			SuiteMode: 3,
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(project)
	}))
	defer server.Close()

	projects := NewProjectsClient(newTestHTTPClient(server.URL))

	project, err := projects.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), project.ID)
	assert.Equal(t, "Web", project.Name)
	assert.Equal(t, 3, project.SuiteMode)
}

func TestProjectsClient_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Field :project_id is not a valid or accessible project."}`))
	}))
	defer server.Close()

	projects := NewProjectsClient(newTestHTTPClient(server.URL))

	_, err := projects.Get(context.Background(), 999)
	require.Error(t, err)

	var apiErr *testrail.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "not a valid")
}

func TestProjectsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/get_projects&is_completed=0&limit=2", r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"offset": 0,
			"limit": 2,
			"size": 3,
			"_links": {
				"next": "/api/v2/get_projects&is_completed=0&limit=2&offset=2",
				"prev": null
			},
			"projects": [
				{"id": 1, "name": "Web", "suite_mode": 1},
				{"id": 2, "name": "Mobile", "suite_mode": 3}
			]
		}`))
	}))
	defer server.Close()

	projects := NewProjectsClient(newTestHTTPClient(server.URL))

	opts := &testrail.ProjectListOptions{
		ListOptions: testrail.ListOptions{Limit: testrail.Int(2)},
		IsCompleted: testrail.Bool(false),
	}

	page, err := projects.List(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Size)
	assert.True(t, page.HasNext())
	require.Len(t, page.Projects, 2)
	assert.Equal(t, "Web", page.Projects[0].Name)
	assert.Equal(t, "Mobile", page.Projects[1].Name)
}

func TestProjectsClient_List_NilOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/get_projects", r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"offset": 0, "limit": 250, "size": 0, "_links": {"next": null, "prev": null}, "projects": []}`))
	}))
	defer server.Close()

	projects := NewProjectsClient(newTestHTTPClient(server.URL))

	page, err := projects.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, page.Projects)
	assert.False(t, page.HasNext())
}

func TestProjectsClient_Iterate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.RawQuery {
		case "/api/v2/get_projects":
			_, _ = w.Write([]byte(`{
				"offset": 0,
				"limit": 2,
				"size": 3,
				"_links": {"next": "/api/v2/get_projects&limit=2&offset=2", "prev": null},
				"projects": [{"id": 1, "name": "Web"}, {"id": 2, "name": "Mobile"}]
			}`))
		case "/api/v2/get_projects&limit=2&offset=2":
			_, _ = w.Write([]byte(`{
				"offset": 2,
				"limit": 2,
				"size": 3,
				"_links": {"next": null, "prev": "/api/v2/get_projects&limit=2&offset=0"},
				"projects": [{"id": 3, "name": "API"}]
			}`))
		default:
			t.Errorf("unexpected request: %s", r.URL.RawQuery)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	projects := NewProjectsClient(newTestHTTPClient(server.URL))

	all, err := projects.Iterate(context.Background(), nil).All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Web", all[0].Name)
	assert.Equal(t, "Mobile", all[1].Name)
	assert.Equal(t, "API", all[2].Name)
}

func TestProjectsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/add_project", r.URL.RawQuery)
		assert.Equal(t, "POST", r.Method)

		var request testrail.ProjectRequest

		err := json.NewDecoder(r.Body).Decode(&request)
		require.NoError(t, err)
		require.NotNil(t, request.Name)
		assert.Equal(t, "Redesign", *request.Name)
		assert.Nil(t, request.Announcement)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "name": "Redesign", "suite_mode": 1}`))
	}))
	defer server.Close()

	projects := NewProjectsClient(newTestHTTPClient(server.URL))

	project, err := projects.Create(context.Background(), &testrail.ProjectRequest{
		Name: testrail.String("Redesign"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), project.ID)
	assert.Equal(t, "Redesign", project.Name)
}

func TestProjectsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/update_project/7", r.URL.RawQuery)
		assert.Equal(t, "POST", r.Method)

		var request testrail.ProjectRequest

		err := json.NewDecoder(r.Body).Decode(&request)
		require.NoError(t, err)
		require.NotNil(t, request.IsCompleted)
		assert.True(t, *request.IsCompleted)
		assert.Nil(t, request.Name)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "name": "Redesign", "is_completed": true}`))
	}))
	defer server.Close()

	projects := NewProjectsClient(newTestHTTPClient(server.URL))

	project, err := projects.Update(context.Background(), 7, &testrail.ProjectRequest{
		IsCompleted: testrail.Bool(true),
	})
	require.NoError(t, err)
	assert.True(t, project.IsCompleted)
}

func TestProjectsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/delete_project/7", r.URL.RawQuery)
		assert.Equal(t, "POST", r.Method)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	projects := NewProjectsClient(newTestHTTPClient(server.URL))

	err := projects.Delete(context.Background(), 7)
	require.NoError(t, err)
}

func TestProjectsClient_Delete_AlreadyDeleted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Field :project_id is not a valid or accessible project."}`))
	}))
	defer server.Close()

	projects := NewProjectsClient(newTestHTTPClient(server.URL))

	err := projects.Delete(context.Background(), 7)
	require.Error(t, err)

	var apiErr *testrail.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}
