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

func TestSectionsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/get_section/12", r.URL.RawQuery)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 12, "suite_id": 3, "name": "Login", "parent_id": null, "depth": 0}`))
	}))
	defer server.Close()

	sections := NewSectionsClient(newTestHTTPClient(server.URL))

	section, err := sections.Get(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), section.ID)
	assert.Equal(t, "Login", section.Name)
	assert.Nil(t, section.ParentID)
}

func TestSectionsClient_List_SuiteFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/get_sections/1&suite_id=3", r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"offset": 0,
			"limit": 250,
			"size": 2,
			"_links": {"next": null, "prev": null},
			"sections": [
				{"id": 12, "suite_id": 3, "name": "Login", "parent_id": null, "depth": 0},
				{"id": 13, "suite_id": 3, "name": "Password reset", "parent_id": 12, "depth": 1}
			]
		}`))
	}))
	defer server.Close()

	sections := NewSectionsClient(newTestHTTPClient(server.URL))

	page, err := sections.List(context.Background(), 1, &testrail.SectionListOptions{
		SuiteID: testrail.Int64(3),
	})
	require.NoError(t, err)
	require.Len(t, page.Sections, 2)
	assert.Equal(t, 0, page.Sections[0].Depth)
	assert.Equal(t, 1, page.Sections[1].Depth)
	require.NotNil(t, page.Sections[1].ParentID)
	assert.Equal(t, int64(12), *page.Sections[1].ParentID)
}

func TestSectionsClient_Iterate_PreservesFilterInLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.RawQuery {
		case "/api/v2/get_sections/1&limit=250&suite_id=3":
			_, _ = w.Write([]byte(`{
				"offset": 0,
				"limit": 250,
				"size": 402,
				"_links": {"next": "/api/v2/get_sections/1&suite_id=3&limit=250&offset=250", "prev": null},
				"sections": [{"id": 12, "suite_id": 3, "name": "Login"}]
			}`))
		case "/api/v2/get_sections/1&suite_id=3&limit=250&offset=250":
			_, _ = w.Write([]byte(`{
				"offset": 250,
				"limit": 250,
				"size": 402,
				"_links": {"next": null, "prev": "/api/v2/get_sections/1&suite_id=3&limit=250&offset=0"},
				"sections": [{"id": 999, "suite_id": 3, "name": "Cleanup"}]
			}`))
		default:
			t.Errorf("unexpected request: %s", r.URL.RawQuery)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	sections := NewSectionsClient(newTestHTTPClient(server.URL))

	opts := &testrail.SectionListOptions{
		ListOptions: testrail.ListOptions{Limit: testrail.Int(250)},
		SuiteID:     testrail.Int64(3),
	}

	all, err := sections.Iterate(context.Background(), 1, opts).All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Login", all[0].Name)
	assert.Equal(t, "Cleanup", all[1].Name)
}

func TestSectionsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/add_section/1", r.URL.RawQuery)
		assert.Equal(t, "POST", r.Method)

		var request testrail.SectionRequest

		err := json.NewDecoder(r.Body).Decode(&request)
		require.NoError(t, err)
		require.NotNil(t, request.Name)
		assert.Equal(t, "Checkout", *request.Name)
		require.NotNil(t, request.SuiteID)
		assert.Equal(t, int64(3), *request.SuiteID)
		require.NotNil(t, request.ParentID)
		assert.Equal(t, int64(12), *request.ParentID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 20, "suite_id": 3, "name": "Checkout", "parent_id": 12, "depth": 1}`))
	}))
	defer server.Close()

	sections := NewSectionsClient(newTestHTTPClient(server.URL))

	section, err := sections.Create(context.Background(), 1, &testrail.SectionRequest{
		Name:     testrail.String("Checkout"),
		SuiteID:  testrail.Int64(3),
		ParentID: testrail.Int64(12),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), section.ID)
	assert.Equal(t, 1, section.Depth)
}

func TestSectionsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/update_section/20", r.URL.RawQuery)

		var request testrail.SectionRequest

		err := json.NewDecoder(r.Body).Decode(&request)
		require.NoError(t, err)
		require.NotNil(t, request.Name)
		assert.Equal(t, "Payments", *request.Name)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 20, "suite_id": 3, "name": "Payments"}`))
	}))
	defer server.Close()

	sections := NewSectionsClient(newTestHTTPClient(server.URL))

	section, err := sections.Update(context.Background(), 20, &testrail.SectionRequest{
		Name: testrail.String("Payments"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Payments", section.Name)
}

func TestSectionsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/delete_section/20", r.URL.RawQuery)
		assert.Equal(t, "POST", r.Method)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sections := NewSectionsClient(newTestHTTPClient(server.URL))

	err := sections.Delete(context.Background(), 20)
	require.NoError(t, err)
}
