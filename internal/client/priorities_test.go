package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/autoocto/testrail-tools/pkg/testrail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The priorities endpoint answers a bare array, not a paginated envelope.
func TestPrioritiesClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/get_priorities", r.URL.RawQuery)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Low", "short_name": "Low", "priority": 1, "is_default": false},
			{"id": 2, "name": "Medium", "short_name": "Med", "priority": 2, "is_default": true},
			{"id": 3, "name": "High", "short_name": "High", "priority": 3, "is_default": false}
		]`))
	}))
	defer server.Close()

	priorities := NewPrioritiesClient(newTestHTTPClient(server.URL))

	list, err := priorities.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Medium", list[1].Name)
	assert.True(t, list[1].IsDefault)
	assert.Equal(t, 3, list[2].Priority)
}

func TestPrioritiesClient_List_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Authentication failed: invalid or missing user/password or session cookie."}`))
	}))
	defer server.Close()

	priorities := NewPrioritiesClient(newTestHTTPClient(server.URL))

	_, err := priorities.List(context.Background())
	require.Error(t, err)
	assert.True(t, testrail.IsUnauthorized(err))
}
