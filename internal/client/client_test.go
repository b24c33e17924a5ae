package client

import (
	"testing"

	internalhttp "github.com/autoocto/testrail-tools/internal/http"
	"github.com/autoocto/testrail-tools/pkg/testrail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHTTPClient builds a transport aimed at a test server.
func newTestHTTPClient(serverURL string) *internalhttp.Client {
	return internalhttp.NewClient(serverURL, internalhttp.Credentials{
		Email:  "user@example.com",
		APIKey: "secret-key",
	})
}

func TestNew(t *testing.T) {
	client, err := New(&testrail.Config{
		BaseURL: "https://example.testrail.io",
		Email:   "user@example.com",
		APIKey:  "secret-key",
	})
	require.NoError(t, err)
	assert.NotNil(t, client.Projects())
	assert.NotNil(t, client.Suites())
	assert.NotNil(t, client.Sections())
	assert.NotNil(t, client.Cases())
	assert.NotNil(t, client.Users())
	assert.NotNil(t, client.Groups())
	assert.NotNil(t, client.Priorities())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  *testrail.Config
		wantErr error
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: testrail.ErrConfigRequired,
		},
		{
			name:    "missing base URL",
			config:  &testrail.Config{Email: "user@example.com", APIKey: "secret-key"},
			wantErr: testrail.ErrBaseURLRequired,
		},
		{
			name:    "missing email",
			config:  &testrail.Config{BaseURL: "https://example.testrail.io", APIKey: "secret-key"},
			wantErr: testrail.ErrEmailRequired,
		},
		{
			name:    "missing API key",
			config:  &testrail.Config{BaseURL: "https://example.testrail.io", Email: "user@example.com"},
			wantErr: testrail.ErrAPIKeyRequired,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client, err := New(testCase.config)
			require.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, client)
		})
	}
}
