package testrail_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/autoocto/testrail-tools/pkg/testrail"
	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	withMessage := &testrail.APIError{
		StatusCode: 403,
		Message:    "No access to the project.",
		Body:       `{"error": "No access to the project."}`,
	}

	assert.Equal(t, "testrail: HTTP 403: No access to the project.", withMessage.Error())

	withoutMessage := &testrail.APIError{
		StatusCode: 500,
		Body:       "<html>Maintenance</html>",
	}

	assert.Equal(t, "testrail: HTTP 500: <html>Maintenance</html>", withoutMessage.Error())
}

func TestStatusHelpers(t *testing.T) {
	unauthorized := &testrail.APIError{StatusCode: 401, Message: "Authentication failed"}
	forbidden := &testrail.APIError{StatusCode: 403, Message: "No access"}
	notFound := &testrail.APIError{StatusCode: 404, Message: "Unknown method"}

	assert.True(t, testrail.IsUnauthorized(unauthorized))
	assert.False(t, testrail.IsUnauthorized(forbidden))

	assert.True(t, testrail.IsForbidden(forbidden))
	assert.False(t, testrail.IsForbidden(notFound))

	assert.True(t, testrail.IsNotFound(notFound))
	assert.False(t, testrail.IsNotFound(unauthorized))
}

func TestStatusHelpers_Wrapped(t *testing.T) {
	inner := &testrail.APIError{StatusCode: 404, Message: "Unknown method"}
	wrapped := fmt.Errorf("getting project: %w", inner)

	assert.True(t, testrail.IsNotFound(wrapped))
	assert.False(t, testrail.IsNotFound(errors.New("plain error")))
	assert.False(t, testrail.IsNotFound(nil))
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	netErr := &testrail.NetworkError{URL: "https://example.testrail.io/index.php?/api/v2/get_projects", Err: cause}

	assert.Contains(t, netErr.Error(), "connection refused")
	assert.ErrorIs(t, netErr, cause)

	wrapped := fmt.Errorf("listing projects: %w", netErr)
	assert.True(t, testrail.IsNetwork(wrapped))
	assert.False(t, testrail.IsNetwork(cause))

	// A transport failure has no HTTP status.
	assert.False(t, testrail.IsUnauthorized(wrapped))
}
