package httpclient

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/woocommerce-go/errors"
)

func TestNewError(t *testing.T) {
	err := NewError(http.StatusBadRequest, []byte(`{"code":"rest_invalid_param"}`))

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "rest_invalid_param")
	assert.True(t, errors.IsAPIResponse(err))
}

func TestIsHTTPError_ThroughWrapping(t *testing.T) {
	inner := NewError(http.StatusInternalServerError, []byte("boom"))
	wrapped := fmt.Errorf("request failed: %w", inner)

	httpErr, ok := IsHTTPError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, []byte("boom"), httpErr.Response)

	_, ok = IsHTTPError(fmt.Errorf("plain error"))
	assert.False(t, ok)
}
