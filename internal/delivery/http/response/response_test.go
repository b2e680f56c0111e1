package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, statusCode int, errs any) map[string]any {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, Error(c, statusCode, errs))
	assert.Equal(t, statusCode, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestError_NilFallsBackToStatusText(t *testing.T) {
	body := renderError(t, http.StatusUnauthorized, nil)

	assert.Equal(t, "Unauthorized", body["errors"])
}

func TestError_EmptyStringFallsBackToStatusText(t *testing.T) {
	body := renderError(t, http.StatusBadRequest, "")

	assert.Equal(t, "Bad Request", body["errors"])
}

func TestError_TypedNilMapFallsBackToStatusText(t *testing.T) {
	var fields map[string]string
	body := renderError(t, http.StatusBadRequest, fields)

	assert.Equal(t, "Bad Request", body["errors"])
}

func TestError_FieldMapPassesThrough(t *testing.T) {
	body := renderError(t, http.StatusBadRequest, map[string]string{"name": "name must not be empty"})

	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "name must not be empty", errs["name"])
}

func TestError_MessagePassesThrough(t *testing.T) {
	body := renderError(t, http.StatusConflict, "username is already registered")

	assert.Equal(t, "username is already registered", body["errors"])
}
