// Package response renders the service's JSON envelopes: `{"data": ...}` for
// success and `{"errors": ...}` for every failure.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DataEnvelope wraps every successful response body.
type DataEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope wraps every failure response body. Errors is either a plain
// message string or a field→message map for validation failures.
type ErrorEnvelope struct {
	Errors any `json:"errors"`
}

// Data writes a successful response.
func Data(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, DataEnvelope{Data: data})
}

// Error writes a failure response. An absent or empty errs falls back to the
// status text so the body never renders `{"errors":null}`.
func Error(c echo.Context, statusCode int, errs any) error {
	switch v := errs.(type) {
	case nil:
		errs = http.StatusText(statusCode)
	case string:
		if v == "" {
			errs = http.StatusText(statusCode)
		}
	case map[string]string:
		if v == nil {
			errs = http.StatusText(statusCode)
		}
	}

	return c.JSON(statusCode, ErrorEnvelope{Errors: errs})
}

// BadRequest writes a 400 failure.
func BadRequest(c echo.Context, errs any) error {
	return Error(c, http.StatusBadRequest, errs)
}

// Unauthorized writes a 401 failure.
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}
