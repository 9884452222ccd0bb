// Package httperr renders the API's error bodies: authentication and
// not-found failures carry a single "detail" message, validation failures
// carry a field → messages map.
package httperr

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Fields maps an attribute name to its validation messages.
type Fields map[string][]string

func (f Fields) Add(field, msg string) { f[field] = append(f[field], msg) }

func Detail(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"detail": msg})
}

func NotFound(c echo.Context) error {
	return Detail(c, http.StatusNotFound, "Not found.")
}

func Validation(c echo.Context, f Fields) error {
	return c.JSON(http.StatusBadRequest, f)
}

func Field(c echo.Context, field, msg string) error {
	return Validation(c, Fields{field: {msg}})
}

func BadJSON(c echo.Context) error {
	return Detail(c, http.StatusBadRequest, "Malformed request body.")
}

func Internal(c echo.Context, err error) error {
	return Detail(c, http.StatusInternalServerError, err.Error())
}

const (
	MsgRequired      = "This field is required."
	MsgInvalidChoice = "%q is not a valid choice."
	MsgInvalidPK     = "Invalid pk %q - object does not exist."
)
