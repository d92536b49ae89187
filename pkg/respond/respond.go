package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthrec/healthrec/internal/platform/apperr"
)

// ListEnvelope wraps list responses as {count, results}.
type ListEnvelope struct {
	Count   int         `json:"count"`
	Results interface{} `json:"results"`
}

// MessageEnvelope wraps create/update responses as {message, data}.
type MessageEnvelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// List writes a 200 {count, results} response.
func List(c echo.Context, count int, results interface{}) error {
	return c.JSON(http.StatusOK, ListEnvelope{Count: count, Results: results})
}

// Created writes a 201 {message, data} response.
func Created(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, MessageEnvelope{Message: message, Data: data})
}

// OK writes a 200 {message, data} response.
func OK(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, MessageEnvelope{Message: message, Data: data})
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error maps a service error onto the wire: validation failures become a 400
// field -> [messages] body, not-found becomes a uniform 404, everything else
// is a 500 without internal detail.
func Error(c echo.Context, err error) error {
	if v, ok := apperr.AsValidation(err); ok {
		return c.JSON(http.StatusBadRequest, v.Fields)
	}
	if apperr.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, map[string]string{"detail": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"detail": "internal server error"})
}

// BadRequest writes a 400 with a single field message, for malformed input
// caught before the service layer (unparseable body, bad id).
func BadRequest(c echo.Context, field, message string) error {
	return c.JSON(http.StatusBadRequest, map[string][]string{field: {message}})
}
