package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthrec/healthrec/internal/platform/apperr"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestList_Envelope(t *testing.T) {
	c, rec := newContext()
	if err := List(c, 2, []string{"a", "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var env struct {
		Count   int      `json:"count"`
		Results []string `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Count != 2 || len(env.Results) != 2 {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

func TestError_Validation(t *testing.T) {
	c, rec := newContext()
	v := apperr.NewValidation("email", "this field is required")
	if err := Error(c, v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var fields map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(fields["email"]) != 1 {
		t.Errorf("unexpected body: %v", fields)
	}
}

func TestError_NotFound(t *testing.T) {
	c, rec := newContext()
	if err := Error(c, apperr.ErrNotFound); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["detail"] != "not found" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestError_Internal(t *testing.T) {
	c, rec := newContext()
	if err := Error(c, errors.New("pg connection refused")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// Internal detail must not leak to the client.
	if strings.Contains(rec.Body.String(), "refused") {
		t.Errorf("internal error leaked: %s", rec.Body.String())
	}
}
