package mapping

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthrec/healthrec/internal/platform/auth"
)

func newTestHandler() (*Handler, *testEnv, *echo.Echo) {
	env := newTestEnv()
	return NewHandler(env.svc), env, echo.New()
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, user uuid.UUID) echo.Context {
	req = req.WithContext(auth.WithUserID(req.Context(), user))
	return e.NewContext(req, rec)
}

func TestHandler_CreateMapping(t *testing.T) {
	h, env, e := newTestHandler()
	owner := uuid.New()
	p := env.addPatient(t, owner)
	d := env.addDoctor(t)

	body := fmt.Sprintf(`{"patient":%q,"doctor":%q}`, p.ID, d.ID)
	req := httptest.NewRequest(http.MethodPost, "/api/mappings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, owner)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string  `json:"message"`
		Data    *Detail `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Message != "Patient-doctor mapping created successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Data == nil || resp.Data.PatientDetails == nil || resp.Data.DoctorDetails == nil {
		t.Errorf("expected enriched data, got %+v", resp.Data)
	}
}

func TestHandler_CreateMapping_ForeignPatient(t *testing.T) {
	h, env, e := newTestHandler()
	p := env.addPatient(t, uuid.New())
	d := env.addDoctor(t)

	body := fmt.Sprintf(`{"patient":%q,"doctor":%q}`, p.ID, d.ID)
	req := httptest.NewRequest(http.MethodPost, "/api/mappings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New())

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_ListForPatient(t *testing.T) {
	h, env, e := newTestHandler()
	owner := uuid.New()
	p := env.addPatient(t, owner)
	d := env.addDoctor(t)
	if _, err := env.svc.Create(nil, owner, &Input{PatientID: p.ID, DoctorID: d.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, owner)
	c.SetParamNames("patient_id")
	c.SetParamValues(p.ID.String())

	if err := h.ListForPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		PatientDetails *json.RawMessage    `json:"patient_details"`
		Doctors        []*DoctorAssignment `json:"doctors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.PatientDetails == nil {
		t.Error("expected patient_details")
	}
	if len(resp.Doctors) != 1 {
		t.Errorf("expected 1 doctor, got %d", len(resp.Doctors))
	}
}

func TestHandler_DeleteMapping_InvalidID(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
