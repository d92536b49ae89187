package mapping

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthrec/healthrec/internal/domain/patient"
	"github.com/healthrec/healthrec/internal/platform/auth"
	"github.com/healthrec/healthrec/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/mappings", h.List)
	api.POST("/mappings", h.Create)
	api.GET("/mappings/:patient_id", h.ListForPatient)
	api.DELETE("/mappings/delete/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	user := auth.UserIDFromContext(c.Request().Context())
	items, err := h.svc.List(c.Request().Context(), user)
	if err != nil {
		return respond.Error(c, err)
	}
	if items == nil {
		items = []*Detail{}
	}
	return respond.List(c, len(items), items)
}

func (h *Handler) Create(c echo.Context) error {
	user := auth.UserIDFromContext(c.Request().Context())
	var in Input
	if err := c.Bind(&in); err != nil {
		return respond.BadRequest(c, "body", "invalid request body")
	}
	d, err := h.svc.Create(c.Request().Context(), user, &in)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Created(c, "Patient-doctor mapping created successfully", d)
}

// patientDoctorsResponse carries the patient once with the doctors assigned
// to it.
type patientDoctorsResponse struct {
	PatientID      uuid.UUID           `json:"patient_id"`
	PatientDetails *patient.Patient    `json:"patient_details"`
	Doctors        []*DoctorAssignment `json:"doctors"`
}

func (h *Handler) ListForPatient(c echo.Context) error {
	user := auth.UserIDFromContext(c.Request().Context())
	patientID, err := uuid.Parse(c.Param("patient_id"))
	if err != nil {
		return respond.BadRequest(c, "patient_id", "invalid id")
	}
	p, doctors, err := h.svc.ListForPatient(c.Request().Context(), user, patientID)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, patientDoctorsResponse{
		PatientID:      patientID,
		PatientDetails: p,
		Doctors:        doctors,
	})
}

func (h *Handler) Delete(c echo.Context) error {
	user := auth.UserIDFromContext(c.Request().Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respond.BadRequest(c, "id", "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), user, id); err != nil {
		return respond.Error(c, err)
	}
	return respond.NoContent(c)
}
