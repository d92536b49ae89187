package patient

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

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
	api.GET("/patients", h.List)
	api.POST("/patients", h.Create)
	api.GET("/patients/:id", h.Get)
	api.PUT("/patients/:id", h.Update)
	api.DELETE("/patients/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	user := auth.UserIDFromContext(c.Request().Context())
	items, err := h.svc.List(c.Request().Context(), user)
	if err != nil {
		return respond.Error(c, err)
	}
	if items == nil {
		items = []*Patient{}
	}
	return respond.List(c, len(items), items)
}

func (h *Handler) Create(c echo.Context) error {
	user := auth.UserIDFromContext(c.Request().Context())
	var in Input
	if err := c.Bind(&in); err != nil {
		return respond.BadRequest(c, "body", "invalid request body")
	}
	p, err := h.svc.Create(c.Request().Context(), user, &in)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Created(c, "Patient created successfully", p)
}

func (h *Handler) Get(c echo.Context) error {
	user := auth.UserIDFromContext(c.Request().Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respond.BadRequest(c, "id", "invalid id")
	}
	p, err := h.svc.Get(c.Request().Context(), user, id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Update(c echo.Context) error {
	user := auth.UserIDFromContext(c.Request().Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respond.BadRequest(c, "id", "invalid id")
	}
	var in Input
	if err := c.Bind(&in); err != nil {
		return respond.BadRequest(c, "body", "invalid request body")
	}
	p, err := h.svc.Update(c.Request().Context(), user, id, &in)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, "Patient updated successfully", p)
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
