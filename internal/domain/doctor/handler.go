package doctor

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthrec/healthrec/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctors", h.List)
	api.POST("/doctors", h.Create)
	api.GET("/doctors/:id", h.Get)
	api.PUT("/doctors/:id", h.Update)
	api.DELETE("/doctors/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, err)
	}
	if items == nil {
		items = []*Doctor{}
	}
	return respond.List(c, len(items), items)
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return respond.BadRequest(c, "body", "invalid request body")
	}
	d, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Created(c, "Doctor created successfully", d)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respond.BadRequest(c, "id", "invalid id")
	}
	d, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respond.BadRequest(c, "id", "invalid id")
	}
	var in Input
	if err := c.Bind(&in); err != nil {
		return respond.BadRequest(c, "body", "invalid request body")
	}
	d, err := h.svc.Update(c.Request().Context(), id, &in)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, "Doctor updated successfully", d)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respond.BadRequest(c, "id", "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.NoContent(c)
}
