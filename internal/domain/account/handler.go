package account

import (
	"net/http"

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

// RegisterRoutes mounts the public authentication endpoints.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/register", h.Register)
	g.POST("/auth/login", h.Login)
}

type authResponse struct {
	Message string          `json:"message"`
	User    *User           `json:"user"`
	Tokens  *auth.TokenPair `json:"tokens"`
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return respond.BadRequest(c, "body", "invalid request body")
	}
	res, err := h.svc.Register(c.Request().Context(), &in)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, authResponse{
		Message: "User registered successfully",
		User:    res.User,
		Tokens:  res.Tokens,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var in LoginInput
	if err := c.Bind(&in); err != nil {
		return respond.BadRequest(c, "body", "invalid request body")
	}
	res, err := h.svc.Login(c.Request().Context(), &in)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		User:    res.User,
		Tokens:  res.Tokens,
	})
}
