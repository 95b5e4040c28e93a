package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/internal/middleware"
	"github.com/grachmannico95/casedesk-be/internal/service"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
)

type AuthHandler struct {
	service service.AuthService
	logger  *logger.Logger
}

func NewAuthHandler(service service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  log,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

func (r *registerRequest) Ok() error {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	return checkRequest(r, domain.ErrMissingFields)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *loginRequest) Ok() error {
	r.Email = strings.TrimSpace(r.Email)
	return checkRequest(r, domain.ErrMissingCredentials)
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := req.Ok(); err != nil {
		return writeError(c, err)
	}

	result, err := h.service.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := req.Ok(); err != nil {
		return writeError(c, err)
	}

	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Logout only acknowledges; tokens are stateless and expire on their own.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "not authorized"})
	}
	return c.JSON(http.StatusOK, user)
}
