package handler

import (
	"errors"
	"net/http"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/dto"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, authMw echo.MiddlewareFunc) {
	e.POST("/api/v1/auth/login", h.Login)

	protected := e.Group("/api/v1/auth", authMw)
	protected.GET("/me", h.Me)
	protected.POST("/logout", h.Logout)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	token, user, err := h.svc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	username, _ := c.Get("username").(string)

	user, err := h.svc.GetUser(c.Request().Context(), username)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, user)
}

// Logout is stateless: tokens simply expire. The endpoint exists so the UI
// has something to call.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}
