package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/dto"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo, authMw echo.MiddlewareFunc) {
	reservations := e.Group("/api/v1/reservations")
	reservations.GET("", h.List)
	reservations.GET("/calendar", h.Calendar)
	reservations.GET("/:id", h.Get)

	protected := e.Group("/api/v1/reservations", authMw)
	protected.POST("", h.Create)
	protected.PUT("/:id", h.Update)
	protected.PATCH("/:id/status", h.SetStatus)
	protected.DELETE("/:id", h.Cancel)
}

func (h *ReservationHandler) Create(c echo.Context) error {
	var req dto.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reservation, err := h.svc.Create(c.Request().Context(), req.ToReservation())
	if err != nil {
		return mapReservationError(err)
	}
	return c.JSON(http.StatusCreated, reservation)
}

func (h *ReservationHandler) Update(c echo.Context) error {
	var req dto.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reservation, err := h.svc.Update(c.Request().Context(), c.Param("id"), req.ToReservation())
	if err != nil {
		return mapReservationError(err)
	}
	return c.JSON(http.StatusOK, reservation)
}

func (h *ReservationHandler) Cancel(c echo.Context) error {
	reservation, err := h.svc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapReservationError(err)
	}
	return c.JSON(http.StatusOK, reservation)
}

func (h *ReservationHandler) SetStatus(c echo.Context) error {
	var req dto.ReservationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reservation, err := h.svc.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return mapReservationError(err)
	}
	return c.JSON(http.StatusOK, reservation)
}

func (h *ReservationHandler) Get(c echo.Context) error {
	reservation, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "reservation not found")
	}
	return c.JSON(http.StatusOK, reservation)
}

func (h *ReservationHandler) List(c echo.Context) error {
	var status *models.ReservationStatus
	if s := c.QueryParam("status"); s != "" {
		rs := models.ReservationStatus(s)
		status = &rs
	}

	reservations, err := h.svc.List(c.Request().Context(), status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) Calendar(c echo.Context) error {
	month, year, err := monthYearParams(c)
	if err != nil {
		return err
	}

	days, err := h.svc.Calendar(c.Request().Context(), month, year)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.CalendarResponse{Days: days})
}

// monthYearParams reads optional ?month= and ?year= query params; zero
// means "no filter".
func monthYearParams(c echo.Context) (time.Month, int, error) {
	var month time.Month
	var year int

	if m := c.QueryParam("month"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid month")
		}
		month = time.Month(v)
	}
	if y := c.QueryParam("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil || v < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		year = v
	}
	return month, year, nil
}

func mapReservationError(err error) error {
	var validationErr *service.ValidationError
	var transitionErr *service.InvalidTransitionError

	switch {
	case errors.Is(err, service.ErrReservationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &transitionErr):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
