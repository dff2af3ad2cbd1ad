package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/dto"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

type RoomHandler struct {
	svc service.RoomService
}

func NewRoomHandler(svc service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

// RegisterRoutes keeps the dashboard reads public; everything that mutates
// a room goes behind the session guard.
func (h *RoomHandler) RegisterRoutes(e *echo.Echo, authMw echo.MiddlewareFunc) {
	rooms := e.Group("/api/v1/rooms")
	rooms.GET("", h.ListRooms)
	rooms.GET("/history", h.History)
	rooms.GET("/:number", h.GetRoom)

	protected := e.Group("/api/v1/rooms", authMw)
	protected.GET("/:number/bill", h.GetBill)
	protected.POST("/:number/checkin", h.CheckIn)
	protected.POST("/:number/checkout", h.CheckOut)
	protected.PATCH("/:number/status", h.SetStatus)
	protected.PUT("/:number/guest", h.UpdateGuest)
}

func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.svc.ListRooms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	number, err := roomNumber(c)
	if err != nil {
		return err
	}

	room, err := h.svc.GetRoom(c.Request().Context(), number)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "room not found")
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) CheckIn(c echo.Context) error {
	number, err := roomNumber(c)
	if err != nil {
		return err
	}

	var req dto.CheckInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	room, err := h.svc.CheckIn(c.Request().Context(), number, req.ToGuest())
	if err != nil {
		return mapRoomError(err)
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) CheckOut(c echo.Context) error {
	number, err := roomNumber(c)
	if err != nil {
		return err
	}

	bill, err := h.svc.CheckOut(c.Request().Context(), number)
	if err != nil {
		return mapRoomError(err)
	}
	return c.JSON(http.StatusOK, bill)
}

func (h *RoomHandler) SetStatus(c echo.Context) error {
	number, err := roomNumber(c)
	if err != nil {
		return err
	}

	var req dto.RoomStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	room, err := h.svc.SetStatus(c.Request().Context(), number, req.Status)
	if err != nil {
		return mapRoomError(err)
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) UpdateGuest(c echo.Context) error {
	number, err := roomNumber(c)
	if err != nil {
		return err
	}

	var req dto.CheckInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	room, err := h.svc.UpdateGuest(c.Request().Context(), number, req.ToGuest())
	if err != nil {
		return mapRoomError(err)
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) GetBill(c echo.Context) error {
	number, err := roomNumber(c)
	if err != nil {
		return err
	}

	bill, err := h.svc.Bill(c.Request().Context(), number)
	if err != nil {
		return mapRoomError(err)
	}
	return c.JSON(http.StatusOK, bill)
}

func (h *RoomHandler) History(c echo.Context) error {
	records, err := h.svc.History(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, records)
}

func roomNumber(c echo.Context) (uint, error) {
	number, err := strconv.ParseUint(c.Param("number"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid room number")
	}
	return uint(number), nil
}

func mapRoomError(err error) error {
	var validationErr *service.ValidationError
	var transitionErr *service.InvalidTransitionError

	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrRoomVacant):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &transitionErr):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
