package handler

import (
	"net/http"
	"time"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/reports/monthly", h.Monthly)
}

// Monthly defaults to the current month when no ?month=&year= is given.
func (h *ReportHandler) Monthly(c echo.Context) error {
	month, year, err := monthYearParams(c)
	if err != nil {
		return err
	}

	now := time.Now()
	if month == 0 {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}

	report, err := h.svc.Monthly(c.Request().Context(), month, year)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, report)
}
