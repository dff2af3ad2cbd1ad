package handler

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/dto"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

type FinanceHandler struct {
	svc service.LedgerService
}

func NewFinanceHandler(svc service.LedgerService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

func (h *FinanceHandler) RegisterRoutes(e *echo.Echo, authMw echo.MiddlewareFunc) {
	finance := e.Group("/api/v1/finance")
	finance.GET("/sales", h.ListSales)
	finance.GET("/expenses", h.ListExpenses)

	protected := e.Group("/api/v1/finance", authMw)
	protected.GET("/sales/export", h.ExportSales)
	protected.POST("/expenses", h.AddExpense)
	protected.GET("/expenses/export", h.ExportExpenses)
}

func (h *FinanceHandler) ListSales(c echo.Context) error {
	sales, err := h.listSalesFiltered(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

func (h *FinanceHandler) ExportSales(c echo.Context) error {
	sales, err := h.listSalesFiltered(c)
	if err != nil {
		return err
	}
	return writeCSV(c, "sales.csv", dto.SaleRows(sales))
}

func (h *FinanceHandler) AddExpense(c echo.Context) error {
	var req dto.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	expense, err := h.svc.AddExpense(c.Request().Context(), req.ToExpense())
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, expense)
}

func (h *FinanceHandler) ListExpenses(c echo.Context) error {
	expenses, err := h.svc.ListExpenses(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, expenses)
}

func (h *FinanceHandler) ExportExpenses(c echo.Context) error {
	expenses, err := h.svc.ListExpenses(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return writeCSV(c, "expenses.csv", dto.ExpenseRows(expenses))
}

func (h *FinanceHandler) listSalesFiltered(c echo.Context) ([]models.Sale, error) {
	var month, year int
	if m := c.QueryParam("month"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid month")
		}
		month = v
	}
	if y := c.QueryParam("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		year = v
	}

	var status *models.PaymentStatus
	if s := c.QueryParam("status"); s != "" {
		ps := models.PaymentStatus(s)
		status = &ps
	}

	sales, err := h.svc.ListSales(c.Request().Context(), month, year, status)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return sales, nil
}

func writeCSV(c echo.Context, filename string, rows [][]string) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return nil
}
