package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sampledash/internal/usecase"
	"sampledash/pkg/errors"
	"sampledash/pkg/response"
)

type SalesHandler struct {
	salesUseCase *usecase.SalesUseCase
}

func NewSalesHandler(salesUseCase *usecase.SalesUseCase) *SalesHandler {
	return &SalesHandler{
		salesUseCase: salesUseCase,
	}
}

// GetSales serves a page of sales with optional itemName / couponUsed query
// filters applied after the fetch.
func (h *SalesHandler) GetSales(c echo.Context) error {
	sales, err := h.salesUseCase.ListSales(
		c.Request().Context(),
		c.QueryParam("itemName"),
		c.QueryParam("couponUsed"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, sales)
}

// CreateSnapshot accepts an arbitrary JSON object and stores it verbatim.
func (h *SalesHandler) CreateSnapshot(c echo.Context) error {
	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		return response.Error(c, errors.BadRequest("Invalid JSON payload", err))
	}

	if err := h.salesUseCase.SaveSnapshot(c.Request().Context(), payload); err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "ok"})
}
