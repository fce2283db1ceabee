package router

import (
	"sampledash/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupSalesRouter(e *echo.Echo) {
	salesHandler := handler.GetSalesHandler()

	sales := e.Group("/api/sales")
	sales.GET("", salesHandler.GetSales)
	sales.POST("", salesHandler.CreateSnapshot)
}
