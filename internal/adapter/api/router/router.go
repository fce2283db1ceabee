package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupHealthRouter(e)
	SetupListingRouter(e)
	SetupSalesRouter(e)
	SetupMovieRouter(e)
}
