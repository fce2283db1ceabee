package router

import (
	"sampledash/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupMovieRouter(e *echo.Echo) {
	movieHandler := handler.GetMovieHandler()

	movies := e.Group("/api/movies")
	movies.POST("", movieHandler.SearchMovies)
	movies.GET("/:id", movieHandler.GetMovie)
}
