package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sampledash/internal/usecase"
	"sampledash/pkg/errors"
	"sampledash/pkg/response"
)

type MovieHandler struct {
	movieUseCase *usecase.MovieUseCase
}

func NewMovieHandler(movieUseCase *usecase.MovieUseCase) *MovieHandler {
	return &MovieHandler{
		movieUseCase: movieUseCase,
	}
}

type searchMoviesRequest struct {
	YearRange       []int     `json:"yearRange" validate:"required,len=2"`
	SelectedRatings []string  `json:"selectedRatings" validate:"required"`
	ScoreRange      []float64 `json:"scoreRange" validate:"required,len=2"`
}

func (h *MovieHandler) SearchMovies(c echo.Context) error {
	var req searchMoviesRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	movies, err := h.movieUseCase.SearchMovies(c.Request().Context(), usecase.SearchMoviesInput{
		YearRange:  [2]int{req.YearRange[0], req.YearRange[1]},
		Ratings:    req.SelectedRatings,
		ScoreRange: [2]float64{req.ScoreRange[0], req.ScoreRange[1]},
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, movies)
}

// GetMovie serves the movie detail page payload. An unknown id yields an
// empty object, not an error.
func (h *MovieHandler) GetMovie(c echo.Context) error {
	movie, err := h.movieUseCase.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if movie == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{})
	}

	return c.JSON(http.StatusOK, movie)
}
