package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sampledash/internal/adapter/api"
	"sampledash/internal/domain/entity"
	"sampledash/internal/domain/repository"
	"sampledash/internal/usecase"
	"sampledash/pkg/errors"
)

type stubMovieRepo struct {
	movies []*entity.Movie
	byID   map[primitive.ObjectID]*entity.Movie
}

func (s *stubMovieRepo) Search(ctx context.Context, filter repository.MovieFilter) ([]*entity.Movie, error) {
	return s.movies, nil
}

func (s *stubMovieRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	movie, ok := s.byID[id]
	if !ok {
		return nil, errors.NotFound("Movie", nil)
	}
	return movie, nil
}

func movieJSONRequest(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = api.NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSearchMovies(t *testing.T) {
	h := NewMovieHandler(usecase.NewMovieUseCase(&stubMovieRepo{movies: []*entity.Movie{
		{ID: primitive.NewObjectID(), Title: "Shrek", Year: 2001, Rated: "PG"},
	}}))

	c, rec := movieJSONRequest(t,
		`{"yearRange":[2000,2010],"selectedRatings":["PG","PG-13"],"scoreRange":[7,10]}`)

	require.NoError(t, h.SearchMovies(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var movies []usecase.MovieSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, "Shrek", movies[0].Title)
	assert.Equal(t, 2001, movies[0].Year)
	assert.Equal(t, "/defaultMoviePoster.png", movies[0].Poster)
}

func TestSearchMoviesRejectsBadRanges(t *testing.T) {
	h := NewMovieHandler(usecase.NewMovieUseCase(&stubMovieRepo{}))

	c, rec := movieJSONRequest(t,
		`{"yearRange":[2000],"selectedRatings":["PG"],"scoreRange":[7,10]}`)

	require.NoError(t, h.SearchMovies(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestGetMovieDetail(t *testing.T) {
	id := primitive.NewObjectID()
	h := NewMovieHandler(usecase.NewMovieUseCase(&stubMovieRepo{byID: map[primitive.ObjectID]*entity.Movie{
		id: {ID: id, Title: "Shrek", Year: 2001, Rated: "PG"},
	}}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	require.NoError(t, h.GetMovie(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var movie map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movie))
	assert.Equal(t, id.Hex(), movie["id"])
	assert.Equal(t, "Shrek", movie["title"])
}

func TestGetMovieAbsent(t *testing.T) {
	h := NewMovieHandler(usecase.NewMovieUseCase(&stubMovieRepo{byID: map[primitive.ObjectID]*entity.Movie{}}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(primitive.NewObjectID().Hex())

	require.NoError(t, h.GetMovie(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}
