package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sampledash/internal/domain/repository"
	"sampledash/pkg/errors"
	"sampledash/pkg/logger"
)

// defaultPosterPath replaces empty or missing poster URLs.
const defaultPosterPath = "/defaultMoviePoster.png"

type MovieUseCase struct {
	movieRepo repository.MovieRepository
}

func NewMovieUseCase(movieRepo repository.MovieRepository) *MovieUseCase {
	return &MovieUseCase{
		movieRepo: movieRepo,
	}
}

type SearchMoviesInput struct {
	YearRange  [2]int
	Ratings    []string
	ScoreRange [2]float64
}

type MovieSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Year   int    `json:"year"`
	Poster string `json:"poster"`
}

// SearchMovies pushes all three predicates to storage and maps the results
// to display summaries.
func (uc *MovieUseCase) SearchMovies(ctx context.Context, input SearchMoviesInput) ([]MovieSummary, error) {
	movies, err := uc.movieRepo.Search(ctx, repository.MovieFilter{
		YearFrom: input.YearRange[0],
		YearTo:   input.YearRange[1],
		MinScore: input.ScoreRange[0],
		MaxScore: input.ScoreRange[1],
		Rated:    input.Ratings,
	})
	if err != nil {
		logger.Error("Failed to search movies: %v", err)
		return nil, err
	}

	summaries := make([]MovieSummary, 0, len(movies))
	for _, movie := range movies {
		summaries = append(summaries, MovieSummary{
			ID:     movie.ID.Hex(),
			Title:  movie.Title,
			Year:   movie.Year,
			Poster: resolvePoster(movie.Poster),
		})
	}

	return summaries, nil
}

// GetMovie returns the full stored document for one movie, with the id in
// hex form and the poster defaulted. Absence is not an error: the result is
// simply nil. A malformed id reports like any other storage failure.
func (uc *MovieUseCase) GetMovie(ctx context.Context, id string) (map[string]interface{}, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Error("Invalid movie id %q: %v", id, err)
		return nil, errors.Internal("Failed to load movie", err)
	}

	movie, err := uc.movieRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, nil
		}
		logger.Error("Failed to load movie %q: %v", id, err)
		return nil, err
	}

	doc := make(map[string]interface{}, len(movie.Extra)+6)
	for key, value := range movie.Extra {
		doc[key] = value
	}
	doc["id"] = movie.ID.Hex()
	doc["title"] = movie.Title
	doc["year"] = movie.Year
	doc["rated"] = movie.Rated
	doc["imdb"] = movie.IMDB
	doc["poster"] = resolvePoster(movie.Poster)

	return doc, nil
}

// resolvePoster is pass-through-or-default; no URL validation happens.
func resolvePoster(url string) string {
	if url == "" {
		return defaultPosterPath
	}
	return url
}
