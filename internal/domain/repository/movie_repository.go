package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sampledash/internal/domain/entity"
)

// MovieFilter is evaluated by storage: year and imdb.rating ranges are
// inclusive on both ends, rated must be one of the given values, and all
// three predicates are ANDed.
type MovieFilter struct {
	YearFrom int
	YearTo   int
	MinScore float64
	MaxScore float64
	Rated    []string
}

type MovieRepository interface {
	Search(ctx context.Context, filter MovieFilter) ([]*entity.Movie, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error)
}
