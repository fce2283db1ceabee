package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"sampledash/internal/domain/entity"
	"sampledash/internal/domain/repository"
	"sampledash/pkg/errors"
)

const (
	mflixDatabase    = "sample_mflix"
	moviesCollection = "movies"
)

type mongoMovieRepository struct {
	collection *mongo.Collection
}

func NewMongoMovieRepository(client *mongo.Client) repository.MovieRepository {
	return &mongoMovieRepository{
		collection: client.Database(mflixDatabase).Collection(moviesCollection),
	}
}

func (r *mongoMovieRepository) Search(ctx context.Context, filter repository.MovieFilter) ([]*entity.Movie, error) {
	query := bson.M{
		"$and": bson.A{
			bson.M{"year": bson.M{"$gte": filter.YearFrom, "$lte": filter.YearTo}},
			bson.M{"imdb.rating": bson.M{"$gte": filter.MinScore, "$lte": filter.MaxScore}},
			bson.M{"rated": bson.M{"$in": filter.Rated}},
		},
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, errors.Internal("Failed to search movies", err)
	}

	var movies []*entity.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, errors.Internal("Failed to decode movies", err)
	}

	return movies, nil
}

func (r *mongoMovieRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	var movie entity.Movie
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Movie", err)
		}
		return nil, errors.Internal("Failed to get movie", err)
	}

	return &movie, nil
}
