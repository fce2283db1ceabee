package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sampledash/internal/domain/entity"
	"sampledash/internal/domain/repository"
	"sampledash/pkg/errors"
)

const (
	airbnbDatabase     = "sample_airbnb"
	listingsCollection = "listingsAndReviews"
)

type mongoListingRepository struct {
	collection *mongo.Collection
}

func NewMongoListingRepository(client *mongo.Client) repository.ListingRepository {
	return &mongoListingRepository{
		collection: client.Database(airbnbDatabase).Collection(listingsCollection),
	}
}

func (r *mongoListingRepository) List(ctx context.Context, limit int) ([]bson.M, error) {
	opts := options.Find().SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Internal("Failed to load listings", err)
	}

	var listings []bson.M
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, errors.Internal("Failed to decode listings", err)
	}

	return listings, nil
}

func (r *mongoListingRepository) GetByName(ctx context.Context, name string) (*entity.Listing, error) {
	var listing entity.Listing
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&listing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	return &listing, nil
}

func (r *mongoListingRepository) AppendReview(ctx context.Context, listingID string, review *entity.Review) error {
	update := bson.M{"$push": bson.M{"reviews": review}}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": listingID}, update)
	if err != nil {
		return errors.Internal("Failed to append review to listing", err)
	}

	return nil
}
