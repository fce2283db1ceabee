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
	suppliesDatabase = "sample_supplies"
	salesCollection  = "sales"
)

type mongoSaleRepository struct {
	collection *mongo.Collection
}

func NewMongoSaleRepository(client *mongo.Client) repository.SaleRepository {
	return &mongoSaleRepository{
		collection: client.Database(suppliesDatabase).Collection(salesCollection),
	}
}

func (r *mongoSaleRepository) List(ctx context.Context, limit int) ([]*entity.Sale, error) {
	opts := options.Find().SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Internal("Failed to fetch sales data", err)
	}

	var sales []*entity.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, errors.Internal("Failed to decode sales data", err)
	}

	return sales, nil
}
