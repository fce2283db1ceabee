package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"sampledash/internal/domain/repository"
	"sampledash/pkg/errors"
)

const snapshotsCollection = "snapshots"

type mongoSnapshotRepository struct {
	collection *mongo.Collection
}

func NewMongoSnapshotRepository(client *mongo.Client) repository.SnapshotRepository {
	return &mongoSnapshotRepository{
		collection: client.Database(courseDatabase).Collection(snapshotsCollection),
	}
}

func (r *mongoSnapshotRepository) Insert(ctx context.Context, payload map[string]interface{}) error {
	_, err := r.collection.InsertOne(ctx, bson.M(payload))
	if err != nil {
		return errors.Internal("Failed to store snapshot", err)
	}

	return nil
}
