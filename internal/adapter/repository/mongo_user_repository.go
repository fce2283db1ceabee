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
	courseDatabase  = "dwdd-3780"
	usersCollection = "users"
)

type mongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(client *mongo.Client) repository.UserRepository {
	return &mongoUserRepository{
		collection: client.Database(courseDatabase).Collection(usersCollection),
	}
}

func (r *mongoUserRepository) GetByName(ctx context.Context, name string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	return &user, nil
}

func (r *mongoUserRepository) Create(ctx context.Context, user *entity.User) error {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}

func (r *mongoUserRepository) AppendReview(ctx context.Context, userID primitive.ObjectID, entry *entity.UserReviewEntry) error {
	update := bson.M{"$push": bson.M{"reviews": entry}}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return errors.Internal("Failed to append review to user", err)
	}

	return nil
}
