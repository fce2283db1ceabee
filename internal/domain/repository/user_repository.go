package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sampledash/internal/domain/entity"
)

type UserRepository interface {
	GetByName(ctx context.Context, name string) (*entity.User, error)

	// Create inserts the user and fills in the storage-assigned id.
	Create(ctx context.Context, user *entity.User) error

	// AppendReview pushes an entry onto the user's embedded reviews array.
	AppendReview(ctx context.Context, userID primitive.ObjectID, entry *entity.UserReviewEntry) error
}
