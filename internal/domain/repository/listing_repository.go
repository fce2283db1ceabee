package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"sampledash/internal/domain/entity"
)

type ListingRepository interface {
	// List returns up to limit raw listing documents in storage order.
	// Raw documents, not entities: the listings page renders every stored
	// field and only rewrites Decimal128 values on the way out.
	List(ctx context.Context, limit int) ([]bson.M, error)

	// GetByName resolves a listing by exact name match.
	GetByName(ctx context.Context, name string) (*entity.Listing, error)

	// AppendReview pushes a review onto the listing's embedded reviews array.
	AppendReview(ctx context.Context, listingID string, review *entity.Review) error
}
