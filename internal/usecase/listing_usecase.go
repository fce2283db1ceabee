package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"sampledash/internal/domain/repository"
	"sampledash/pkg/bsonutil"
	"sampledash/pkg/logger"
)

// listingPageSize is the fixed page for the listings view.
const listingPageSize = 10

type ListingUseCase struct {
	listingRepo repository.ListingRepository
}

func NewListingUseCase(listingRepo repository.ListingRepository) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
	}
}

// ListListings fetches the first page of listings in storage order and
// rewrites every Decimal128 field to its string form for transport.
func (uc *ListingUseCase) ListListings(ctx context.Context) ([]bson.M, error) {
	listings, err := uc.listingRepo.List(ctx, listingPageSize)
	if err != nil {
		logger.Error("Failed to load listings: %v", err)
		return nil, err
	}

	for i := range listings {
		listings[i] = bsonutil.NormalizeDecimals(listings[i])
	}

	return listings, nil
}
