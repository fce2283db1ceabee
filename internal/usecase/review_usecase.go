package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sampledash/internal/domain/entity"
	"sampledash/internal/domain/repository"
	"sampledash/pkg/errors"
	"sampledash/pkg/logger"
)

type ReviewUseCase struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewReviewUseCase(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

type SubmitReviewInput struct {
	Username    string
	Rating      int
	Comment     string
	ListingName string
}

// ReviewSummary is a review with every identifier already in string form.
type ReviewSummary struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	ListingID    string    `json:"listing_id"`
	ReviewerID   string    `json:"reviewer_id"`
	ReviewerName string    `json:"reviewer_name"`
	Comments     string    `json:"comments"`
	Rating       int       `json:"rating"`
}

// SubmitReview resolves (or lazily creates) the user, resolves the listing,
// and appends the review to both documents. User resolution runs before the
// listing lookup, so a submission against an unknown listing name can still
// create a user document. The two appends are independent writes with no
// transaction: a failure on the second leaves the listing review without its
// user-side mirror.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, input SubmitReviewInput) ([]ReviewSummary, error) {
	if input.Username == "" {
		return nil, errors.BadRequest("Username is required", nil)
	}
	if input.ListingName == "" {
		return nil, errors.BadRequest("Listing name is required", nil)
	}
	if input.Comment == "" {
		return nil, errors.BadRequest("Review is required", nil)
	}

	user, err := uc.userRepo.GetByName(ctx, input.Username)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			logger.Error("Failed to resolve user %q: %v", input.Username, err)
			return nil, err
		}

		user = &entity.User{Name: input.Username}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			logger.Error("Failed to create user %q: %v", input.Username, err)
			return nil, err
		}
	}

	listing, err := uc.listingRepo.GetByName(ctx, input.ListingName)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			logger.Error("Failed to resolve listing %q: %v", input.ListingName, err)
		}
		return nil, err
	}

	now := time.Now()

	review := &entity.Review{
		ID:           uuid.New().String(),
		Date:         now,
		ListingID:    listing.ID,
		ReviewerID:   user.ID.Hex(),
		ReviewerName: input.Username,
		Comments:     input.Comment,
		Rating:       input.Rating,
	}
	if err := uc.listingRepo.AppendReview(ctx, listing.ID, review); err != nil {
		logger.Error("Failed to append review to listing %q: %v", listing.ID, err)
		return nil, err
	}

	entry := &entity.UserReviewEntry{
		ID:          uuid.New().String(),
		Date:        now,
		ListingID:   listing.ID,
		ListingName: listing.Name,
		Comments:    input.Comment,
		Rating:      input.Rating,
	}
	if err := uc.userRepo.AppendReview(ctx, user.ID, entry); err != nil {
		logger.Error("Failed to append review to user %q: %v", user.ID.Hex(), err)
		return nil, err
	}

	summaries := make([]ReviewSummary, 0, len(listing.Reviews)+1)
	for _, r := range listing.Reviews {
		summaries = append(summaries, simplifyReview(r))
	}
	summaries = append(summaries, simplifyReview(*review))

	return summaries, nil
}

// ListingReviews returns the simplified review list for one listing.
func (uc *ReviewUseCase) ListingReviews(ctx context.Context, listingName string) ([]ReviewSummary, error) {
	if listingName == "" {
		return nil, errors.BadRequest("Listing name is required", nil)
	}

	listing, err := uc.listingRepo.GetByName(ctx, listingName)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			logger.Error("Failed to resolve listing %q: %v", listingName, err)
		}
		return nil, err
	}

	summaries := make([]ReviewSummary, 0, len(listing.Reviews))
	for _, r := range listing.Reviews {
		summaries = append(summaries, simplifyReview(r))
	}

	return summaries, nil
}

func simplifyReview(r entity.Review) ReviewSummary {
	return ReviewSummary{
		ID:           r.ID,
		Date:         r.Date,
		ListingID:    r.ListingID,
		ReviewerID:   r.ReviewerID,
		ReviewerName: r.ReviewerName,
		Comments:     r.Comments,
		Rating:       r.Rating,
	}
}
