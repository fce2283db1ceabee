package handler

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"sampledash/internal/usecase"
	"sampledash/pkg/errors"
	"sampledash/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
	reviewUseCase  *usecase.ReviewUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase, reviewUseCase *usecase.ReviewUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
		reviewUseCase:  reviewUseCase,
	}
}

type listingsResponse struct {
	Listings []bson.M `json:"listings"`
	Error    string   `json:"error,omitempty"`
}

// GetListings is a page-load shaped endpoint: failures come back as 200 with
// an empty list and an error marker, never as a thrown 500.
func (h *ListingHandler) GetListings(c echo.Context) error {
	listings, err := h.listingUseCase.ListListings(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, listingsResponse{
			Listings: []bson.M{},
			Error:    "Failed to load listings",
		})
	}

	return c.JSON(http.StatusOK, listingsResponse{Listings: listings})
}

type submitReviewResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Reviews []usecase.ReviewSummary `json:"reviews,omitempty"`
}

// SubmitReview is the review form action. Form fields: username, rating,
// review, listingName.
func (h *ListingHandler) SubmitReview(c echo.Context) error {
	rating, _ := strconv.Atoi(c.FormValue("rating"))

	reviews, err := h.reviewUseCase.SubmitReview(c.Request().Context(), usecase.SubmitReviewInput{
		Username:    c.FormValue("username"),
		Rating:      rating,
		Comment:     c.FormValue("review"),
		ListingName: c.FormValue("listingName"),
	})
	if err != nil {
		return c.JSON(http.StatusOK, submitReviewResponse{
			Success: false,
			Message: submitReviewMessage(err),
		})
	}

	return c.JSON(http.StatusOK, submitReviewResponse{
		Success: true,
		Message: "Review submitted",
		Reviews: reviews,
	})
}

// submitReviewMessage surfaces validation and lookup messages; storage
// failures collapse to a generic message with no detail of which step failed.
func submitReviewMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && (appErr.Code == "BAD_REQUEST" || appErr.Code == "NOT_FOUND") {
		return appErr.Message
	}
	return "Failed to submit review"
}

func (h *ListingHandler) GetListingReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListingReviews(c.Request().Context(), c.Param("name"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, reviews)
}
