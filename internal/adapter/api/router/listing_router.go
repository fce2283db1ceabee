package router

import (
	"sampledash/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupListingRouter(e *echo.Echo) {
	listingHandler := handler.GetListingHandler()

	listings := e.Group("/api/listings")
	listings.GET("", listingHandler.GetListings)
	listings.GET("/:name/reviews", listingHandler.GetListingReviews)
	listings.POST("/reviews", listingHandler.SubmitReview)
}
