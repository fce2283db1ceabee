package handler

import (
	"sampledash/internal/usecase"
)

var (
	listingHandler *ListingHandler
	salesHandler   *SalesHandler
	movieHandler   *MovieHandler
	healthHandler  *HealthHandler
)

func Setup(
	listingUseCase *usecase.ListingUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	salesUseCase *usecase.SalesUseCase,
	movieUseCase *usecase.MovieUseCase,
) {
	listingHandler = NewListingHandler(listingUseCase, reviewUseCase)
	salesHandler = NewSalesHandler(salesUseCase)
	movieHandler = NewMovieHandler(movieUseCase)
	healthHandler = NewHealthHandler()
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetSalesHandler() *SalesHandler {
	return salesHandler
}

func GetMovieHandler() *MovieHandler {
	return movieHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
