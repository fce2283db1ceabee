package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sampledash/internal/adapter/api"
	"sampledash/internal/adapter/api/handler"
	"sampledash/internal/adapter/api/router"
	"sampledash/internal/adapter/repository"
	"sampledash/internal/infrastructure/mongodb"
	"sampledash/internal/usecase"
	"sampledash/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	mongoClient, err := mongodb.NewClient(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	listingRepo := repository.NewMongoListingRepository(mongoClient)
	userRepo := repository.NewMongoUserRepository(mongoClient)
	saleRepo := repository.NewMongoSaleRepository(mongoClient)
	snapshotRepo := repository.NewMongoSnapshotRepository(mongoClient)
	movieRepo := repository.NewMongoMovieRepository(mongoClient)

	listingUseCase := usecase.NewListingUseCase(listingRepo)
	reviewUseCase := usecase.NewReviewUseCase(listingRepo, userRepo)
	salesUseCase := usecase.NewSalesUseCase(saleRepo, snapshotRepo)
	movieUseCase := usecase.NewMovieUseCase(movieRepo)

	handler.Setup(listingUseCase, reviewUseCase, salesUseCase, movieUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
