package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ksugita/tenrankai/configs"
	"github.com/ksugita/tenrankai/controller"
	"github.com/ksugita/tenrankai/helpers"
	"github.com/ksugita/tenrankai/migrations"
	"github.com/ksugita/tenrankai/repository"
	"github.com/ksugita/tenrankai/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := configs.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoDBURI))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to mongo")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(ctx)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping mongo")
	}

	if err := migrations.EnsureMembershipIndexes(ctx, mongoClient, cfg.DatabaseName); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure indexes")
	}

	museumRepository := repository.NewMuseumRepository(mongoClient, cfg.DatabaseName)
	exhibitionRepository := repository.NewExhibitionRepository(mongoClient, cfg.DatabaseName)
	userRepository := repository.NewUserRepository(mongoClient, cfg.DatabaseName)
	favoriteRepository := repository.NewFavoriteRepository(mongoClient, cfg.DatabaseName)
	bookmarkRepository := repository.NewBookmarkRepository(mongoClient, cfg.DatabaseName)

	transactions := service.NewMongoTransactionRunner(mongoClient)

	catalogService := service.NewCatalogService(museumRepository, exhibitionRepository, cfg.Location())
	userService := service.NewUserService(userRepository)
	favoriteService := service.NewFavoriteService(favoriteRepository, userRepository, museumRepository, transactions, cfg.FreeFavoriteLimit)
	bookmarkService := service.NewBookmarkService(bookmarkRepository, userRepository, exhibitionRepository, transactions)

	verifier, err := helpers.NewIDTokenVerifier(context.Background(), cfg.TokenAudience)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create token verifier")
	}

	museumController := &controller.MuseumController{CatalogService: catalogService}
	userController := &controller.UserController{UserService: userService}
	favoriteController := &controller.FavoriteController{FavoriteService: favoriteService}
	bookmarkController := &controller.BookmarkController{BookmarkService: bookmarkService}

	rateLimiter := helpers.NewRateLimiter(cfg.ToggleRatePerMin)

	r := gin.New()
	r.Use(gin.Recovery(), helpers.RequestLogger(), helpers.Metrics())

	r.GET("/healthz", func(ctx *gin.Context) {
		if err := mongoClient.Ping(ctx.Request.Context(), readpref.Primary()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", helpers.MetricsHandler())

	api := r.Group("/api")
	api.GET("/museums", museumController.List)
	api.GET("/museums/suggest", museumController.Suggest)

	authorized := api.Group("", helpers.Authenticate(verifier))
	authorized.GET("/auth/user", userController.Me)
	authorized.PATCH("/auth/user", userController.Update)
	authorized.GET("/favorites", favoriteController.List)
	authorized.POST("/favorites", rateLimiter.Limit(), favoriteController.Toggle)
	authorized.GET("/bookmarks", bookmarkController.List)
	authorized.POST("/bookmarks", rateLimiter.Limit(), bookmarkController.Toggle)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
}
