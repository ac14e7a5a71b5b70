package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/vidhive/backend/internal/handlers"
	"github.com/vidhive/backend/internal/middleware"
	"github.com/vidhive/backend/internal/models"
	"github.com/vidhive/backend/internal/repositories"
	"github.com/vidhive/backend/internal/views"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Like{},
		&models.Subscription{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	mongoDB := mgClient.Database("vidhive")
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	videoRepo := repositories.NewMongoVideoRepository(mongoDB)
	commentRepo := repositories.NewMongoCommentRepository(mongoDB)
	tweetRepo := repositories.NewMongoTweetRepository(mongoDB)
	playlistRepo := repositories.NewMongoPlaylistRepository(mongoDB)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	subscriptionRepo := repositories.NewPostgresSubscriptionRepository(pgdb)

	// --- View-composition engine over the repositories ---
	viewService := views.NewService(views.Sources{
		Users:         userRepo,
		Videos:        videoRepo,
		Comments:      commentRepo,
		Tweets:        tweetRepo,
		Likes:         likeRepo,
		Subscriptions: subscriptionRepo,
		Playlists:     playlistRepo,
	})

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	api.GET("/users/search", userHandler.SearchUsers)
	log.Println("User profile routes configured.")

	// Video routes
	videoHandler := handlers.NewVideoHandler(videoRepo, viewService)
	videoHandler.RegisterVideoRoutes(api)
	log.Println("Video routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, videoRepo, viewService)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Tweet routes
	tweetHandler := handlers.NewTweetHandler(tweetRepo, viewService)
	tweetHandler.RegisterTweetRoutes(api)
	log.Println("Tweet routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(viewService)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Subscription routes
	subscriptionHandler := handlers.NewSubscriptionHandler(viewService)
	subscriptionHandler.RegisterSubscriptionRoutes(api)
	log.Println("Subscription routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(viewService)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	// Playlist routes
	playlistHandler := handlers.NewPlaylistHandler(playlistRepo, videoRepo, viewService)
	playlistHandler.RegisterPlaylistRoutes(api)
	log.Println("Playlist routes configured.")

	// Dashboard routes
	dashboardHandler := handlers.NewDashboardHandler(viewService)
	dashboardHandler.RegisterDashboardRoutes(api)
	log.Println("Dashboard routes configured.")

	log.Println("All routes configured.")
}
