package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"sotrama/internal/handler"
	"sotrama/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AgencyHandler      *handler.AgencyHandler
	TripHandler        *handler.TripHandler
	ReservationHandler *handler.ReservationHandler
	SessionHandler     *handler.SessionHandler
	FavoriteHandler    *handler.FavoriteHandler
	ArtisanHandler     *handler.ArtisanHandler
	RedisClient        *redis.Client
	NewRelicApp        *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware())

	// The transaction rides the request context so the Redis hook can
	// attach datastore segments to it.
	if deps.NewRelicApp != nil {
		router.Use(middleware.NewRelicMiddleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Agency routes.
		agencies := v1.Group("/agencies")
		{
			agencies.GET("", deps.AgencyHandler.GetAll)
			agencies.GET("/:id", deps.AgencyHandler.Get)
		}

		// Trip catalog routes.
		trips := v1.Group("/trips")
		{
			trips.GET("", deps.TripHandler.GetAll)
			trips.GET("/:id", deps.TripHandler.Get)
			trips.POST("/sync", deps.TripHandler.Sync)
		}

		// Reservation routes.
		reservations := v1.Group("/reservations")
		{
			reservations.POST("", deps.ReservationHandler.Create)
			reservations.GET("", deps.ReservationHandler.GetAll)
			reservations.GET("/:id", deps.ReservationHandler.Get)
			reservations.DELETE("/:id", deps.ReservationHandler.Cancel)
			reservations.POST("/:id/pay", deps.ReservationHandler.Pay)
			reservations.GET("/:id/ticket", deps.ReservationHandler.Ticket)
		}

		// Session routes.
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", deps.SessionHandler.Login)
			sessions.GET("/:phone", deps.SessionHandler.Get)
			sessions.PUT("/:phone/language", deps.SessionHandler.SetLanguage)
			sessions.DELETE("/:phone", deps.SessionHandler.Logout)
		}

		// Favorite routes.
		favorites := v1.Group("/favorites")
		{
			favorites.GET("/:phone", deps.FavoriteHandler.List)
			favorites.POST("/:phone", deps.FavoriteHandler.Add)
			favorites.DELETE("/:phone/:tripId", deps.FavoriteHandler.Remove)
		}

		// Artisan directory routes.
		artisans := v1.Group("/artisans")
		{
			artisans.GET("", deps.ArtisanHandler.GetAll)
			artisans.GET("/:id", deps.ArtisanHandler.Get)
			artisans.GET("/:id/comments", deps.ArtisanHandler.Comments)
			artisans.POST("/:id/comments", deps.ArtisanHandler.AddComment)
		}
	}

	return router
}
