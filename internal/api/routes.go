package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/playmatatu/poolsim/internal/api/handlers"
	"github.com/playmatatu/poolsim/internal/config"
	"github.com/playmatatu/poolsim/internal/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *sqlx.DB, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] no-cache headers enabled for all routes")
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		games := v1.Group("/games")
		{
			games.POST("", handlers.CreateGame(cfg))
			games.GET("/:id", handlers.GetGameState())
			games.POST("/:id/shoot", middleware.PlayerAuth(cfg), handlers.TakeShot())
			games.GET("/:id/ws", middleware.WebSocketCORSCheck(cfg), handlers.HandleGameWebSocket())
		}

		adminGroup := v1.Group("/admin", middleware.AdminAuth(cfg))
		{
			adminGroup.GET("/shots", handlers.ListShots(db))
			adminGroup.DELETE("/games/:id", handlers.DeleteGame(db))
		}
	}
}
