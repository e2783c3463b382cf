package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/playmatatu/poolsim/internal/api"
	"github.com/playmatatu/poolsim/internal/config"
	"github.com/playmatatu/poolsim/internal/database"
	"github.com/playmatatu/poolsim/internal/game"
	"github.com/playmatatu/poolsim/internal/migrations"
	"github.com/playmatatu/poolsim/internal/redis"
	"github.com/playmatatu/poolsim/internal/ws"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	// Initialize configuration (also reads .env)
	cfg := config.Load()

	params, err := config.LoadPhysics(cfg.PhysicsConfig)
	if err != nil {
		log.Fatalf("Failed to load physics config: %v", err)
	}
	log.Printf("[PHYSICS] Table %.0fx%.0f, ball radius %.1f, sim rate %g",
		params.TableWidth, params.TableLength, params.BallRadius, params.SimRate)

	// Initialize database. The shot log is optional.
	var db *sqlx.DB
	if cfg.DatabaseURL != "" {
		if cfg.MigrateOnStart {
			log.Println("↗ Running DB migrations on startup...")
			if err := migrations.RunMigrations(cfg.DatabaseURL); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		}
		db, err = database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Printf("[DB] Failed to connect, shot log disabled: %v", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	// Initialize Redis. Without it games live in this process only.
	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redis.Connect(cfg.RedisURL)
		if err != nil {
			log.Printf("[REDIS] Failed to connect, running in memory mode: %v", err)
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	game.InitializeManager(db, rdb, cfg, params)

	// Wire Redis and start the shot event subscriber in the WS layer
	ws.SetRedisClient(rdb, cfg)
	ws.StartShotEventSubscriber(context.Background())

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	api.SetupRoutes(router, db, cfg)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting poolsim server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
