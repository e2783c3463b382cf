package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/playmatatu/poolsim/internal/physics"
)

type Config struct {
	// Environment
	Environment string

	// Database
	DatabaseURL    string
	MigrateOnStart bool

	// Redis
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Game Settings
	GameExpiryMinutes  int
	MaxShotSpeed       float64
	MaxSegmentsPerShot int
	FrameInterval      float64

	// Physics
	PhysicsConfig string

	// Security
	JWTSecret        string
	PlayerTokenHours int
	AdminTokenHash   string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Database
		DatabaseURL:    getEnv("DATABASE_URL", "postgres://localhost:5432/poolsim?sslmode=disable"),
		MigrateOnStart: getEnvBool("MIGRATE_ON_START", false),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Game Settings
		GameExpiryMinutes:  getEnvInt("GAME_EXPIRY_MINUTES", 60),
		MaxShotSpeed:       getEnvFloat("MAX_SHOT_SPEED", 10000),
		MaxSegmentsPerShot: getEnvInt("MAX_SEGMENTS_PER_SHOT", 5000),
		FrameInterval:      getEnvFloat("FRAME_INTERVAL", physics.DefaultFrameInterval),

		// Physics
		PhysicsConfig: getEnv("PHYSICS_CONFIG", ""),

		// Security
		JWTSecret:        getEnv("JWT_SECRET", "change-me-in-production"),
		PlayerTokenHours: getEnvInt("PLAYER_TOKEN_HOURS", 24),
		AdminTokenHash:   getEnv("ADMIN_TOKEN_HASH", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
