package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/playmatatu/poolsim/internal/config"
	"github.com/playmatatu/poolsim/internal/physics"
	"github.com/redis/go-redis/v9"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns every live table. Redis and PostgreSQL are optional;
// without them games live in memory only.
type GameManager struct {
	games  map[string]*GameState // keyed by game ID
	rdb    *redis.Client         // Redis client for live state
	db     *sqlx.DB              // SQL DB for the shot log
	config *config.Config        // Application config
	params physics.Params        // Table constants for new games
	mu     sync.RWMutex
}

var (
	// Global game manager instance
	Manager *GameManager
)

// InitializeManager initializes the global game manager and starts the
// expiry checker.
func InitializeManager(db *sqlx.DB, rdb *redis.Client, cfg *config.Config, params physics.Params) {
	Manager = NewGameManager(db, rdb, cfg, params)
	go Manager.StartExpiryChecker()
}

// NewGameManager creates a new game manager
func NewGameManager(db *sqlx.DB, rdb *redis.Client, cfg *config.Config, params physics.Params) *GameManager {
	if cfg == nil {
		cfg = &config.Config{
			GameExpiryMinutes:  60,
			MaxShotSpeed:       10000,
			MaxSegmentsPerShot: 5000,
			FrameInterval:      physics.DefaultFrameInterval,
		}
	}
	return &GameManager{
		games:  make(map[string]*GameState),
		rdb:    rdb,
		db:     db,
		config: cfg,
		params: params,
	}
}

// generateToken generates a secure random token
func generateToken(length int) string {
	bytes := make([]byte, length)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// generateGameID generates a unique game ID
func generateGameID() string {
	return "game_" + generateToken(8)
}

func (gm *GameManager) GetConfig() *config.Config {
	return gm.config
}

func (gm *GameManager) Params() physics.Params {
	return gm.params
}

// ShotOptions returns the simulation bounds configured for shots.
func (gm *GameManager) ShotOptions() ShotOptions {
	return ShotOptions{
		MaxShotSpeed:  gm.config.MaxShotSpeed,
		MaxSegments:   gm.config.MaxSegmentsPerShot,
		FrameInterval: gm.config.FrameInterval,
	}
}

// CreateGame racks a new table for two players.
func (gm *GameManager) CreateGame(player1Name, player2Name string) (*GameState, error) {
	if player1Name == "" {
		player1Name = "Player1"
	}
	if player2Name == "" {
		player2Name = "Player2"
	}

	g := NewGame(
		generateGameID(), generateToken(16),
		"p1_"+generateToken(4), player1Name,
		"p2_"+generateToken(4), player2Name,
		gm.params,
	)

	gm.mu.Lock()
	gm.games[g.ID] = g
	gm.mu.Unlock()

	if err := gm.SaveGame(g); err != nil {
		log.Printf("[REDIS] Failed to save new game %s: %v", g.ID, err)
	}
	gm.recordGame(g)

	log.Printf("[GAME] Game created: %s (%s vs %s)", g.ID, player1Name, player2Name)
	return g, nil
}

// GetGame retrieves a game by ID, from memory first and then Redis.
func (gm *GameManager) GetGame(gameID string) (*GameState, error) {
	gm.mu.RLock()
	g, exists := gm.games[gameID]
	gm.mu.RUnlock()
	if exists {
		return g, nil
	}

	g, err := gm.loadGameFromRedis(gameID)
	if err != nil {
		return nil, ErrGameNotFound
	}

	log.Printf("[REDIS] Loaded game %s from Redis", gameID)
	gm.mu.Lock()
	if cur, ok := gm.games[gameID]; ok {
		g = cur
	} else {
		gm.games[gameID] = g
	}
	gm.mu.Unlock()
	return g, nil
}

// TakeShot plays a shot on a managed game, persists the new state and logs
// the shot.
func (gm *GameManager) TakeShot(gameID, playerID string, vel physics.Vec2) (*ShotResult, error) {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	result, err := g.TakeShot(playerID, vel, gm.ShotOptions())
	if err != nil {
		return nil, err
	}
	if err := gm.SaveGame(g); err != nil {
		log.Printf("[REDIS] Failed to save game %s: %v", g.ID, err)
	}
	gm.RecordShot(g.ID, result)
	return result, nil
}

// EndGame removes a game from memory and Redis.
func (gm *GameManager) EndGame(gameID string) error {
	gm.mu.Lock()
	g, exists := gm.games[gameID]
	delete(gm.games, gameID)
	gm.mu.Unlock()

	if exists {
		g.Cancel()
	}
	removed, err := gm.deleteGameFromRedis(gameID)
	if err != nil {
		log.Printf("[REDIS] Failed to delete game %s: %v", gameID, err)
	}
	if !exists && !removed {
		return ErrGameNotFound
	}
	return nil
}

// Forget drops the in-memory copy of a game so the next GetGame reloads it
// from Redis.
func (gm *GameManager) Forget(gameID string) {
	if gm.rdb == nil {
		return
	}
	gm.mu.Lock()
	delete(gm.games, gameID)
	gm.mu.Unlock()
}

// GetActiveGameCount returns the number of games held in memory.
func (gm *GameManager) GetActiveGameCount() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

// StartExpiryChecker runs a background job that drops idle games from memory.
func (gm *GameManager) StartExpiryChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		gm.checkExpiredGames(time.Now())
	}
}

// checkExpiredGames evicts games idle for longer than GameExpiryMinutes.
// Redis keeps them until their own TTL runs out.
func (gm *GameManager) checkExpiredGames(now time.Time) int {
	maxIdle := time.Duration(gm.config.GameExpiryMinutes) * time.Minute
	if maxIdle <= 0 {
		return 0
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	evicted := 0
	for id, g := range gm.games {
		g.mu.RLock()
		idle := now.Sub(g.LastActivity)
		g.mu.RUnlock()
		if idle > maxIdle {
			delete(gm.games, id)
			evicted++
			log.Printf("[GAME] Game %s expired after %s idle", id, idle.Round(time.Second))
		}
	}
	return evicted
}
