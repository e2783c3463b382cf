package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
	"github.com/playmatatu/poolsim/internal/physics"
	"github.com/redis/go-redis/v9"
)

// persistedGame is the Redis form of a GameState.
type persistedGame struct {
	ID           string           `json:"id"`
	Token        string           `json:"token"`
	Player1      Player           `json:"player1"`
	Player2      Player           `json:"player2"`
	CurrentTurn  string           `json:"current_turn"`
	Status       GameStatus       `json:"status"`
	Winner       string           `json:"winner,omitempty"`
	ShotNumber   int              `json:"shot_number"`
	Params       physics.Params   `json:"params"`
	Table        physics.Snapshot `json:"table"`
	CreatedAt    time.Time        `json:"created_at"`
	LastActivity time.Time        `json:"last_activity"`
}

func gameKey(gameID string) string {
	return "game:" + gameID + ":state"
}

func (g *GameState) marshalState() ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return json.Marshal(persistedGame{
		ID:           g.ID,
		Token:        g.Token,
		Player1:      *g.Player1,
		Player2:      *g.Player2,
		CurrentTurn:  g.CurrentTurn,
		Status:       g.Status,
		Winner:       g.Winner,
		ShotNumber:   g.ShotNumber,
		Params:       g.Table.Params,
		Table:        g.Table.Snapshot(),
		CreatedAt:    g.CreatedAt,
		LastActivity: g.LastActivity,
	})
}

func unmarshalState(data []byte) (*GameState, error) {
	var pg persistedGame
	if err := json.Unmarshal(data, &pg); err != nil {
		return nil, err
	}
	table, err := pg.Table.Table(pg.Params)
	if err != nil {
		return nil, err
	}
	p1, p2 := pg.Player1, pg.Player2
	return &GameState{
		ID:           pg.ID,
		Token:        pg.Token,
		Player1:      &p1,
		Player2:      &p2,
		CurrentTurn:  pg.CurrentTurn,
		Status:       pg.Status,
		Winner:       pg.Winner,
		ShotNumber:   pg.ShotNumber,
		Table:        table,
		CreatedAt:    pg.CreatedAt,
		LastActivity: pg.LastActivity,
	}, nil
}

// SaveGame writes the game to Redis with the configured expiry.
func (gm *GameManager) SaveGame(g *GameState) error {
	if gm.rdb == nil {
		return nil
	}

	data, err := g.marshalState()
	if err != nil {
		return fmt.Errorf("failed to marshal game %s: %w", g.ID, err)
	}

	ttl := time.Duration(gm.config.GameExpiryMinutes) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}
	return gm.rdb.SetEx(context.Background(), gameKey(g.ID), data, ttl).Err()
}

func (gm *GameManager) loadGameFromRedis(gameID string) (*GameState, error) {
	if gm.rdb == nil {
		return nil, errors.New("no redis client")
	}

	data, err := gm.rdb.Get(context.Background(), gameKey(gameID)).Bytes()
	if err == redis.Nil {
		return nil, errors.New("game not found in redis")
	}
	if err != nil {
		return nil, err
	}
	return unmarshalState(data)
}

func (gm *GameManager) deleteGameFromRedis(gameID string) (bool, error) {
	if gm.rdb == nil {
		return false, nil
	}
	n, err := gm.rdb.Del(context.Background(), gameKey(gameID)).Result()
	return n > 0, err
}

// recordGame inserts the games row the shot log hangs off.
func (gm *GameManager) recordGame(g *GameState) {
	if gm == nil || gm.db == nil {
		return
	}
	_, err := gm.db.Exec(
		`INSERT INTO games (id, token, player1_name, player2_name, created_at) VALUES ($1,$2,$3,$4,$5) ON CONFLICT (id) DO NOTHING`,
		g.ID, g.Token, g.Player1.Name, g.Player2.Name, g.CreatedAt,
	)
	if err != nil {
		log.Printf("[DB] Failed to record game %s: %v", g.ID, err)
	}
}

// RecordShot appends a shot to the shot log.
func (gm *GameManager) RecordShot(gameID string, result *ShotResult) {
	if gm == nil || gm.db == nil || result == nil {
		return
	}

	pocketed := make(pq.Int64Array, 0, len(result.PocketedBalls))
	for _, n := range result.PocketedBalls {
		pocketed = append(pocketed, int64(n))
	}

	_, err := gm.db.Exec(
		`INSERT INTO shots (game_id, shot_number, player_id, vel_x, vel_y, segments, pocketed, created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())`,
		gameID, result.ShotNumber, result.Player, result.Velocity.X, result.Velocity.Y, result.Segments, pocketed,
	)
	if err != nil {
		log.Printf("[DB] Failed to record shot %d for game %s: %v", result.ShotNumber, gameID, err)
	}
}
