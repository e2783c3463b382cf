package models

import (
	"time"

	"github.com/lib/pq"
)

// Game is the persisted record of a table session.
type Game struct {
	ID          string    `db:"id" json:"id"`
	Token       string    `db:"token" json:"token"`
	Player1Name string    `db:"player1_name" json:"player1_name"`
	Player2Name string    `db:"player2_name" json:"player2_name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Shot is one simulated shot.
type Shot struct {
	ID         int           `db:"id" json:"id"`
	GameID     string        `db:"game_id" json:"game_id"`
	ShotNumber int           `db:"shot_number" json:"shot_number"`
	PlayerID   string        `db:"player_id" json:"player_id"`
	VelX       float64       `db:"vel_x" json:"vel_x"`
	VelY       float64       `db:"vel_y" json:"vel_y"`
	Segments   int           `db:"segments" json:"segments"`
	Pocketed   pq.Int64Array `db:"pocketed" json:"pocketed"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
}
