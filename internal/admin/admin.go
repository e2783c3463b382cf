package admin

import (
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/playmatatu/poolsim/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrNoDatabase is returned by queries when the service runs without
// PostgreSQL.
var ErrNoDatabase = errors.New("database not configured")

// MaxPageSize caps ListRecentShots.
const MaxPageSize = 200

// HashToken returns the bcrypt hash stored in ADMIN_TOKEN_HASH.
func HashToken(plainToken string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plainToken), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash token: %w", err)
	}
	return string(hashed), nil
}

// VerifyAdminToken checks if the provided token matches the stored hash
func VerifyAdminToken(hashedToken, plainToken string) bool {
	if hashedToken == "" || plainToken == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashedToken), []byte(plainToken))
	return err == nil
}

// ClampPage normalises limit and offset query values.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListRecentShots returns the shot log, newest first.
func ListRecentShots(db *sqlx.DB, limit, offset int) ([]models.Shot, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}
	limit, offset = ClampPage(limit, offset)

	shots := []models.Shot{}
	query := `
		SELECT id, game_id, shot_number, player_id, vel_x, vel_y, segments, pocketed, created_at
		FROM shots
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	if err := db.Select(&shots, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list shots: %w", err)
	}
	return shots, nil
}

// DeleteGameRecords removes a game and, by cascade, its shots.
func DeleteGameRecords(db *sqlx.DB, gameID string) error {
	if db == nil {
		return ErrNoDatabase
	}
	res, err := db.Exec(`DELETE FROM games WHERE id = $1`, gameID)
	if err != nil {
		return fmt.Errorf("failed to delete game %s: %w", gameID, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Printf("[ADMIN] Deleted game %s records", gameID)
	}
	return nil
}
