package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or
// claim checks.
var ErrInvalidToken = errors.New("invalid token")

// PlayerClaims identifies one seat at one table.
type PlayerClaims struct {
	GameID   string
	PlayerID string
}

// IssuePlayerToken signs an HS256 token for playerID at gameID.
func IssuePlayerToken(secret, gameID, playerID string, ttl time.Duration) (string, error) {
	exp := time.Now().Add(ttl)
	claims := jwt.MapClaims{
		"game_id":   gameID,
		"player_id": playerID,
		"exp":       jwt.NewNumericDate(exp).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParsePlayerToken validates token and returns its claims.
func ParsePlayerToken(secret, token string) (*PlayerClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	gameID, _ := claims["game_id"].(string)
	playerID, _ := claims["player_id"].(string)
	if gameID == "" || playerID == "" {
		return nil, fmt.Errorf("%w: missing claims", ErrInvalidToken)
	}
	return &PlayerClaims{GameID: gameID, PlayerID: playerID}, nil
}
