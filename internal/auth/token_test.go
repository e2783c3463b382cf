package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestPlayerTokenRoundTrip(t *testing.T) {
	token, err := IssuePlayerToken("secret", "game_abc", "p1_1234", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := ParsePlayerToken("secret", token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.GameID != "game_abc" || claims.PlayerID != "p1_1234" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParsePlayerTokenRejects(t *testing.T) {
	good, _ := IssuePlayerToken("secret", "g", "p", time.Hour)
	expired, _ := IssuePlayerToken("secret", "g", "p", -time.Minute)

	noGame := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"player_id": "p",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	noGameSigned, _ := noGame.SignedString([]byte("secret"))

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"game_id": "g", "player_id": "p"})
	noneSigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name, secret, token string
	}{
		{"wrong secret", "other", good},
		{"expired", "secret", expired},
		{"missing game", "secret", noGameSigned},
		{"unsigned", "secret", noneSigned},
		{"garbage", "secret", "not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePlayerToken(tt.secret, tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}
