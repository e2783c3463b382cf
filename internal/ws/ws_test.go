package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/playmatatu/poolsim/internal/auth"
	"github.com/playmatatu/poolsim/internal/config"
	"github.com/playmatatu/poolsim/internal/game"
	"github.com/playmatatu/poolsim/internal/physics"
)

const testSecret = "ws-test-secret"

func setupServer(t *testing.T) (*httptest.Server, *game.GameState) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:          testSecret,
		GameExpiryMinutes:  60,
		MaxShotSpeed:       10000,
		MaxSegmentsPerShot: 5000,
		FrameInterval:      0.1,
	}
	game.Manager = game.NewGameManager(nil, nil, cfg, physics.DefaultParams())
	SetRedisClient(nil, cfg)

	g, err := game.Manager.CreateGame("Alice", "Bob")
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.GET("/api/v1/games/:id/ws", HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, g
}

func dial(t *testing.T, srv *httptest.Server, gameID, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/games/" + gameID + "/ws?token=" + token
	return websocket.DefaultDialer.Dial(url, nil)
}

// readUntil reads messages until one has the wanted type.
func readUntil(t *testing.T, conn *websocket.Conn, msgType string) map[string]interface{} {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	for {
		var msg map[string]interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("waiting for %s: %v", msgType, err)
		}
		if msg["type"] == msgType {
			return msg
		}
	}
}

func TestWebSocketShotFlow(t *testing.T) {
	srv, g := setupServer(t)

	tok1, _ := auth.IssuePlayerToken(testSecret, g.ID, g.Player1.ID, time.Hour)
	tok2, _ := auth.IssuePlayerToken(testSecret, g.ID, g.Player2.ID, time.Hour)

	c1, _, err := dial(t, srv, g.ID, tok1)
	if err != nil {
		t.Fatal(err)
	}
	defer c1.Close()
	c2, _, err := dial(t, srv, g.ID, tok2)
	if err != nil {
		t.Fatal(err)
	}
	defer c2.Close()

	state := readUntil(t, c1, "game_state")
	if state["my_id"] != g.Player1.ID || state["current_turn"] != g.Player1.ID {
		t.Errorf("initial state = %v", state)
	}
	readUntil(t, c2, "game_state")

	// Out of turn.
	c2.WriteJSON(map[string]interface{}{"type": "take_shot", "data": map[string]float64{"vel_x": 0, "vel_y": -500}})
	if msg := readUntil(t, c2, "error"); msg["message"] != game.ErrNotYourTurn.Error() {
		t.Errorf("error = %v", msg["message"])
	}

	c1.WriteJSON(map[string]interface{}{"type": "take_shot", "data": map[string]float64{"vel_x": 0, "vel_y": -500}})
	for _, conn := range []*websocket.Conn{c1, c2} {
		msg := readUntil(t, conn, "shot_result")
		result, ok := msg["result"].(map[string]interface{})
		if !ok {
			t.Fatalf("shot_result without result: %v", msg)
		}
		if result["next_turn"] != g.Player2.ID {
			t.Errorf("next_turn = %v", result["next_turn"])
		}
	}

	c1.WriteJSON(map[string]interface{}{"type": "bogus"})
	if msg := readUntil(t, c1, "error"); msg["message"] != "Unknown message type" {
		t.Errorf("error = %v", msg["message"])
	}
}

func TestWebSocketRejectsBadTokens(t *testing.T) {
	srv, g := setupServer(t)

	otherGame, _ := auth.IssuePlayerToken(testSecret, "game_other", g.Player1.ID, time.Hour)
	wrongSecret, _ := auth.IssuePlayerToken("nope", g.ID, g.Player1.ID, time.Hour)
	stranger, _ := auth.IssuePlayerToken(testSecret, g.ID, "p9_dead", time.Hour)

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"missing", "", http.StatusBadRequest},
		{"other game", otherGame, http.StatusUnauthorized},
		{"wrong secret", wrongSecret, http.StatusUnauthorized},
		{"stranger", stranger, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, err := dial(t, srv, g.ID, tt.token)
			if err == nil {
				t.Fatal("dial succeeded")
			}
			if resp == nil || resp.StatusCode != tt.status {
				t.Errorf("response = %v, want status %d", resp, tt.status)
			}
		})
	}
}

func TestHubRoomTracking(t *testing.T) {
	h := NewHub()
	c := &Client{playerID: "p1", gameID: "g1", send: make(chan []byte, 1)}
	h.clients["p1"] = c
	h.gameRooms["g1"] = map[string]*Client{"p1": c}

	if h.RoomSize("g1") != 1 || h.RoomSize("g2") != 0 {
		t.Error("unexpected room sizes")
	}

	h.BroadcastToGame("g1", map[string]string{"type": "ping"})
	h.BroadcastToGame("g1", map[string]string{"type": "dropped"})
	if got := string(<-c.send); got != `{"type":"ping"}` {
		t.Errorf("got %s", got)
	}
	select {
	case extra := <-c.send:
		t.Errorf("full buffer should drop, got %s", extra)
	default:
	}
}
