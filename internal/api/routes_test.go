package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/poolsim/internal/admin"
	"github.com/playmatatu/poolsim/internal/config"
	"github.com/playmatatu/poolsim/internal/game"
	"github.com/playmatatu/poolsim/internal/physics"
	"github.com/playmatatu/poolsim/internal/ws"
)

type createdGame struct {
	GameID  string `json:"game_id"`
	Players []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Token string `json:"token"`
	} `json:"players"`
}

func setupRouter(t *testing.T, adminHash string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment:        "production",
		FrontendURL:        "https://pool.example.com",
		JWTSecret:          "api-test-secret",
		PlayerTokenHours:   1,
		GameExpiryMinutes:  60,
		MaxShotSpeed:       10000,
		MaxSegmentsPerShot: 5000,
		FrameInterval:      0.1,
		AdminTokenHash:     adminHash,
	}
	game.Manager = game.NewGameManager(nil, nil, cfg, physics.DefaultParams())
	ws.SetRedisClient(nil, cfg)

	r := gin.New()
	SetupRoutes(r, nil, cfg)
	return r
}

func do(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doAdmin(r *gin.Engine, method, path, adminToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if adminToken != "" {
		req.Header.Set("X-Admin-Token", adminToken)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createGame(t *testing.T, r *gin.Engine) createdGame {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/games", "", map[string]string{"player1_name": "Alice", "player2_name": "Bob"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	var g createdGame
	if err := json.Unmarshal(w.Body.Bytes(), &g); err != nil {
		t.Fatal(err)
	}
	if g.GameID == "" || len(g.Players) != 2 {
		t.Fatalf("unexpected create response: %s", w.Body.String())
	}
	return g
}

func TestHealth(t *testing.T) {
	r := setupRouter(t, "")
	w := do(r, http.MethodGet, "/api/v1/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "ok" || body["active_games"] != float64(0) {
		t.Errorf("health = %v", body)
	}
}

func TestCreateAndGetGame(t *testing.T) {
	r := setupRouter(t, "")
	g := createGame(t, r)

	if g.Players[0].Name != "Alice" || g.Players[1].Name != "Bob" {
		t.Errorf("players = %+v", g.Players)
	}
	if g.Players[0].Token == "" || g.Players[0].Token == g.Players[1].Token {
		t.Error("each player should get a distinct token")
	}

	w := do(r, http.MethodGet, "/api/v1/games/"+g.GameID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var state map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &state)
	if state["current_turn"] != g.Players[0].ID {
		t.Errorf("current_turn = %v", state["current_turn"])
	}

	if w := do(r, http.MethodGet, "/api/v1/games/missing", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("missing game status = %d", w.Code)
	}
}

func TestCreateGameDefaultNames(t *testing.T) {
	r := setupRouter(t, "")
	w := do(r, http.MethodPost, "/api/v1/games", "", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	var g createdGame
	json.Unmarshal(w.Body.Bytes(), &g)
	if g.Players[0].Name != "Player1" || g.Players[1].Name != "Player2" {
		t.Errorf("players = %+v", g.Players)
	}
}

func TestTakeShot(t *testing.T) {
	r := setupRouter(t, "")
	g := createGame(t, r)
	path := "/api/v1/games/" + g.GameID + "/shoot"
	p1, p2 := g.Players[0], g.Players[1]

	tests := []struct {
		name   string
		token  string
		body   interface{}
		status int
	}{
		{"no token", "", map[string]float64{"vel_x": 0, "vel_y": -500}, http.StatusUnauthorized},
		{"missing velocity", p1.Token, map[string]float64{"vel_x": 0}, http.StatusBadRequest},
		{"out of turn", p2.Token, map[string]float64{"vel_x": 0, "vel_y": -500}, http.StatusForbidden},
		{"too fast", p1.Token, map[string]float64{"vel_x": 0, "vel_y": -50000}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(r, http.MethodPost, path, tt.token, tt.body); w.Code != tt.status {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.status, w.Body.String())
			}
		})
	}

	w := do(r, http.MethodPost, path+"?frames=false", p1.Token, map[string]float64{"vel_x": 0, "vel_y": -500})
	if w.Code != http.StatusOK {
		t.Fatalf("shot status = %d: %s", w.Code, w.Body.String())
	}
	var result game.ShotResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.ShotNumber != 1 || result.NextTurn != p2.ID {
		t.Errorf("result = shot %d next %s", result.ShotNumber, result.NextTurn)
	}
	if len(result.Frames) != 0 {
		t.Errorf("frames = %d, want none", len(result.Frames))
	}
	if len(result.Events) == 0 {
		t.Error("shot produced no events")
	}

	if w := do(r, http.MethodPost, path, p1.Token, map[string]float64{"vel_x": 0, "vel_y": -500}); w.Code != http.StatusForbidden {
		t.Errorf("repeat shot status = %d", w.Code)
	}
}

func TestAdminRoutes(t *testing.T) {
	hash, err := admin.HashToken("admin-secret")
	if err != nil {
		t.Fatal(err)
	}
	r := setupRouter(t, hash)
	g := createGame(t, r)

	if w := doAdmin(r, http.MethodGet, "/api/v1/admin/shots", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d", w.Code)
	}
	if w := doAdmin(r, http.MethodGet, "/api/v1/admin/shots", "admin-secret"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("shots without database status = %d", w.Code)
	}

	if w := doAdmin(r, http.MethodDelete, "/api/v1/admin/games/"+g.GameID, "admin-secret"); w.Code != http.StatusOK {
		t.Errorf("delete status = %d: %s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodGet, "/api/v1/games/"+g.GameID, "", nil); w.Code != http.StatusNotFound {
		t.Errorf("deleted game status = %d", w.Code)
	}
	if w := doAdmin(r, http.MethodDelete, "/api/v1/admin/games/"+g.GameID, "admin-secret"); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d", w.Code)
	}
}

func TestAdminClosedWithoutHash(t *testing.T) {
	r := setupRouter(t, "")
	if w := doAdmin(r, http.MethodGet, "/api/v1/admin/shots", "anything"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d", w.Code)
	}
}
