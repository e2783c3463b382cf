package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/poolsim/internal/auth"
	"github.com/playmatatu/poolsim/internal/config"
	"github.com/playmatatu/poolsim/internal/game"
	"github.com/playmatatu/poolsim/internal/middleware"
	"github.com/playmatatu/poolsim/internal/physics"
	"github.com/playmatatu/poolsim/internal/ws"
)

// CreateGame racks a new table and returns one player token per seat.
func CreateGame(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !managerReady(c) {
			return
		}

		var req struct {
			Player1Name string `json:"player1_name" binding:"max=100"`
			Player2Name string `json:"player2_name" binding:"max=100"`
		}
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
		}

		g, err := game.Manager.CreateGame(req.Player1Name, req.Player2Name)
		if err != nil {
			log.Printf("[GAME] Failed to create game: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game"})
			return
		}

		ttl := time.Duration(cfg.PlayerTokenHours) * time.Hour
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		players := make([]gin.H, 0, 2)
		for _, p := range []*game.Player{g.Player1, g.Player2} {
			token, err := auth.IssuePlayerToken(cfg.JWTSecret, g.ID, p.ID, ttl)
			if err != nil {
				log.Printf("[GAME] Failed to issue token for %s: %v", p.ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
				return
			}
			players = append(players, gin.H{"id": p.ID, "name": p.Name, "token": token})
		}

		c.Header("X-Game-ID", g.ID)
		c.JSON(http.StatusCreated, gin.H{
			"game_id": g.ID,
			"players": players,
			"state":   g.GetGameState(),
		})
	}
}

// GetGameState returns the table and turn for a game.
func GetGameState() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !managerReady(c) {
			return
		}
		g, err := game.Manager.GetGame(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusOK, g.GetGameState())
	}
}

// TakeShot plays a shot for the authenticated player. Pass frames=false to
// leave the animation frames out of the response.
func TakeShot() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !managerReady(c) {
			return
		}

		var req struct {
			VelX *float64 `json:"vel_x" binding:"required"`
			VelY *float64 `json:"vel_y" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "vel_x and vel_y are required"})
			return
		}

		gameID := c.Param("id")
		playerID := c.GetString(middleware.ContextPlayerID)
		result, err := game.Manager.TakeShot(gameID, playerID, physics.NewVec2(*req.VelX, *req.VelY))
		if err != nil {
			c.JSON(shotErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		ws.BroadcastShot(gameID, result)

		if c.Query("frames") == "false" {
			trimmed := *result
			trimmed.Frames = nil
			result = &trimmed
		}
		c.JSON(http.StatusOK, result)
	}
}
