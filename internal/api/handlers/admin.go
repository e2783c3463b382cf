package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/playmatatu/poolsim/internal/admin"
	"github.com/playmatatu/poolsim/internal/game"
)

// ListShots returns the shot log, newest first.
func ListShots(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := admin.ClampPage(queryInt(c, "limit", 50), queryInt(c, "offset", 0))

		shots, err := admin.ListRecentShots(db, limit, offset)
		if errors.Is(err, admin.ErrNoDatabase) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "shot log not available"})
			return
		}
		if err != nil {
			log.Printf("[ADMIN] %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list shots"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"shots": shots, "limit": limit, "offset": offset})
	}
}

// DeleteGame ends a live game and removes its records.
func DeleteGame(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !managerReady(c) {
			return
		}
		gameID := c.Param("id")

		endErr := game.Manager.EndGame(gameID)
		dbErr := admin.DeleteGameRecords(db, gameID)
		if dbErr != nil && !errors.Is(dbErr, admin.ErrNoDatabase) {
			log.Printf("[ADMIN] %v", dbErr)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete game records"})
			return
		}
		if errors.Is(endErr, game.ErrGameNotFound) && dbErr != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}

		log.Printf("[ADMIN] Game %s deleted", gameID)
		c.JSON(http.StatusOK, gin.H{"deleted": gameID})
	}
}
