package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/poolsim/internal/game"
	"github.com/playmatatu/poolsim/internal/physics"
)

// queryInt reads an integer query parameter, falling back to def.
func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// shotErrorStatus maps game errors to HTTP status codes.
func shotErrorStatus(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrNotAPlayer), errors.Is(err, game.ErrNotYourTurn):
		return http.StatusForbidden
	case errors.Is(err, game.ErrNotInProgress), errors.Is(err, game.ErrCueBallMoving):
		return http.StatusConflict
	case errors.Is(err, game.ErrInvalidVelocity), errors.Is(err, game.ErrCueBallMissing),
		errors.Is(err, physics.ErrBallNotFound), errors.Is(err, physics.ErrBallMoving):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func managerReady(c *gin.Context) bool {
	if game.Manager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "game manager not initialized"})
		return false
	}
	return true
}
