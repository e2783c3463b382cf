package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/playmatatu/poolsim/internal/ws"
)

// HandleGameWebSocket streams shot results for a game.
func HandleGameWebSocket() gin.HandlerFunc {
	return ws.HandleWebSocket
}
