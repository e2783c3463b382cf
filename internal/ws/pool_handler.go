package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/playmatatu/poolsim/internal/auth"
	"github.com/playmatatu/poolsim/internal/game"
	"github.com/playmatatu/poolsim/internal/physics"
)

// TakeShotData is the payload of a take_shot message.
type TakeShotData struct {
	VelX float64 `json:"vel_x"`
	VelY float64 `json:"vel_y"`
}

// GameHub is the single hub for all games.
var GameHub *Hub

func init() {
	GameHub = NewHub()
	go runGameHub(GameHub)
}

// HandleWebSocket upgrades a player's connection to a table. The player is
// identified by the JWT in the token query parameter.
func HandleWebSocket(c *gin.Context) {
	gameID := c.Param("id")
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token required"})
		return
	}
	if wsConfig == nil || game.Manager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "websocket not configured"})
		return
	}

	claims, err := auth.ParsePlayerToken(wsConfig.JWTSecret, token)
	if err != nil || claims.GameID != gameID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	g, err := game.Manager.GetGame(gameID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	if g.GetPlayerByID(claims.PlayerID) == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a player in this game"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	client := &Client{
		conn:     conn,
		playerID: claims.PlayerID,
		gameID:   gameID,
		send:     make(chan []byte, 64),
	}

	GameHub.register <- client

	go client.writePump()
	go client.readPump()
}

// runGameHub serialises registration so a reconnecting player replaces
// their previous connection.
func runGameHub(h *Hub) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if oldClient, exists := h.clients[client.playerID]; exists {
				log.Printf("[WS] Player %s reconnecting - closing old connection", client.playerID)
				oldClient.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replaced by new connection"),
					time.Now().Add(5*time.Second))
				oldClient.conn.Close()
				close(oldClient.send)
				if room, exists := h.gameRooms[oldClient.gameID]; exists {
					delete(room, client.playerID)
				}
			}

			h.clients[client.playerID] = client
			if _, exists := h.gameRooms[client.gameID]; !exists {
				h.gameRooms[client.gameID] = make(map[string]*Client)
			}
			h.gameRooms[client.gameID][client.playerID] = client
			h.mu.Unlock()

			log.Printf("[WS] Player %s connected to game %s", client.playerID, client.gameID)

			if g, err := game.Manager.GetGame(client.gameID); err == nil {
				state := g.GetGameState()
				state["type"] = "game_state"
				state["my_id"] = client.playerID
				h.SendToPlayer(client.playerID, state)
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if cur, ok := h.clients[client.playerID]; ok && cur == client {
				delete(h.clients, client.playerID)
				if room, exists := h.gameRooms[client.gameID]; exists {
					delete(room, client.playerID)
					if len(room) == 0 {
						delete(h.gameRooms, client.gameID)
					}
				}
				close(client.send)
				log.Printf("[WS] Player %s disconnected from game %s", client.playerID, client.gameID)
			}
			h.mu.Unlock()
		}
	}
}

// readPump reads messages until the connection drops.
func (c *Client) readPump() {
	defer func() {
		GameHub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Unexpected close for player %s: %v", c.playerID, err)
			}
			break
		}

		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.sendError("Invalid message")
			continue
		}
		c.handleMessage(msg)
	}
}

// handleMessage processes incoming game messages.
func (c *Client) handleMessage(msg WSMessage) {
	g, err := game.Manager.GetGame(c.gameID)
	if err != nil {
		c.sendError("Game not found")
		return
	}

	switch msg.Type {
	case "take_shot":
		var data TakeShotData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("Invalid shot data")
			return
		}
		result, err := game.Manager.TakeShot(c.gameID, c.playerID, physics.NewVec2(data.VelX, data.VelY))
		if err != nil {
			c.sendError(err.Error())
			return
		}
		BroadcastShot(c.gameID, result)

	case "get_state":
		state := g.GetGameState()
		state["type"] = "game_state"
		state["my_id"] = c.playerID
		GameHub.SendToPlayer(c.playerID, state)

	default:
		c.sendError("Unknown message type")
	}
}
