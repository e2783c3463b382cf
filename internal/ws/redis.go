package ws

import (
	"context"
	"encoding/json"
	"log"

	"github.com/playmatatu/poolsim/internal/config"
	"github.com/playmatatu/poolsim/internal/game"
	"github.com/redis/go-redis/v9"
)

// ShotEventsChannel carries shot results between server instances.
const ShotEventsChannel = "shot_events"

var rdbClient *redis.Client
var wsConfig *config.Config

func SetRedisClient(r *redis.Client, cfg *config.Config) {
	rdbClient = r
	wsConfig = cfg
}

// shotEvent is the pub/sub payload for one shot.
type shotEvent struct {
	GameID string           `json:"game_id"`
	Result *game.ShotResult `json:"result"`
}

// BroadcastShot delivers a shot result to every player watching the game.
// With Redis the result goes through the shot_events channel so players
// connected to other instances see it too.
func BroadcastShot(gameID string, result *game.ShotResult) {
	if rdbClient != nil {
		data, err := json.Marshal(shotEvent{GameID: gameID, Result: result})
		if err == nil {
			err = rdbClient.Publish(context.Background(), ShotEventsChannel, data).Err()
		}
		if err == nil {
			return
		}
		log.Printf("[REDIS] Failed to publish shot for game %s, broadcasting locally: %v", gameID, err)
	}
	deliverShot(gameID, result)
}

func deliverShot(gameID string, result *game.ShotResult) {
	GameHub.BroadcastToGame(gameID, map[string]interface{}{
		"type":    "shot_result",
		"game_id": gameID,
		"result":  result,
	})

	if game.Manager == nil {
		return
	}
	if g, err := game.Manager.GetGame(gameID); err == nil {
		state := g.GetGameState()
		state["type"] = "game_state"
		GameHub.BroadcastToGame(gameID, state)
	}
}

// StartShotEventSubscriber subscribes to shot_events and relays each result
// to the local game room.
func StartShotEventSubscriber(ctx context.Context) {
	if rdbClient == nil {
		log.Println("[WS] Redis client not set; shot event subscriber not started")
		return
	}

	pubsub := rdbClient.Subscribe(ctx, ShotEventsChannel)
	ch := pubsub.Channel()
	go func() {
		defer pubsub.Close()
		log.Println("[WS] shot_events subscriber started")
		for msg := range ch {
			var ev shotEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil || ev.Result == nil {
				log.Printf("[WS] invalid shot event payload: %v", err)
				continue
			}
			if GameHub.RoomSize(ev.GameID) == 0 {
				continue
			}
			if game.Manager != nil {
				// Another instance played the shot; drop the stale in-memory copy.
				game.Manager.Forget(ev.GameID)
			}
			deliverShot(ev.GameID, ev.Result)
		}
	}()
}
