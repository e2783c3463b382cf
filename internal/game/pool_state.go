package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/playmatatu/poolsim/internal/physics"
)

var (
	ErrNotInProgress   = errors.New("game is not in progress")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrNotAPlayer      = errors.New("player is not seated at this table")
	ErrCueBallMissing  = errors.New("cue ball is not on the table")
	ErrCueBallMoving   = errors.New("cue ball is still moving")
	ErrInvalidVelocity = errors.New("invalid shot velocity")
)

// Player is one seat at the table.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Potted int    `json:"potted"`
}

// ShotOptions bounds a single shot's simulation.
type ShotOptions struct {
	MaxShotSpeed  float64
	MaxSegments   int
	FrameInterval float64
}

// ShotResult is everything a client needs to replay and score a shot.
type ShotResult struct {
	ShotNumber    int                `json:"shot_number"`
	Player        string             `json:"player"`
	Velocity      physics.Vec2       `json:"velocity"`
	Events        []physics.Event    `json:"events"`
	Segments      int                `json:"segments"`
	Truncated     bool               `json:"truncated"`
	Frames        []physics.Snapshot `json:"frames"`
	Final         physics.Snapshot   `json:"final"`
	PocketedBalls []int              `json:"pocketed_balls"`
	CueRespotted  bool               `json:"cue_respotted"`
	NextTurn      string             `json:"next_turn"`
	GameOver      bool               `json:"game_over"`
	Winner        string             `json:"winner,omitempty"`
}

// GameState is one live table and the two players sharing it.
type GameState struct {
	ID           string         `json:"id"`
	Token        string         `json:"token"`
	Player1      *Player        `json:"player1"`
	Player2      *Player        `json:"player2"`
	CurrentTurn  string         `json:"current_turn"`
	Status       GameStatus     `json:"status"`
	Winner       string         `json:"winner,omitempty"`
	ShotNumber   int            `json:"shot_number"`
	Table        *physics.Table `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	LastActivity time.Time      `json:"last_activity"`
	mu           sync.RWMutex
}

// NewGame racks a fresh table. Player 1 breaks.
func NewGame(id, token, p1ID, p1Name, p2ID, p2Name string, params physics.Params) *GameState {
	now := time.Now()
	return &GameState{
		ID:           id,
		Token:        token,
		Player1:      &Player{ID: p1ID, Name: p1Name},
		Player2:      &Player{ID: p2ID, Name: p2Name},
		CurrentTurn:  p1ID,
		Status:       StatusInProgress,
		Table:        physics.NewRackedTable(params),
		CreatedAt:    now,
		LastActivity: now,
	}
}

// ValidateCanShoot checks turn, status, cue ball and velocity.
func (g *GameState) ValidateCanShoot(playerID string, vel physics.Vec2, maxSpeed float64) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.validateLocked(playerID, vel, maxSpeed)
}

func (g *GameState) validateLocked(playerID string, vel physics.Vec2, maxSpeed float64) error {
	if g.Status != StatusInProgress {
		return ErrNotInProgress
	}
	if g.playerLocked(playerID) == nil {
		return ErrNotAPlayer
	}
	if g.CurrentTurn != playerID {
		return ErrNotYourTurn
	}

	slot := g.Table.FindBall(physics.CueBall)
	if slot < 0 {
		return ErrCueBallMissing
	}
	if g.Table.Objects[slot].Kind() != physics.KindStillBall {
		return ErrCueBallMoving
	}

	speed := vel.Magnitude()
	if speed <= 0 || (maxSpeed > 0 && speed > maxSpeed) {
		return fmt.Errorf("%w: speed %.1f", ErrInvalidVelocity, speed)
	}
	return nil
}

// TakeShot strikes the cue ball, simulates until the table is at rest and
// applies the outcome to the game.
func (g *GameState) TakeShot(playerID string, vel physics.Vec2, opts ShotOptions) (*ShotResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.validateLocked(playerID, vel, opts.MaxShotSpeed); err != nil {
		return nil, err
	}

	start := g.Table.Clone()
	if err := start.Strike(physics.CueBall, vel); err != nil {
		return nil, err
	}

	segments, events, err := physics.Simulate(start, opts.MaxSegments)
	truncated := false
	if errors.Is(err, physics.ErrSegmentLimit) {
		log.Printf("[SIM] Game %s shot %d hit the segment limit (%d), settling table", g.ID, g.ShotNumber+1, opts.MaxSegments)
		truncated = true
	} else if err != nil {
		return nil, fmt.Errorf("failed to simulate shot: %w", err)
	}

	final := start
	if len(segments) > 0 {
		final = segments[len(segments)-1].Clone()
	}
	if truncated {
		settle(final)
	}

	frames := physics.Frames(start, segments, opts.FrameInterval)
	snapshots := make([]physics.Snapshot, 0, len(frames))
	for _, f := range frames {
		snapshots = append(snapshots, f.Snapshot())
	}

	pocketed := pottedBalls(start, final)
	shooter := g.playerLocked(playerID)
	respotted := false
	for _, n := range pocketed {
		if n == int(physics.CueBall) {
			respotted = respotCue(final)
			continue
		}
		shooter.Potted++
	}

	g.Table = final
	g.ShotNumber++
	g.LastActivity = time.Now()

	if objectBalls(final) == 0 {
		g.finishLocked()
	} else {
		g.switchTurn()
	}

	log.Printf("[GAME] Game %s shot %d by %s: %d segments, pocketed %v", g.ID, g.ShotNumber, playerID, len(segments), pocketed)

	return &ShotResult{
		ShotNumber:    g.ShotNumber,
		Player:        playerID,
		Velocity:      vel,
		Events:        events,
		Segments:      len(segments),
		Truncated:     truncated,
		Frames:        snapshots,
		Final:         final.Snapshot(),
		PocketedBalls: pocketed,
		CueRespotted:  respotted,
		NextTurn:      g.CurrentTurn,
		GameOver:      g.Status == StatusCompleted,
		Winner:        g.Winner,
	}, nil
}

// GetGameState returns the client view of the game.
func (g *GameState) GetGameState() map[string]interface{} {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return map[string]interface{}{
		"id":            g.ID,
		"status":        g.Status,
		"current_turn":  g.CurrentTurn,
		"shot_number":   g.ShotNumber,
		"player1":       g.Player1,
		"player2":       g.Player2,
		"winner":        g.Winner,
		"table":         g.Table.Snapshot(),
		"table_text":    g.Table.String(),
		"last_activity": g.LastActivity,
	}
}

// Cancel stops a game that is still being played.
func (g *GameState) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Status == StatusInProgress {
		g.Status = StatusCancelled
	}
}

func (g *GameState) GetPlayerByID(playerID string) *Player {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.playerLocked(playerID)
}

func (g *GameState) GetOpponentID(playerID string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	switch playerID {
	case g.Player1.ID:
		return g.Player2.ID
	case g.Player2.ID:
		return g.Player1.ID
	}
	return ""
}

func (g *GameState) playerLocked(playerID string) *Player {
	if g.Player1 != nil && g.Player1.ID == playerID {
		return g.Player1
	}
	if g.Player2 != nil && g.Player2.ID == playerID {
		return g.Player2
	}
	return nil
}

func (g *GameState) switchTurn() {
	if g.CurrentTurn == g.Player1.ID {
		g.CurrentTurn = g.Player2.ID
	} else {
		g.CurrentTurn = g.Player1.ID
	}
}

// finishLocked ends the game. The player with more potted balls wins; a tie
// leaves Winner empty.
func (g *GameState) finishLocked() {
	g.Status = StatusCompleted
	g.CurrentTurn = ""
	switch {
	case g.Player1.Potted > g.Player2.Potted:
		g.Winner = g.Player1.ID
	case g.Player2.Potted > g.Player1.Potted:
		g.Winner = g.Player2.ID
	}
	log.Printf("[GAME] Game %s completed (winner=%q)", g.ID, g.Winner)
}

// pottedBalls lists, in ascending order, the numbers on before that are
// missing from after.
func pottedBalls(before, after *physics.Table) []int {
	pocketed := []int{}
	for n := 0; n < physics.NumRackBalls; n++ {
		if before.FindBall(byte(n)) >= 0 && after.FindBall(byte(n)) < 0 {
			pocketed = append(pocketed, n)
		}
	}
	return pocketed
}

func objectBalls(t *physics.Table) int {
	n := t.Balls()
	if t.FindBall(physics.CueBall) >= 0 {
		n--
	}
	return n
}

// settle brings every rolling ball to rest where it is.
func settle(t *physics.Table) {
	for i := physics.FirstBallSlot; i < physics.MaxObjects; i++ {
		if rb, ok := t.Objects[i].(*physics.RollingBall); ok && rb != nil {
			t.Objects[i] = physics.NewStillBall(rb.Number, rb.Pos)
		}
	}
}

// respotCue puts the cue ball back on the head spot, sliding it sideways
// along the head string when another ball is in the way.
func respotCue(t *physics.Table) bool {
	p := t.Params
	spot := physics.Rack(p)[physics.CueBall]
	d := p.BallDiameter()

	for k := 0; k < 2*int(p.TableWidth/d); k++ {
		offset := float64((k+1)/2) * d
		if k%2 == 1 {
			offset = -offset
		}
		pos := physics.NewVec2(spot.X+offset, spot.Y)
		if pos.X < p.BallRadius || pos.X > p.TableWidth-p.BallRadius {
			continue
		}
		if spotFree(t, pos) {
			return t.Add(physics.NewStillBall(physics.CueBall, pos))
		}
	}
	return false
}

func spotFree(t *physics.Table, pos physics.Vec2) bool {
	for i := physics.FirstBallSlot; i < physics.MaxObjects; i++ {
		if bp, ok := physics.BallPosition(t.Objects[i]); ok {
			if bp.Minus(pos).Magnitude() < t.Params.BallDiameter() {
				return false
			}
		}
	}
	return true
}
