package rules

import (
	"errors"
	"time"

	uuid "github.com/satori/go.uuid"
)

var (
	// StartPoint is where the snake's single segment is placed at turn 0.
	StartPoint = Point{X: 2, Y: 2}
	// StartDirection is the heading the snake has before any key is pressed.
	StartDirection = DirectionRight

	// ErrInvalidBoard is returned when the board cannot hold the start point.
	ErrInvalidBoard = errors.New("rules: board too small for start position")
)

// CreateRequest describes a game to be created.
type CreateRequest struct {
	ID           string
	Width        int
	Height       int
	TickInterval time.Duration
	Spawner      FoodSpawner
}

// CreateInitialGame creates a new game based on the create request passed in,
// along with its first frame.
func CreateInitialGame(req CreateRequest) (*Game, *Frame, error) {
	if !StartPoint.In(req.Width, req.Height) {
		return nil, nil, ErrInvalidBoard
	}

	game := &Game{
		ID:           req.ID,
		Width:        req.Width,
		Height:       req.Height,
		TickInterval: req.TickInterval,
		Spawner:      req.Spawner,
	}
	if len(game.ID) == 0 {
		game.ID = uuid.NewV4().String()
	}

	frame := &Frame{
		Turn:  0,
		Snake: []Point{StartPoint},
		Food:  spawnerFor(game).Spawn(game.Width, game.Height),
	}
	return game, frame, nil
}
