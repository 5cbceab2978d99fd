package rules

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// GameTick runs the game one tick in direction and returns the next frame.
// lastFrame is left untouched. Once a frame is over the same frame is returned
// for every further tick.
//
// Eaten food is replaced by whatever game.Spawner returns. RandomFood may put
// it back on the cell just eaten; use a deterministic spawner when a caller
// needs the food to move.
func GameTick(game *Game, lastFrame *Frame, direction Direction) (*Frame, error) {
	if game == nil {
		return nil, fmt.Errorf("rules: invalid state, game is nil")
	}
	if lastFrame == nil {
		return nil, fmt.Errorf("rules: invalid state, previous frame is nil")
	}
	if lastFrame.GameOver {
		return lastFrame, nil
	}
	if !direction.Valid() {
		return nil, fmt.Errorf("rules: invalid direction %q", direction)
	}
	head, ok := lastFrame.Head()
	if !ok {
		return nil, fmt.Errorf("rules: invalid state, snake has no body")
	}

	nextFrame := lastFrame.Clone()
	nextFrame.Turn = lastFrame.Turn + 1
	newHead := head.Add(direction.Vector())

	// 1. check for death against the body as it was before the move
	if cause := checkForDeath(game.Width, game.Height, newHead, lastFrame.Snake); cause != "" {
		log.WithFields(log.Fields{
			"GameID": game.ID,
			"Turn":   nextFrame.Turn,
			"Head":   newHead,
			"Cause":  cause,
		}).Debug("collision")
		nextFrame.GameOver = true
		nextFrame.Death = &Death{
			Turn:  nextFrame.Turn,
			Cause: cause,
		}
		return nextFrame, nil
	}

	// 2. move the head, then either grow or drop the tail
	nextFrame.Snake = append([]Point{newHead}, nextFrame.Snake...)
	if newHead.Equal(lastFrame.Food) {
		nextFrame.Food = spawnerFor(game).Spawn(game.Width, game.Height)
		nextFrame.Score = lastFrame.Score + 1
		log.WithFields(log.Fields{
			"GameID": game.ID,
			"Turn":   nextFrame.Turn,
			"Food":   lastFrame.Food,
			"Score":  nextFrame.Score,
		}).Debug("snake ate")
		return nextFrame, nil
	}
	nextFrame.Snake = nextFrame.Snake[:len(nextFrame.Snake)-1]
	return nextFrame, nil
}
