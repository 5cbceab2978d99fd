package worker

import (
	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/rules"
)

// NewFromConfig creates a fresh game sized from cfg and returns a worker ready
// to run it. A nil spawner places food at random.
func NewFromConfig(cfg config.Config, spawner rules.FoodSpawner) (*Worker, error) {
	game, frame, err := rules.CreateInitialGame(rules.CreateRequest{
		Width:        cfg.GridWidth(),
		Height:       cfg.GridHeight(),
		TickInterval: cfg.TickInterval,
		Spawner:      spawner,
	})
	if err != nil {
		return nil, err
	}
	return New(game, frame), nil
}
