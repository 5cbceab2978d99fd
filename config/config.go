// Package config holds the board and timing settings of the game. Values come
// from compiled defaults, an optional YAML file and then the environment.
package config

import (
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// Defaults. The board is measured in logical units and divided into square
// cells, 400/20 gives a 20x20 grid.
const (
	DefaultBoardWidth   = 400
	DefaultBoardHeight  = 400
	DefaultCellSize     = 20
	DefaultTickInterval = 200 * time.Millisecond
	DefaultKeyRate      = 50
	DefaultKeyBurst     = 10
)

// Config is the full set of tunables.
type Config struct {
	BoardWidth   int           `yaml:"board_width" json:"boardWidth"`
	BoardHeight  int           `yaml:"board_height" json:"boardHeight"`
	CellSize     int           `yaml:"cell_size" json:"cellSize"`
	TickInterval time.Duration `yaml:"tick_interval" json:"tickInterval"`

	// KeyRate and KeyBurst bound how many key messages a browser connection
	// may send per second.
	KeyRate  int `yaml:"key_rate" json:"-"`
	KeyBurst int `yaml:"key_burst" json:"-"`
}

// Default returns the compiled in configuration.
func Default() Config {
	return Config{
		BoardWidth:   DefaultBoardWidth,
		BoardHeight:  DefaultBoardHeight,
		CellSize:     DefaultCellSize,
		TickInterval: DefaultTickInterval,
		KeyRate:      DefaultKeyRate,
		KeyBurst:     DefaultKeyBurst,
	}
}

// Load reads the defaults, overlays the YAML file at path (if path is not
// empty) and then the environment, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "config: reading %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "config: parsing %s", path)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.BoardWidth = getEnvInt("SNAKE_BOARD_WIDTH", c.BoardWidth)
	c.BoardHeight = getEnvInt("SNAKE_BOARD_HEIGHT", c.BoardHeight)
	c.CellSize = getEnvInt("SNAKE_CELL_SIZE", c.CellSize)
	c.TickInterval = time.Duration(getEnvInt("SNAKE_TICK_MS", int(c.TickInterval/time.Millisecond))) * time.Millisecond
	c.KeyRate = getEnvInt("SNAKE_KEY_RPS", c.KeyRate)
	c.KeyBurst = getEnvInt("SNAKE_KEY_BURST", c.KeyBurst)
}

// Validate checks that the board divides evenly into cells and that every
// value is positive.
func (c Config) Validate() error {
	switch {
	case c.BoardWidth <= 0 || c.BoardHeight <= 0:
		return errors.Errorf("config: board must be positive, got %dx%d", c.BoardWidth, c.BoardHeight)
	case c.CellSize <= 0:
		return errors.Errorf("config: cell size must be positive, got %d", c.CellSize)
	case c.BoardWidth%c.CellSize != 0 || c.BoardHeight%c.CellSize != 0:
		return errors.Errorf("config: board %dx%d is not a multiple of cell size %d", c.BoardWidth, c.BoardHeight, c.CellSize)
	case c.TickInterval <= 0:
		return errors.Errorf("config: tick interval must be positive, got %s", c.TickInterval)
	case c.KeyRate <= 0 || c.KeyBurst <= 0:
		return errors.Errorf("config: key rate and burst must be positive, got %d/%d", c.KeyRate, c.KeyBurst)
	}
	return nil
}

// GridWidth is the number of cells across.
func (c Config) GridWidth() int { return c.BoardWidth / c.CellSize }

// GridHeight is the number of cells down.
func (c Config) GridHeight() int { return c.BoardHeight / c.CellSize }

// KeyLimiter returns a fresh limiter for one connection's key messages.
func (c Config) KeyLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(c.KeyRate), c.KeyBurst)
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
