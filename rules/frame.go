package rules

import "time"

// Game holds the settings of a single game. It does not change while the game
// is running.
type Game struct {
	ID           string        `json:"id"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	TickInterval time.Duration `json:"tickInterval"`

	Spawner FoodSpawner `json:"-"`
}

// Death records when and why the game ended.
type Death struct {
	Turn  int64  `json:"turn"`
	Cause string `json:"cause"`
}

// Frame is the state of the board after a tick. Frames are never modified once
// returned from GameTick.
type Frame struct {
	Turn     int64   `json:"turn"`
	Snake    []Point `json:"snake"`
	Food     Point   `json:"food"`
	Score    int     `json:"score"`
	GameOver bool    `json:"gameOver"`
	Death    *Death  `json:"death,omitempty"`
}

// Head returns the first point in the body
func (f *Frame) Head() (Point, bool) {
	if len(f.Snake) == 0 {
		return Point{}, false
	}
	return f.Snake[0], true
}

// Tail returns the last point in the body
func (f *Frame) Tail() (Point, bool) {
	if len(f.Snake) == 0 {
		return Point{}, false
	}
	return f.Snake[len(f.Snake)-1], true
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := *f
	c.Snake = append([]Point(nil), f.Snake...)
	if f.Death != nil {
		d := *f.Death
		c.Death = &d
	}
	return &c
}
