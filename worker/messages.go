package worker

import "time"

// Message is an input delivered to a running game. Key presses and timer ticks
// both arrive as messages on the same inbox so they are handled one at a time.
type Message interface {
	message()
}

// KeyPressed is sent for every key the player presses. Key holds the key
// identifier, e.g. "ArrowUp".
type KeyPressed struct {
	Key string
}

// TickElapsed is sent by the game timer once per tick interval.
type TickElapsed struct {
	At time.Time
}

func (KeyPressed) message()  {}
func (TickElapsed) message() {}
