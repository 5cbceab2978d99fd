package rules

// Direction is the heading the snake moves in on the next tick.
type Direction string

// The four directions a snake can be steered in.
const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Key identifiers recognised by the input handler. They match the DOM
// KeyboardEvent.key values so browser and terminal share one mapping.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

var keyDirections = map[string]Direction{
	KeyArrowUp:    DirectionUp,
	KeyArrowDown:  DirectionDown,
	KeyArrowLeft:  DirectionLeft,
	KeyArrowRight: DirectionRight,
}

// Vector returns the unit displacement of the direction. Unknown directions
// return the zero point.
func (d Direction) Vector() Point {
	switch d {
	case DirectionUp:
		return Point{X: 0, Y: -1}
	case DirectionDown:
		return Point{X: 0, Y: 1}
	case DirectionLeft:
		return Point{X: -1, Y: 0}
	case DirectionRight:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}

// KeyDirection maps a key identifier to a direction. Keys that are not one of
// the four arrows are reported as not ok and should be ignored. Reversing onto
// the snake's own neck is not prevented here.
func KeyDirection(key string) (Direction, bool) {
	d, ok := keyDirections[key]
	return d, ok
}
