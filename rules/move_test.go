package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirection_Vector(t *testing.T) {
	tests := []struct {
		Direction Direction
		Expected  Point
	}{
		{Direction: DirectionUp, Expected: Point{X: 5, Y: 4}},
		{Direction: DirectionDown, Expected: Point{X: 5, Y: 6}},
		{Direction: DirectionLeft, Expected: Point{X: 4, Y: 5}},
		{Direction: DirectionRight, Expected: Point{X: 6, Y: 5}},
		{Direction: "", Expected: Point{X: 5, Y: 5}},
	}

	for _, test := range tests {
		p := Point{X: 5, Y: 5}.Add(test.Direction.Vector())
		require.Equal(t, test.Expected, p, "Direction: %s", test.Direction)
	}
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		Key      string
		Expected Direction
		OK       bool
	}{
		{Key: "ArrowUp", Expected: DirectionUp, OK: true},
		{Key: "ArrowDown", Expected: DirectionDown, OK: true},
		{Key: "ArrowLeft", Expected: DirectionLeft, OK: true},
		{Key: "ArrowRight", Expected: DirectionRight, OK: true},
		{Key: "a"},
		{Key: "Shift"},
		{Key: "arrowup"},
		{Key: ""},
	}

	for _, test := range tests {
		d, ok := KeyDirection(test.Key)
		require.Equal(t, test.OK, ok, "Key: %q", test.Key)
		require.Equal(t, test.Expected, d, "Key: %q", test.Key)
	}
}

func TestFrame_HeadTail(t *testing.T) {
	f := &Frame{
		Snake: []Point{
			{X: 5, Y: 5},
			{X: 4, Y: 5},
		},
	}

	head, ok := f.Head()
	require.True(t, ok)
	require.Equal(t, Point{X: 5, Y: 5}, head)
	tail, ok := f.Tail()
	require.True(t, ok)
	require.Equal(t, Point{X: 4, Y: 5}, tail)

	_, ok = (&Frame{}).Head()
	require.False(t, ok)
}

func TestFrame_Clone(t *testing.T) {
	f := &Frame{
		Snake: []Point{{X: 1, Y: 1}},
		Death: &Death{Turn: 1, Cause: DeathCauseWallCollision},
	}
	c := f.Clone()
	c.Snake[0] = Point{X: 9, Y: 9}
	c.Death.Turn = 7
	require.Equal(t, Point{X: 1, Y: 1}, f.Snake[0])
	require.Equal(t, int64(1), f.Death.Turn)
}
