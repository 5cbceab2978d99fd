package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomFoodInBounds(t *testing.T) {
	r := NewRandomFood(1)
	seen := map[Point]bool{}
	for i := 0; i < 2000; i++ {
		p := r.Spawn(4, 3)
		require.True(t, p.In(4, 3), "point %v", p)
		seen[p] = true
	}
	// every cell of a 4x3 board is reachable
	require.Len(t, seen, 12)
}

func TestRandomFoodIsSeeded(t *testing.T) {
	a, b := NewRandomFood(7), NewRandomFood(7)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Spawn(20, 20), b.Spawn(20, 20))
	}
}
