package rules

import (
	"math/rand"
	"sync"
	"time"
)

// FoodSpawner picks the position of the next piece of food.
type FoodSpawner interface {
	Spawn(width, height int) Point
}

// FoodSpawnerFunc adapts a function to the FoodSpawner interface.
type FoodSpawnerFunc func(width, height int) Point

// Spawn calls f.
func (f FoodSpawnerFunc) Spawn(width, height int) Point { return f(width, height) }

// RandomFood places food uniformly over the board. It does not look at the
// snake or the previous food, so food can appear on top of the body or on the
// cell that was just eaten.
type RandomFood struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomFood returns a spawner seeded with seed.
func NewRandomFood(seed int64) *RandomFood {
	return &RandomFood{rnd: rand.New(rand.NewSource(seed))}
}

// Spawn returns a random point in [0,width)x[0,height).
func (r *RandomFood) Spawn(width, height int) Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Point{
		X: r.rnd.Intn(width),
		Y: r.rnd.Intn(height),
	}
}

var defaultSpawner = NewRandomFood(time.Now().UnixNano())

func spawnerFor(game *Game) FoodSpawner {
	if game.Spawner != nil {
		return game.Spawner
	}
	return defaultSpawner
}
