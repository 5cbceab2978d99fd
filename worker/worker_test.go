package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/rules"
	"github.com/stretchr/testify/require"
)

func fixedFood(p rules.Point) rules.FoodSpawner {
	return rules.FoodSpawnerFunc(func(int, int) rules.Point { return p })
}

func newTestWorker(t *testing.T, interval time.Duration) *Worker {
	game, frame, err := rules.CreateInitialGame(rules.CreateRequest{
		ID:           "test",
		Width:        20,
		Height:       20,
		TickInterval: interval,
		Spawner:      fixedFood(rules.Point{X: 15, Y: 15}),
	})
	require.NoError(t, err)
	return New(game, frame)
}

func TestWorker_TickMovesRight(t *testing.T) {
	w := newTestWorker(t, time.Hour)
	require.Equal(t, rules.DirectionRight, w.Direction())

	f, err := w.handle(TickElapsed{At: time.Now()})
	require.NoError(t, err)
	require.Equal(t, []rules.Point{{X: 3, Y: 2}}, f.Snake)
	require.Equal(t, f, w.Frame())
}

func TestWorker_UnrecognisedKeyIgnored(t *testing.T) {
	w := newTestWorker(t, time.Hour)

	_, err := w.handle(KeyPressed{Key: "a"})
	require.NoError(t, err)
	require.Equal(t, rules.DirectionRight, w.Direction())

	f, err := w.handle(TickElapsed{})
	require.NoError(t, err)
	require.Equal(t, rules.Point{X: 3, Y: 2}, f.Snake[0])
}

func TestWorker_LastKeyWins(t *testing.T) {
	w := newTestWorker(t, time.Hour)

	for _, k := range []string{rules.KeyArrowUp, "Shift", rules.KeyArrowDown} {
		_, err := w.handle(KeyPressed{Key: k})
		require.NoError(t, err)
	}
	require.Equal(t, rules.DirectionDown, w.Direction())

	f, err := w.handle(TickElapsed{})
	require.NoError(t, err)
	require.Equal(t, rules.Point{X: 2, Y: 3}, f.Snake[0])
}

func TestWorker_PublishesEveryTick(t *testing.T) {
	w := newTestWorker(t, time.Hour)
	var turns []int64
	w.OnFrame(func(_ *rules.Game, f *rules.Frame) {
		turns = append(turns, f.Turn)
	})

	for i := 0; i < 3; i++ {
		_, err := w.handle(TickElapsed{})
		require.NoError(t, err)
	}
	require.Equal(t, []int64{1, 2, 3}, turns)
}

func TestWorker_GameOverFreezes(t *testing.T) {
	w := newTestWorker(t, time.Hour)
	_, err := w.handle(KeyPressed{Key: rules.KeyArrowUp})
	require.NoError(t, err)

	var over *rules.Frame
	for i := 0; i < 5; i++ {
		f, err := w.handle(TickElapsed{})
		require.NoError(t, err)
		if f.GameOver {
			over = f
			break
		}
	}
	require.NotNil(t, over)
	require.Equal(t, rules.DeathCauseWallCollision, over.Death.Cause)

	f, err := w.handle(TickElapsed{})
	require.NoError(t, err)
	require.Equal(t, over, f)
}

func TestWorker_UnknownMessage(t *testing.T) {
	w := newTestWorker(t, time.Hour)
	_, err := w.handle(nil)
	require.Error(t, err)
}

func TestWorker_RunUntilGameOver(t *testing.T) {
	w := newTestWorker(t, time.Millisecond)

	var (
		mu     sync.Mutex
		frames []*rules.Frame
	)
	w.OnFrame(func(_ *rules.Game, f *rules.Frame) {
		mu.Lock()
		frames = append(frames, f)
		mu.Unlock()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, w.Run(ctx))

	mu.Lock()
	defer mu.Unlock()
	// turn 0, 17 moves from x=2 to x=19, then the fatal tick
	require.Len(t, frames, 19)
	last := frames[len(frames)-1]
	require.True(t, last.GameOver)
	require.Equal(t, []rules.Point{{X: 19, Y: 2}}, last.Snake)

	select {
	case <-w.Done():
	default:
		t.Fatal("worker should be done")
	}
	require.False(t, w.Send(KeyPressed{Key: rules.KeyArrowDown}))
}

func TestWorker_RunCancelled(t *testing.T) {
	w := newTestWorker(t, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()

	require.True(t, w.Send(KeyPressed{Key: rules.KeyArrowDown}))
	cancel()

	select {
	case err := <-errc:
		require.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	require.Equal(t, int64(0), w.Frame().Turn)
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	w, err := NewFromConfig(cfg, fixedFood(rules.Point{X: 1, Y: 1}))
	require.NoError(t, err)
	require.Equal(t, 20, w.Game.Width)
	require.Equal(t, 20, w.Game.Height)
	require.Equal(t, cfg.TickInterval, w.Game.TickInterval)
	require.Equal(t, rules.Point{X: 1, Y: 1}, w.Frame().Food)

	cfg.BoardWidth, cfg.CellSize = 40, 20
	_, err = NewFromConfig(cfg, nil)
	require.Equal(t, rules.ErrInvalidBoard, err)
}
