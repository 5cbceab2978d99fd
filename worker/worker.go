// Package worker runs a single game. A Worker owns the game state, reads key
// presses and timer ticks from one inbox and publishes a frame after every
// tick.
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/battlesnakeio/snake/rules"
	log "github.com/sirupsen/logrus"
)

const inboxSize = 16

// FrameHandler is called with every frame the worker publishes. Handlers run
// on the worker goroutine and must not block for long.
type FrameHandler func(game *rules.Game, frame *rules.Frame)

// Worker drives one game from its first frame until game over.
type Worker struct {
	Game *rules.Game

	lock      sync.RWMutex
	frame     *rules.Frame
	direction rules.Direction
	handlers  []FrameHandler

	inbox chan Message
	done  chan struct{}
}

// New returns a worker for game starting at frame.
func New(game *rules.Game, frame *rules.Frame) *Worker {
	return &Worker{
		Game:      game,
		frame:     frame,
		direction: rules.StartDirection,
		inbox:     make(chan Message, inboxSize),
		done:      make(chan struct{}),
	}
}

// OnFrame registers a handler. It should be called before Run.
func (w *Worker) OnFrame(h FrameHandler) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.handlers = append(w.handlers, h)
}

// Frame returns the most recent frame.
func (w *Worker) Frame() *rules.Frame {
	w.lock.RLock()
	defer w.lock.RUnlock()
	return w.frame
}

// Direction returns the direction the next tick will move in.
func (w *Worker) Direction() rules.Direction {
	w.lock.RLock()
	defer w.lock.RUnlock()
	return w.direction
}

// Done is closed once Run has returned.
func (w *Worker) Done() <-chan struct{} { return w.done }

// Send delivers msg to the worker. It blocks until the message is queued and
// returns false if the worker has already stopped.
func (w *Worker) Send(msg Message) bool {
	select {
	case <-w.done:
		return false
	default:
	}
	select {
	case w.inbox <- msg:
		return true
	case <-w.done:
		return false
	}
}

// Run publishes the current frame and then processes messages until the game
// is over or ctx is cancelled. The tick timer is stopped before Run returns.
func (w *Worker) Run(ctx context.Context) error {
	defer close(w.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frame := w.Frame()
	log.WithFields(log.Fields{
		"GameID": w.Game.ID,
		"Width":  w.Game.Width,
		"Height": w.Game.Height,
	}).Info("game started")
	w.publish(frame)
	if frame.GameOver {
		return nil
	}

	go w.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			log.WithField("GameID", w.Game.ID).Info("game abandoned")
			return ctx.Err()
		case msg := <-w.inbox:
			next, err := w.handle(msg)
			if err != nil {
				// A tick error means the state is corrupt, no more game
				// processing can take place.
				log.WithError(err).
					WithField("GameID", w.Game.ID).
					Error("ending game due to fatal error")
				return err
			}
			if next.GameOver {
				return nil
			}
		}
	}
}

// tick posts a TickElapsed into the inbox every tick interval.
func (w *Worker) tick(ctx context.Context) {
	t := time.NewTicker(w.Game.TickInterval)
	defer t.Stop()
	for {
		select {
		case at := <-t.C:
			select {
			case w.inbox <- TickElapsed{At: at}:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// handle applies a single message and returns the resulting frame.
func (w *Worker) handle(msg Message) (*rules.Frame, error) {
	switch m := msg.(type) {
	case KeyPressed:
		w.press(m.Key)
		return w.Frame(), nil
	case TickElapsed:
		return w.step()
	}
	return nil, fmt.Errorf("worker: unknown message %T", msg)
}

func (w *Worker) press(key string) {
	d, ok := rules.KeyDirection(key)
	if !ok {
		keyPresses.WithLabelValues("ignored").Inc()
		return
	}
	keyPresses.WithLabelValues("accepted").Inc()

	w.lock.Lock()
	w.direction = d
	w.lock.Unlock()
}

func (w *Worker) step() (*rules.Frame, error) {
	last := w.Frame()
	if last.GameOver {
		return last, nil
	}

	done := instrument()
	next, err := rules.GameTick(w.Game, last, w.Direction())
	done()
	if err != nil {
		return nil, err
	}

	ticks.Inc()
	if next.Score > last.Score {
		foodEaten.Inc()
	}
	if next.GameOver {
		gamesEnded.WithLabelValues(next.Death.Cause).Inc()
		log.WithFields(log.Fields{
			"GameID": w.Game.ID,
			"Turn":   next.Turn,
			"Score":  next.Score,
			"Cause":  next.Death.Cause,
		}).Info("game over")
	}

	w.lock.Lock()
	w.frame = next
	w.lock.Unlock()

	w.publish(next)
	return next, nil
}

func (w *Worker) publish(frame *rules.Frame) {
	w.lock.RLock()
	handlers := w.handlers
	w.lock.RUnlock()
	for _, h := range handlers {
		h(w.Game, frame)
	}
}
