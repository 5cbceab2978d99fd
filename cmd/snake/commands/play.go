package commands

import (
	"context"
	"io/ioutil"
	"os"

	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/worker"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays a game in the terminal, arrow keys steer and esc quits",
	RunE: func(*cobra.Command, []string) error {
		return playGame()
	},
}

var termboxKeys = map[termbox.Key]string{
	termbox.KeyArrowUp:    rules.KeyArrowUp,
	termbox.KeyArrowDown:  rules.KeyArrowDown,
	termbox.KeyArrowLeft:  rules.KeyArrowLeft,
	termbox.KeyArrowRight: rules.KeyArrowRight,
}

// keyName translates a termbox key event into the key identifiers the game
// understands. Anything else is passed through as its character so the game
// can ignore it.
func keyName(ev termbox.Event) string {
	if k, ok := termboxKeys[ev.Key]; ok {
		return k
	}
	return string(ev.Ch)
}

func playGame() error {
	wk, err := worker.NewFromConfig(cfg, nil)
	if err != nil {
		return err
	}

	if err = termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	// termbox owns the screen while the game runs.
	log.SetOutput(ioutil.Discard)
	defer log.SetOutput(os.Stderr)

	wk.OnFrame(func(game *rules.Game, frame *rules.Frame) {
		if err := render(game, frame); err != nil {
			log.WithError(err).Error("unable to render frame")
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- wk.Run(ctx) }()

	eventQueue := setupEventQueue()
	for {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
				cancel()
				<-errc
				return nil
			}
			wk.Send(worker.KeyPressed{Key: keyName(ev)})
		case err := <-errc:
			if err != nil {
				return err
			}
			tbprint(0, 0, defaultColor, defaultColor, "Press any key to exit...")
			if err = termbox.Flush(); err != nil {
				return err
			}
			for ev := range eventQueue {
				if ev.Type == termbox.EventKey {
					return nil
				}
			}
		}
	}
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
