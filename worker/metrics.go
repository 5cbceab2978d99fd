package worker

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "tick_seconds",
			Help:      "Time spent computing a game tick.",
		},
	)
	ticks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "ticks_total",
			Help:      "Game ticks processed.",
		},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "food_eaten_total",
			Help:      "Food eaten across all games.",
		},
	)
	gamesEnded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "games_ended_total",
			Help:      "Games that reached game over, by cause.",
		},
		[]string{"cause"},
	)
	keyPresses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "key_presses_total",
			Help:      "Key presses received, by whether they changed direction.",
		},
		[]string{"result"},
	)
)

func instrument() func() {
	t := prometheus.NewTimer(tickDuration)
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(tickDuration, ticks, foodEaten, gamesEnded, keyPresses)
}
