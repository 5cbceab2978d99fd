package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/worker"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// FrameMessage is written to the socket for every frame.
type FrameMessage struct {
	Game     *rules.Game  `json:"game"`
	Frame    *rules.Frame `json:"frame"`
	CellSize int          `json:"cellSize"`
}

// KeyMessage is read from the socket for every key the player presses.
type KeyMessage struct {
	Key string `json:"key"`
}

func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	wk, err := worker.NewFromConfig(s.cfg, s.Spawner)
	if err != nil {
		log.WithError(err).Error("unable to create game")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	out := newFrameQueue(64)
	wk.OnFrame(func(game *rules.Game, frame *rules.Frame) {
		data, err := json.Marshal(&FrameMessage{Game: game, Frame: frame, CellSize: s.cfg.CellSize})
		if err != nil {
			log.WithError(err).WithField("GameID", game.ID).Error("unable to marshal frame")
			return
		}
		if !out.push(data, frame.GameOver) {
			log.WithField("GameID", game.ID).
				WithField("Turn", frame.Turn).
				Warn("client too slow, dropping frame")
		}
	})

	s.register(wk)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := wk.Run(ctx); err != nil && err != context.Canceled {
			log.WithError(err).WithField("GameID", wk.Game.ID).Error("game failed")
		}
	}()
	go writePump(conn, out)

	readPump(conn, wk, s.cfg.KeyLimiter())

	// The player left: stop the game, then let the writer drain and exit.
	cancel()
	<-wk.Done()
	close(out.send)
	s.unregister(wk.Game.ID)
}

// readPump forwards key messages from the connection to the worker until the
// connection closes.
func readPump(conn *websocket.Conn, wk *worker.Worker, limiter *rate.Limiter) {
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).WithField("GameID", wk.Game.ID).Warn("websocket read failed")
			}
			return
		}

		msg := KeyMessage{}
		if err := json.Unmarshal(data, &msg); err != nil {
			log.WithError(err).WithField("GameID", wk.Game.ID).Debug("ignoring malformed key message")
			continue
		}
		// Arrows always reach the worker. Only keys the game ignores anyway
		// are rate limited, so they cannot crowd out a real turn.
		if _, ok := rules.KeyDirection(msg.Key); !ok && !limiter.Allow() {
			log.WithField("GameID", wk.Game.ID).Debug("key rate exceeded, dropping key")
			continue
		}
		wk.Send(worker.KeyPressed{Key: msg.Key})
	}
}

// frameQueue buffers encoded frames between the worker and writePump.
type frameQueue struct {
	send chan []byte
	// quit is closed when writePump has stopped reading send.
	quit chan struct{}
}

func newFrameQueue(size int) *frameQueue {
	return &frameQueue{
		send: make(chan []byte, size),
		quit: make(chan struct{}),
	}
}

// push queues data. Ordinary frames are dropped when the buffer is full; the
// final frame waits for room so the client always sees the game end. push
// reports whether the frame was queued.
func (q *frameQueue) push(data []byte, final bool) bool {
	if !final {
		select {
		case q.send <- data:
			return true
		default:
			return false
		}
	}
	select {
	case q.send <- data:
		return true
	case <-q.quit:
		return false
	}
}

// writePump writes frames to the connection and keeps it alive with pings.
func writePump(conn *websocket.Conn, q *frameQueue) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		close(q.quit)
		ticker.Stop()
		conn.Close()
	}()
	send := q.send

	for {
		select {
		case message, ok := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
