// Package api serves the browser version of the game. Each websocket
// connection plays its own game; reloading the page starts a new one.
package api

import (
	"context"
	"embed"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/worker"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

//go:embed static
var static embed.FS

// Server is the http server for the browser game.
type Server struct {
	hs  *http.Server
	cfg config.Config

	// Spawner overrides food placement for new games. Nil means random.
	Spawner rules.FoodSpawner

	lock  sync.RWMutex
	games map[string]*worker.Worker
}

// StatusResponse is the body of GET /games/:id.
type StatusResponse struct {
	Game      *rules.Game  `json:"game"`
	LastFrame *rules.Frame `json:"lastFrame"`
	Direction string       `json:"direction"`
}

// New will initialize a new Server listening on addr.
func New(addr string, cfg config.Config) *Server {
	s := &Server{
		cfg:   cfg,
		games: map[string]*worker.Worker{},
	}
	router := httprouter.New()
	router.GET("/", s.index)
	router.GET("/config", s.boardConfig)
	router.GET("/socket", s.socket)
	router.GET("/games/:id", s.status)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// Handler returns the root http handler.
func (s *Server) Handler() http.Handler { return s.hs.Handler }

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("snake api serving")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return errors.Wrapf(err, "api: listening on %s", s.hs.Addr)
}

// Shutdown stops accepting connections.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

func (s *Server) index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	data, err := static.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Warn("unable to write index")
	}
}

func (s *Server) boardConfig(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, s.cfg)
}

func (s *Server) status(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	wk, ok := s.lookup(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "game not found"})
		return
	}
	writeJSON(w, http.StatusOK, &StatusResponse{
		Game:      wk.Game,
		LastFrame: wk.Frame(),
		Direction: string(wk.Direction()),
	})
}

func (s *Server) register(wk *worker.Worker) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.games[wk.Game.ID] = wk
}

func (s *Server) unregister(id string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.games, id)
}

func (s *Server) lookup(id string) (*worker.Worker, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	wk, ok := s.games[id]
	return wk, ok
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("unable to write response")
	}
}
