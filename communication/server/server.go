package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"pawns/communication"
	"pawns/engine"
	"pawns/game"
	"pawns/searcher"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

var errNoSession = errors.New("no game has been set up")

// ServerCommunicator serves a single engine session over HTTP. A new setup
// replaces the running session.
type ServerCommunicator struct {
	session *engine.Session
	options []searcher.Option
	mutex   sync.RWMutex
	router  chi.Router
}

// NewServerCommunicator initializes the routes. options configure the
// minimax agent of every session set up through the server.
func NewServerCommunicator(options ...searcher.Option) *ServerCommunicator {
	sc := &ServerCommunicator{
		options: options,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Post("/setup", sc.handleSetup)
	r.Post("/move", sc.handleMove)
	r.Get("/board", sc.handleBoard)

	sc.router = r
	return sc
}

func (sc *ServerCommunicator) Handler() http.Handler {
	return sc.router
}

// Start listens on addr until the server fails.
func (sc *ServerCommunicator) Start(addr string) error {
	log.Info().Msgf("session server listening on %s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           sc.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (sc *ServerCommunicator) handleSetup(w http.ResponseWriter, r *http.Request) {
	var setup game.Setup
	if err := json.NewDecoder(r.Body).Decode(&setup); err != nil {
		writeError(w, decodeStatus(err), err)
		return
	}

	session, err := engine.Setup(setup, sc.options...)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}

	sc.mutex.Lock()
	sc.session = session
	sc.mutex.Unlock()

	log.Info().Msgf("new session: engine plays %v with %d white and %d black pawns", setup.Color, len(setup.White), len(setup.Black))
	writeJSON(w, http.StatusCreated, boardResponse(session))
}

func (sc *ServerCommunicator) handleMove(w http.ResponseWriter, r *http.Request) {
	var req communication.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, decodeStatus(err), err)
		return
	}

	session, err := sc.current()
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}

	move, state, err := session.MoveState(req.Previous)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}

	writeJSON(w, http.StatusOK, communication.MoveResponse{
		Move:     move,
		GameOver: state.GameOver,
		Winner:   state.Winner,
	})
}

func (sc *ServerCommunicator) handleBoard(w http.ResponseWriter, r *http.Request) {
	session, err := sc.current()
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, boardResponse(session))
}

func (sc *ServerCommunicator) current() (*engine.Session, error) {
	sc.mutex.RLock()
	defer sc.mutex.RUnlock()
	if sc.session == nil {
		return nil, errNoSession
	}
	return sc.session, nil
}

func boardResponse(session *engine.Session) communication.BoardResponse {
	state := session.State()
	return communication.BoardResponse{
		Cells:    state.Board,
		Color:    state.Color,
		GameOver: state.GameOver,
		Winner:   state.Winner,
		Plies:    state.Plies,
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, game.ErrOutOfBounds),
		errors.Is(err, game.ErrMalformedPosition),
		errors.Is(err, game.ErrUnknownSide),
		errors.Is(err, engine.ErrIllegalMove):
		return http.StatusBadRequest
	case errors.Is(err, searcher.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, searcher.ErrNoLegalMoves):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// decodeStatus is the status of a request body that failed to decode. Any
// decoding failure is the client's fault.
func decodeStatus(err error) int {
	if status := statusOf(err); status != http.StatusInternalServerError {
		return status
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, communication.ErrorResponse{Error: err.Error()})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Debug().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request served")
		}()
		next.ServeHTTP(ww, r)
	})
}
