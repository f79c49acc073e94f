package routes

import (
	"net/http"
	"strconv"

	"novaturn/internal/data"
	"novaturn/pkg/handlers"
	"novaturn/pkg/logger"
)

// submitCommand :
// POST games/{id}/commands/{empireId} -- queues one command for the
// empire's next turn. Commands are validated and applied only when
// the turn actually runs; this endpoint only has to get
// the envelope onto the queue in submission order.
func (s *Server) submitCommand(w http.ResponseWriter, r *http.Request) {
	segments := handlers.PathSegments(r.URL.Path)
	gameID := segments[1]
	empireID, err := strconv.Atoi(segments[3])
	if err != nil {
		handlers.ReplyError(w, s.log, getModuleName(), logger.Warning, http.StatusBadRequest, err)
		return
	}

	var env commandEnvelope
	if err := handlers.DecodeJSON(r, &env); err != nil {
		handlers.ReplyError(w, s.log, getModuleName(), logger.Warning, http.StatusBadRequest, err)
		return
	}

	cmd, err := decodeCommand(env)
	if err != nil {
		handlers.ReplyError(w, s.log, getModuleName(), logger.Warning, http.StatusBadRequest, err)
		return
	}

	stored, err := data.EncodeCommand(cmd)
	if err != nil {
		handlers.ReplyError(w, s.log, getModuleName(), logger.Error, http.StatusInternalServerError, err)
		return
	}

	if err := s.store.AppendCommands(gameID, empireID, []data.StoredCommand{stored}); err != nil {
		handlers.ReplyError(w, s.log, getModuleName(), logger.Error, http.StatusInternalServerError, err)
		return
	}

	handlers.WriteJSON(w, http.StatusAccepted, struct {
		Queued bool `json:"queued"`
	}{Queued: true})
}

// getSnapshot :
// GET games/{id}/snapshot -- returns the full authoritative state of
// a game. Read under the world guard's read lock so the response
// never straddles an in-progress turn.
func (s *Server) getSnapshot(w http.ResponseWriter, r *http.Request) {
	segments := handlers.PathSegments(r.URL.Path)
	gameID := segments[1]

	world, err := s.worldFor(gameID)
	if err != nil {
		handlers.ReplyError(w, s.log, getModuleName(), logger.Warning, http.StatusNotFound, err)
		return
	}

	numericID, convErr := strconv.Atoi(gameID)
	if convErr != nil {
		numericID = 0
	}

	s.guard.ReadSnapshot(numericID, func() {
		handlers.WriteJSON(w, http.StatusOK, world)
	})
}

// postTurn :
// POST games/{id}/turn -- manually triggers turn generation,
// independent of the scheduler's own interval. Useful for
// administration and for tests that don't want to wait out a live
// schedule.
func (s *Server) postTurn(w http.ResponseWriter, r *http.Request) {
	segments := handlers.PathSegments(r.URL.Path)
	gameID := segments[1]

	if _, err := s.GenerateTurn(gameID, newSeed()); err != nil {
		handlers.ReplyError(w, s.log, getModuleName(), logger.Error, http.StatusInternalServerError, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, struct {
		Generated bool `json:"generated"`
	}{Generated: true})
}

// subscribe :
// GET games/{id}/subscribe -- upgrades to a websocket and streams
// `turn_generated` events for the game.
func (s *Server) subscribe(w http.ResponseWriter, r *http.Request) {
	segments := handlers.PathSegments(r.URL.Path)
	gameID := segments[1]

	ws, ok := s.notify.(interface {
		Subscribe(gameID string, w http.ResponseWriter, r *http.Request) error
	})
	if !ok {
		handlers.ReplyError(w, s.log, getModuleName(), logger.Error, http.StatusNotImplemented,
			errUnsupportedNotifier)
		return
	}

	if err := ws.Subscribe(gameID, w, r); err != nil {
		s.log.Trace(logger.Warning, getModuleName(), err.Error())
	}
}

var errUnsupportedNotifier = errSubscriptionUnsupported{}

type errSubscriptionUnsupported struct{}

func (errSubscriptionUnsupported) Error() string {
	return "configured notifier does not support subscriptions"
}
