package routes

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"

	"novaturn/internal/data"
	"novaturn/internal/game"
	"novaturn/internal/locker"
	"novaturn/internal/model"
	"novaturn/pkg/dispatcher"
	"novaturn/pkg/logger"
	"novaturn/pkg/notifier"
)

func getModuleName() string { return "routes" }

// Server :
// Wires the command-intake and snapshot-query endpoints to the engine
// core. It keeps one in-memory `*model.WorldSnapshot` per active game,
// loading it from `store` on first touch and guarding every read or
// mutation through `guard` so a snapshot query never observes a
// partially-applied turn.
type Server struct {
	store    data.Store
	notify   notifier.Notifier
	catalog  game.ComponentCatalog
	guard    *locker.WorldGuard
	log      logger.Logger

	mu         sync.Mutex
	worlds     map[string]*model.WorldSnapshot
	loadLocker *locker.ConcurrentLocker
}

// NewServer :
func NewServer(store data.Store, notify notifier.Notifier, catalog game.ComponentCatalog, guard *locker.WorldGuard, log logger.Logger) *Server {
	return &Server{
		store:      store,
		notify:     notify,
		catalog:    catalog,
		guard:      guard,
		log:        log,
		worlds:     make(map[string]*model.WorldSnapshot),
		loadLocker: locker.NewConcurrentLocker(log),
	}
}

// Register :
// Binds every route this server handles onto `router`.
func (s *Server) Register(router *dispatcher.Router) {
	router.HandleFunc("games/[0-9]+/commands/[0-9]+", dispatcher.WithSafetyNet(s.log, s.submitCommand)).Methods("POST")
	router.HandleFunc("games/[0-9]+/snapshot", dispatcher.WithSafetyNet(s.log, s.getSnapshot)).Methods("GET")
	router.HandleFunc("games/[0-9]+/turn", dispatcher.WithSafetyNet(s.log, s.postTurn)).Methods("POST")
	router.HandleFunc("games/[0-9]+/subscribe", dispatcher.WithSafetyNet(s.log, s.subscribe)).Methods("GET")
}

// worldFor :
// Returns the cached snapshot for `gameID`, loading it from the store
// on first access. A concurrent request for a different game is never
// blocked behind this game's load: `loadLocker` hands out one lock per
// game id, so only requests racing on the *same* uncached game
// serialize on the store round-trip. Callers must still take `guard`
// before reading or mutating the returned pointer's fields.
func (s *Server) worldFor(gameID string) (*model.WorldSnapshot, error) {
	s.mu.Lock()
	world, ok := s.worlds[gameID]
	s.mu.Unlock()
	if ok {
		return world, nil
	}

	gameLock := s.loadLocker.Acquire(gameID)
	defer s.loadLocker.Release(gameLock)
	gameLock.Lock()
	defer gameLock.Release()

	s.mu.Lock()
	world, ok = s.worlds[gameID]
	s.mu.Unlock()
	if ok {
		return world, nil
	}

	world, err := s.store.Load(gameID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.worlds[gameID] = world
	s.mu.Unlock()
	return world, nil
}

// GenerateTurn :
// Drains every queued command for `gameID`, runs the turn pipeline
// against the cached snapshot under a write lock, persists the
// result, and broadcasts it -- this is the function a per-game
// `background.Process` built by `background.NewTurnScheduler` invokes
// on its own interval, as well as what the manual turn endpoint below
// triggers on demand.
func (s *Server) GenerateTurn(gameID string, seed int64) (bool, error) {
	world, err := s.worldFor(gameID)
	if err != nil {
		return false, fmt.Errorf("load game %s: %w", gameID, err)
	}

	stored, err := s.store.DrainCommands(gameID)
	if err != nil {
		return false, fmt.Errorf("drain commands for game %s: %w", gameID, err)
	}
	commands, decodeErrs := data.DecodeAll(stored)
	for _, derr := range decodeErrs {
		s.log.Trace(logger.Warning, getModuleName(), fmt.Sprintf("dropping malformed command for game %s: %v", gameID, derr))
	}

	numericID, convErr := strconv.Atoi(gameID)
	if convErr != nil {
		numericID = 0
	}

	var result game.TurnResult
	s.guard.WriteSnapshot(numericID, func() {
		result = game.RunTurn(world, s.catalog, game.TurnInput{Commands: commands, Seed: seed})
	})

	if result.Err != nil {
		s.log.Trace(logger.Error, getModuleName(), fmt.Sprintf("turn aborted for game %s: %v", gameID, result.Err))
		return false, result.Err
	}

	if err := s.store.Save(world); err != nil {
		return false, fmt.Errorf("save game %s: %w", gameID, err)
	}

	if err := s.notify.TurnGenerated(gameID, world.TurnYear, result.Messages); err != nil {
		s.log.Trace(logger.Warning, getModuleName(), fmt.Sprintf("notify failed for game %s: %v", gameID, err))
	}

	return true, nil
}

// newSeed :
// Turn seeds aren't required to be unpredictable, only to vary
// between turns so replays of a captured command log reproduce the
// same outcome while two different turns don't share one.
func newSeed() int64 {
	return rand.Int63()
}
