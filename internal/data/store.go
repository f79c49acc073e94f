package data

import "novaturn/internal/model"

// Store :
// The persistence boundary between the turn engine core and
// whatever backs it durably. A game's snapshot and its pending command
// queue are stored separately: the snapshot changes once per turn,
// the command queue churns continuously as empires submit orders
// between turns.
type Store interface {
	// Save persists the full snapshot for a game, overwriting
	// whatever was stored for it before.
	Save(world *model.WorldSnapshot) error

	// Load retrieves the most recently saved snapshot for a game.
	// ErrNotFound is returned if no snapshot has ever been saved.
	Load(gameID string) (*model.WorldSnapshot, error)

	// AppendCommands enqueues commands submitted by one empire for
	// the next turn. Multiple calls append; nothing is applied
	// until DrainCommands is called by the turn scheduler.
	AppendCommands(gameID string, empireID int, cmds []StoredCommand) error

	// DrainCommands returns every command queued for every empire
	// of a game since the last drain, and clears the queue. Returned
	// commands are grouped by empire and preserve submission order.
	DrainCommands(gameID string) (map[int][]StoredCommand, error)
}

// ErrNotFound :
// Returned by Load when the requested game has no saved snapshot.
var ErrNotFound = &notFoundError{}

type notFoundError struct{}

func (*notFoundError) Error() string { return "no snapshot found for game" }
