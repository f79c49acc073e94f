package notifier

import "novaturn/internal/model"

// Notifier :
// Pushes the `turn_generated` event to whatever is
// listening for a game's turn results. The turn engine core never
// imports this package directly; the scheduler that drives `RunTurn`
// calls it after a successful save so a failed notification never
// blocks or rolls back a turn that otherwise succeeded.
type Notifier interface {
	// TurnGenerated announces that `gameID` advanced to `turnYear`,
	// carrying the per-empire messages accumulated during the turn.
	TurnGenerated(gameID string, turnYear int, messages map[int][]model.Message) error
}
