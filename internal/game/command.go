package game

import (
	"strconv"

	"novaturn/internal/model"
)

// CommandMode :
// The edit-style operation a command performs. Not every command
// variant supports every mode.
type CommandMode int

const (
	ModeAdd CommandMode = iota
	ModeEdit
	ModeDelete
	ModeInsert
)

// Command :
// The sole way a player mutates empire state between turns. Each
// variant exposes exactly two operations: `Validate`, a pure check
// against a snapshot that must not mutate on failure, and `Apply`,
// which mutates and must never be called unless `Validate` returned
// ok.
type Command interface {
	// Validate checks the command against the current empire state.
	// Returning ok=false must not have mutated `empire`.
	Validate(empire *model.EmpireData) (ok bool, msg *model.Message)

	// Apply mutates `empire` according to the command. Only called
	// after a successful Validate.
	Apply(empire *model.EmpireData) (msg *model.Message)

	// Name identifies the command variant for the "Invalid Command"
	// message.
	Name() string
}

// ApplyCommand :
// Runs the validate/apply contract for a single command: on success,
// any message Validate or Apply chose to emit; on failure, any message
// Validate emitted plus exactly one "Invalid Command" message.
func ApplyCommand(empire *model.EmpireData, cmd Command) []model.Message {
	var out []model.Message

	ok, msg := cmd.Validate(empire)
	if msg != nil {
		out = append(out, *msg)
	}

	if !ok {
		out = append(out, model.NewMessage(
			empire.ID,
			model.MessageInvalidCommand,
			"Invalid "+cmd.Name()+" command for empire "+strconv.Itoa(empire.ID),
		))
		return out
	}

	if result := cmd.Apply(empire); result != nil {
		out = append(out, *result)
	}
	return out
}
