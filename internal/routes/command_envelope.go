package routes

import (
	"encoding/json"
	"fmt"

	"novaturn/internal/game"
	"novaturn/internal/model"
)

// commandEnvelope :
// The wire shape a client submits a command in: a `kind` naming the
// variant and a `payload` holding that variant's JSON-encoded fields,
// mirroring how the same command is tagged for storage.
type commandEnvelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// decodeCommand :
// Reconstructs the concrete command a wire envelope names. Unknown
// kinds and malformed payloads are reported back to the submitter as
// a 400 rather than silently dropped.
func decodeCommand(env commandEnvelope) (game.Command, error) {
	switch env.Kind {
	case "Waypoint":
		var c game.WaypointCommand
		if err := json.Unmarshal(env.Payload, &c); err != nil {
			return nil, err
		}
		return &c, nil
	case "Production":
		var c game.ProductionCommand
		if err := json.Unmarshal(env.Payload, &c); err != nil {
			return nil, err
		}
		return &c, nil
	case "Research":
		var c struct {
			Budget   int             `json:"budget"`
			Priority model.TechLevel `json:"priority"`
		}
		if err := json.Unmarshal(env.Payload, &c); err != nil {
			return nil, err
		}
		return &game.ResearchCommand{Budget: c.Budget, Priority: c.Priority}, nil
	case "Design":
		var c game.DesignCommand
		if err := json.Unmarshal(env.Payload, &c); err != nil {
			return nil, err
		}
		return &c, nil
	default:
		return nil, fmt.Errorf("unknown command kind %q", env.Kind)
	}
}
