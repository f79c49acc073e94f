package data

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"novaturn/internal/game"
)

// StoredCommand :
// A tagged-variant envelope around one `game.Command`, in the shape
// the command log is actually stored and transmitted in.
//
// The `Kind` names the command variant ("Waypoint", "Production",
// "Research", "Design"), matching the string each variant's `Name()`
// returns.
//
// The `Payload` is the BSON-marshalled variant-specific fields.
type StoredCommand struct {
	Kind    string   `bson:"kind"`
	Payload bson.Raw `bson:"payload"`
}

// EncodeCommand :
// Wraps a concrete command into its storable envelope.
func EncodeCommand(cmd game.Command) (StoredCommand, error) {
	payload, err := bson.Marshal(cmd)
	if err != nil {
		return StoredCommand{}, fmt.Errorf("encode %s command: %w", cmd.Name(), err)
	}
	return StoredCommand{Kind: cmd.Name(), Payload: payload}, nil
}

// DecodeCommand :
// Reconstructs the concrete command a StoredCommand envelope wraps.
// Unknown kinds are reported rather than silently dropped, since a
// dropped command would silently break the guarantee that every
// submitted command is either applied or reported invalid.
func DecodeCommand(sc StoredCommand) (game.Command, error) {
	switch sc.Kind {
	case "Waypoint":
		var c game.WaypointCommand
		if err := bson.Unmarshal(sc.Payload, &c); err != nil {
			return nil, err
		}
		return &c, nil
	case "Production":
		var c game.ProductionCommand
		if err := bson.Unmarshal(sc.Payload, &c); err != nil {
			return nil, err
		}
		return &c, nil
	case "Research":
		var c game.ResearchCommand
		if err := bson.Unmarshal(sc.Payload, &c); err != nil {
			return nil, err
		}
		return &c, nil
	case "Design":
		var c game.DesignCommand
		if err := bson.Unmarshal(sc.Payload, &c); err != nil {
			return nil, err
		}
		return &c, nil
	default:
		return nil, fmt.Errorf("unknown command kind %q", sc.Kind)
	}
}

// DecodeAll :
// Decodes every stored command for every empire, skipping (and
// reporting via the returned slice of errors) any envelope that
// fails to decode rather than aborting the whole drain.
func DecodeAll(stored map[int][]StoredCommand) (map[int][]game.Command, []error) {
	out := make(map[int][]game.Command, len(stored))
	var errs []error

	for empireID, cmds := range stored {
		decoded := make([]game.Command, 0, len(cmds))
		for _, sc := range cmds {
			cmd, err := DecodeCommand(sc)
			if err != nil {
				errs = append(errs, fmt.Errorf("empire %d: %w", empireID, err))
				continue
			}
			decoded = append(decoded, cmd)
		}
		out[empireID] = decoded
	}

	return out, errs
}
