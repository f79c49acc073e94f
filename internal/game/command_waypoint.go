package game

import (
	"fmt"

	"novaturn/internal/model"
)

// WaypointCommand :
// Adds, edits, deletes or inserts a waypoint on one of the submitting
// empire's fleets.
type WaypointCommand struct {
	Mode     CommandMode
	FleetKey uint64
	Index    int
	Waypoint model.Waypoint
}

func (c *WaypointCommand) Name() string { return "Waypoint" }

// Validate :
// A waypoint command is only valid against a fleet the empire owns.
// Delete with an out-of-range index fails validation, so nothing is
// mutated and ApplyCommand reports it as an invalid command.
func (c *WaypointCommand) Validate(empire *model.EmpireData) (bool, *model.Message) {
	fleet, ok := empire.OwnedFleets[c.FleetKey]
	if !ok {
		return false, nil
	}

	switch c.Mode {
	case ModeDelete, ModeEdit:
		if c.Index < 0 || c.Index >= len(fleet.Waypoints) {
			msg := model.NewMessage(empire.ID, model.MessageInvalidCommand,
				fmt.Sprintf("waypoint index %d out of range for fleet %d", c.Index, c.FleetKey))
			return false, &msg
		}
	case ModeInsert:
		if c.Index < 0 {
			return false, nil
		}
	case ModeAdd:
		// Always valid to append to an owned fleet.
	default:
		return false, nil
	}

	return true, nil
}

// Apply :
// Mutates the fleet's waypoint list. Edit is implemented as
// pop-then-insert at the same index.
func (c *WaypointCommand) Apply(empire *model.EmpireData) *model.Message {
	fleet := empire.OwnedFleets[c.FleetKey]

	switch c.Mode {
	case ModeAdd:
		fleet.Waypoints = append(fleet.Waypoints, c.Waypoint)

	case ModeInsert:
		idx := c.Index
		if idx > len(fleet.Waypoints) {
			idx = len(fleet.Waypoints)
		}
		fleet.Waypoints = append(fleet.Waypoints, model.Waypoint{})
		copy(fleet.Waypoints[idx+1:], fleet.Waypoints[idx:])
		fleet.Waypoints[idx] = c.Waypoint

	case ModeEdit:
		if c.Index < 0 || c.Index >= len(fleet.Waypoints) {
			return nil
		}
		fleet.Waypoints = append(fleet.Waypoints[:c.Index], fleet.Waypoints[c.Index+1:]...)
		idx := c.Index
		if idx > len(fleet.Waypoints) {
			idx = len(fleet.Waypoints)
		}
		fleet.Waypoints = append(fleet.Waypoints, model.Waypoint{})
		copy(fleet.Waypoints[idx+1:], fleet.Waypoints[idx:])
		fleet.Waypoints[idx] = c.Waypoint

	case ModeDelete:
		fleet.Waypoints = append(fleet.Waypoints[:c.Index], fleet.Waypoints[c.Index+1:]...)
	}

	return nil
}
