package game

import "novaturn/internal/model"

// DesignCommand :
// Adds, toggles the obsolete flag on, or deletes a ship design.
type DesignCommand struct {
	Mode   CommandMode
	Key    uint64
	Design *model.ShipDesign
}

func (c *DesignCommand) Name() string { return "Design" }

// Validate :
// Add rejects duplicates; Edit/Delete require the design to exist.
func (c *DesignCommand) Validate(empire *model.EmpireData) (bool, *model.Message) {
	switch c.Mode {
	case ModeAdd:
		if c.Design == nil {
			return false, nil
		}
		_, exists := empire.Designs[c.Design.Key]
		return !exists, nil
	case ModeEdit, ModeDelete:
		_, exists := empire.Designs[c.Key]
		return exists, nil
	default:
		return false, nil
	}
}

// Apply :
// Design deletion cascades: every token of that design is stripped
// from every owned fleet and fleets left empty are removed. Fleet
// reports are not touched here; the scan step rebuilds them at the end
// of the turn.
func (c *DesignCommand) Apply(empire *model.EmpireData) *model.Message {
	switch c.Mode {
	case ModeAdd:
		empire.Designs[c.Design.Key] = c.Design

	case ModeEdit:
		d := empire.Designs[c.Key]
		d.Obsolete = !d.Obsolete

	case ModeDelete:
		delete(empire.Designs, c.Key)

		// Fleet reports key on fleet identity, not design, so a
		// deleted design cannot leave one stale directly; the
		// per-turn scan step (C7) already clears every foreign fleet
		// report each turn and rebuilds only what's still visible.
		for key, fleet := range empire.OwnedFleets {
			fleet.RemoveDesign(c.Key)
			if fleet.IsEmpty() {
				delete(empire.OwnedFleets, key)
			}
		}
	}
	return nil
}
