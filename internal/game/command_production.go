package game

import "novaturn/internal/model"

// ProductionCommand :
// Adds, edits or deletes an entry in an owned star's manufacturing
// queue.
type ProductionCommand struct {
	Mode    CommandMode
	Star    string
	Index   int
	Order   *model.ProductionOrder
}

func (c *ProductionCommand) Name() string { return "Production" }

// Validate :
// The star must be owned by the empire. Edit/Delete require the index
// to be in range for the star's current queue.
func (c *ProductionCommand) Validate(empire *model.EmpireData) (bool, *model.Message) {
	star, ok := empire.OwnedStars[c.Star]
	if !ok {
		return false, nil
	}

	switch c.Mode {
	case ModeAdd:
		return c.Order != nil, nil
	case ModeEdit, ModeDelete:
		return c.Index >= 0 && c.Index < len(star.ProductionQueue), nil
	default:
		return false, nil
	}
}

// Apply :
// Add at index i inserts at i if i < len(queue), else appends -- the
// index is renormalised to the actual insertion position.
func (c *ProductionCommand) Apply(empire *model.EmpireData) *model.Message {
	star := empire.OwnedStars[c.Star]

	switch c.Mode {
	case ModeAdd:
		idx := c.Index
		if idx > len(star.ProductionQueue) || idx < 0 {
			idx = len(star.ProductionQueue)
		}
		star.ProductionQueue = append(star.ProductionQueue, model.ProductionOrder{})
		copy(star.ProductionQueue[idx+1:], star.ProductionQueue[idx:])
		star.ProductionQueue[idx] = *c.Order

	case ModeEdit:
		star.ProductionQueue[c.Index] = *c.Order

	case ModeDelete:
		star.ProductionQueue = append(star.ProductionQueue[:c.Index], star.ProductionQueue[c.Index+1:]...)
	}

	return nil
}
