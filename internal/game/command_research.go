package game

import "novaturn/internal/model"

// ResearchCommand :
// Sets the empire's research budget percentage and per-field priority
// weights.
type ResearchCommand struct {
	Budget   int
	Priority model.TechLevel
}

func (c *ResearchCommand) Name() string { return "Research" }

// Validate :
// The budget must be in [0, 100]. A command whose (budget, priority)
// exactly matches the empire's current settings is a no-op and is
// rejected as invalid rather than silently accepted.
func (c *ResearchCommand) Validate(empire *model.EmpireData) (bool, *model.Message) {
	if c.Budget < 0 || c.Budget > 100 {
		return false, nil
	}

	if c.Budget == empire.Research.BudgetPercent && prioritiesEqual(c.Priority, empire.Research.Priority) {
		return false, nil
	}

	return true, nil
}

func prioritiesEqual(a, b model.TechLevel) bool {
	for _, f := range model.Fields {
		if a.Level(f) != b.Level(f) {
			return false
		}
	}
	return true
}

// Apply :
// Overwrites the empire's research settings.
func (c *ResearchCommand) Apply(empire *model.EmpireData) *model.Message {
	empire.Research.BudgetPercent = c.Budget
	empire.Research.Priority = c.Priority.Clone()
	return nil
}
