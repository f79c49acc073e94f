package game

import "novaturn/internal/model"

// salvageFactor :
// The fraction of a destroyed stack's cost recovered as salvage.
const salvageFactor = 0.75

// starSalvageFactor :
// When salvage lands on a star rather than empty space, only this
// fraction of it is actually recoverable.
const starSalvageFactor = 0.9

// collectDestroyed :
// Gathers every stack destroyed during the battle into
// DestructionEvents (for the caller to remove tokens from parent
// fleets) and a per-loss message. Salvage deposit itself happens in
// applyDestruction (battle.go), which knows whether a star occupies
// the battle position.
func collectDestroyed(stacks []*Stack) ([]DestructionEvent, []model.Message) {
	var events []DestructionEvent
	var msgs []model.Message

	for _, s := range stacks {
		if !s.Destroyed {
			continue
		}
		events = append(events, DestructionEvent{
			Owner:     s.Owner,
			FleetKey:  s.FleetKey,
			DesignKey: s.DesignKey,
			Quantity:  s.Quantity,
			Cost:      s.Cost.ScaleCeil(salvageFactor),
		})
		msgs = append(msgs, destructionMessage(s))
	}

	return events, msgs
}

// DepositSalvage :
// Applies the combined salvage from a battle's destruction events
//: onto the star at the battle position if one exists, at
// the reduced `starSalvageFactor`, or into a new "S A L V A G E" fleet
// in empty space otherwise.
func DepositSalvage(empireAtTurn int, position model.Position, star *model.Star, events []DestructionEvent, turnYear int, nextFleetKey func() uint64) *model.Fleet {
	var total model.Resources
	for _, e := range events {
		total = total.Add(e.Cost)
	}
	if total.IsZero() {
		return nil
	}

	if star != nil {
		star.ResourcesOnHand = star.ResourcesOnHand.Add(total.ScaleCeil(starSalvageFactor))
		return nil
	}

	fleet := model.NewFleet(nextFleetKey(), model.Nobody, model.SalvageFleetName, position)
	fleet.Cargo.Ironium = total.Ironium
	fleet.Cargo.Boranium = total.Boranium
	fleet.Cargo.Germanium = total.Germanium
	fleet.TurnCreated = turnYear
	return fleet
}
