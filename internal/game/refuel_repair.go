package game

import "novaturn/internal/model"

// RefuelRepairContext :
// The world context RefuelAndRepair needs to classify the star a fleet
// is sitting at: who owns it, whether it carries a starbase, and
// whether that starbase has a dock.
type RefuelRepairContext struct {
	Empire  *model.EmpireData
	World   *model.WorldSnapshot
	Catalog ComponentCatalog
}

// repairRate :
// The fraction of a token's maximum armour and shields restored this
// turn, by orbit situation. A fleet not in
// orbit at all (mid-transit) repairs at the "moving in empty space"
// rate; one that finished its move and holds station repairs at the
// "stopped in empty space" rate.
const (
	repairOwnStarbaseDock   = 0.20
	repairOwnStarbaseNoDock = 0.08
	repairOwnStarNoStarbase = 0.05
	repairAlliedStar        = 0.05
	repairEnemyStar         = 0.03
	repairStoppedEmptySpace = 0.02
	repairMovingEmptySpace  = 0.01
)

// RefuelAndRepair :
// Applies the post-movement refuel and repair policy for a
// fleet that has finished its movement for the turn. A fleet in orbit
// at a star owned by its own empire (or by an empire it holds
// RelationAlly with) refuels to full; every fleet also repairs a
// fraction of its maximum armour, the fraction set by where it sits.
func RefuelAndRepair(ctx RefuelRepairContext, fleet *model.Fleet, stoppedThisTurn bool) {
	star, owner, hasStar := orbitedStar(ctx, fleet)

	rate := repairRateFor(ctx, fleet, star, owner, hasStar, stoppedThisTurn)
	repairFleet(fleet, rate)

	if hasStar && (owner == ctx.Empire.ID || isAllied(ctx.Empire, owner)) {
		fleet.FuelAvailable = fleetFuelCapacity(ctx, fleet)
	}
}

// orbitedStar :
// Resolves the star a fleet is currently in orbit of, if any, along
// with its owner. A fleet with InOrbit unset is in deep space.
func orbitedStar(ctx RefuelRepairContext, fleet *model.Fleet) (star *model.Star, owner int, ok bool) {
	if fleet.InOrbit == "" {
		return nil, model.Nobody, false
	}
	star, found := ctx.World.AllStars[fleet.InOrbit]
	if !found {
		return nil, model.Nobody, false
	}
	return star, star.Owner, true
}

// isAllied :
// Returns whether `empire` regards `other` as an ally, defaulting to
// false for itself (handled separately by the caller) and for unknown
// empires.
func isAllied(empire *model.EmpireData, other int) bool {
	report, ok := empire.EmpireReports[other]
	return ok && report.Relation == model.RelationAlly
}

// repairRateFor :
// Picks the repair fraction for this turn, most favourable situation
// first.
func repairRateFor(ctx RefuelRepairContext, fleet *model.Fleet, star *model.Star, owner int, hasStar, stoppedThisTurn bool) float64 {
	if !hasStar {
		if stoppedThisTurn {
			return repairStoppedEmptySpace
		}
		return repairMovingEmptySpace
	}

	if owner == ctx.Empire.ID {
		if star.HasStarbase {
			if starbaseHasDock(ctx, star) {
				return repairOwnStarbaseDock
			}
			return repairOwnStarbaseNoDock
		}
		return repairOwnStarNoStarbase
	}

	if isAllied(ctx.Empire, owner) {
		return repairAlliedStar
	}

	return repairEnemyStar
}

// starbaseHasDock :
// Resolves whether the starbase fleet parked at `star` carries a dock
// component, per its design summary.
func starbaseHasDock(ctx RefuelRepairContext, star *model.Star) bool {
	base, ok := ctx.Empire.OwnedFleets[star.StarbaseKey]
	if !ok {
		return false
	}
	for _, token := range base.Tokens {
		design, ok := ctx.Empire.Designs[token.DesignKey]
		if ok && design.Summary.HasDock {
			return true
		}
	}
	return false
}

// repairFleet :
// Adds `rate` of each damaged token's maximum armour and shields,
// capped at the token's undamaged maximum.
func repairFleet(fleet *model.Fleet, rate float64) {
	if rate <= 0 {
		return
	}
	for _, t := range fleet.Tokens {
		if maxA := t.MaxArmour(); t.Armour < maxA {
			t.Armour += int(float64(maxA) * rate)
			if t.Armour > maxA {
				t.Armour = maxA
			}
		}
		if maxS := t.MaxShields(); t.Shields < maxS {
			t.Shields += int(float64(maxS) * rate)
			if t.Shields > maxS {
				t.Shields = maxS
			}
		}
	}
}

// fleetFuelCapacity :
// Sums the fuel capacity of every design represented in the fleet.
func fleetFuelCapacity(ctx RefuelRepairContext, fleet *model.Fleet) int {
	total := 0
	for _, token := range fleet.Tokens {
		design, ok := ctx.Empire.Designs[token.DesignKey]
		if !ok {
			continue
		}
		total += design.Summary.FuelCapacity * token.Quantity
	}
	return total
}
