package game

import "novaturn/internal/model"

// formStacks :
// Emits one stack per ship design held by each participating fleet.
// Stack keys encode the owning empire
// and a counter local to this battle, the same shape as every other
// key in the engine.
func formStacks(ctx BattleContext, engagement Engagement) []*Stack {
	var stacks []*Stack
	var counter uint32

	for _, fleet := range engagement.Fleets {
		empire, ok := ctx.Empires[fleet.Owner]
		if !ok {
			continue
		}
		for _, token := range fleet.Tokens {
			if token.Quantity <= 0 {
				continue
			}
			design, ok := empire.Designs[token.DesignKey]
			if !ok {
				continue
			}
			if design.Stale {
				_ = RecomputeSummary(design, ctx.Catalog)
			}

			counter++
			stacks = append(stacks, &Stack{
				Key:        model.MakeFleetKey(fleet.Owner, counter),
				Owner:      fleet.Owner,
				DesignKey:  token.DesignKey,
				FleetKey:   fleet.Key,
				Quantity:   token.Quantity,
				Armour:     token.Armour,
				MaxArmour:  token.MaxArmour(),
				Shields:    token.Shields,
				MaxShields: token.MaxShields(),
				SpeedClass: battleSpeedClass(design.Summary),
				Initiative: design.Summary.BattleInit,
				Weapons:    design.Summary.Weapons,
				IsStarbase: design.Summary.IsStarbase,
				IsBomber:   design.Summary.BombKillPercent > 0,
				Mass:       token.Mass(),
				Cost:       token.PerShipCost.ScaleInt(token.Quantity),
				BattlePlan: fleetBattlePlan(fleet),
			})
		}
	}

	return stacks
}

// fleetBattlePlan :
// The battle plan name a fleet fights under, defaulting to "Default"
// for a fleet that never set one.
func fleetBattlePlan(fleet *model.Fleet) string {
	if fleet.BattlePlanName == "" {
		return "Default"
	}
	return fleet.BattlePlanName
}

// battleSpeedClass :
// Snaps a design's battle speed to one of the nine movement-table
// classes, rounding to the nearest defined
// class.
func battleSpeedClass(summary model.DesignSummary) float64 {
	classes := []float64{0.5, 0.75, 1.0, 1.25, 1.5, 1.75, 2.0, 2.25, 2.5}
	best := classes[0]
	bestDist := -1.0
	for _, c := range classes {
		d := summary.BattleSpeedClsN - c
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}
