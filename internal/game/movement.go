package game

import (
	"fmt"
	"math/rand"

	"novaturn/internal/model"
)

// fuelEpsilon :
// The floor used in place of zero when dividing by a fuel consumption
// rate, so a fleet generating fuel (warp 1, ram scoops) never produces
// a divide-by-zero "time until empty".
const fuelEpsilon = 1e-9

// MovementContext :
// Everything MoveFleet needs beyond the fleet itself: the owning
// empire (for race traits and design lookups) and the catalog (for
// engine fuel tables).
type MovementContext struct {
	Empire  *model.EmpireData
	Catalog ComponentCatalog
	Rand    *rand.Rand
}

// MoveFleet :
// Advances one fleet by up to one year along its waypoint list.
// Returns the messages produced (fuel exhaustion, engine
// failure).
func MoveFleet(ctx MovementContext, fleet *model.Fleet) []model.Message {
	var msgs []model.Message

	if len(fleet.Waypoints) == 0 {
		return msgs
	}

	dest := fleet.Waypoints[0]
	if dest.Position == fleet.Position {
		if len(fleet.Waypoints) > 1 {
			fleet.Waypoints = fleet.Waypoints[1:]
			return MoveFleet(ctx, fleet)
		}
		return msgs
	}

	warp := dest.WarpFactor
	if warp <= 0 {
		return msgs
	}

	// Cheap Engines: at warp > 6 there's a 1-in-10 chance the engines
	// fail to start this turn.
	if raceHasTrait(ctx.Empire, model.TraitCheapEngines) && warp > 6 {
		if ctx.Rand.Intn(10) == 0 {
			return append(msgs, model.NewFleetMessage(ctx.Empire.ID, model.MessageEngineFailure,
				fmt.Sprintf("%s's engines failed to start this turn.", fleet.Name), fleet.Key))
		}
	}

	distance := fleet.Position.DistanceTo(dest.Position)
	speed := float64(warp * warp)

	rate := fuelConsumptionRate(ctx, fleet, warp)

	timeToArrival := distance / speed
	timeUntilEmpty := 1.0
	if rate > 0 {
		timeUntilEmpty = float64(fleet.FuelAvailable) / maxF(rate, fuelEpsilon)
	}

	travelTime := minF(1.0, timeToArrival)
	travelTime = minF(travelTime, timeUntilEmpty)
	if travelTime < 0 {
		travelTime = 0
	}

	traveled := travelTime * speed
	fleet.Position = fleet.Position.StepTowards(dest.Position, traveled)

	fuelUsed := int(rate * travelTime)
	fleet.FuelAvailable -= fuelUsed
	if fleet.FuelAvailable < 0 {
		fleet.FuelAvailable = 0
	}

	arrived := fleet.Position == dest.Position
	if arrived {
		fleet.InOrbit = dest.Destination
		fleet.Waypoints = fleet.Waypoints[1:]
		fleet.EnsureIdleWaypoint()
	} else {
		fleet.InOrbit = ""
	}

	if !arrived && travelTime >= timeUntilEmpty && rate > 0 {
		free := freeWarpSpeedForFleet(ctx, fleet)
		if free < 1 {
			free = 1
		}
		fleet.Waypoints[0].WarpFactor = free
		msgs = append(msgs, model.NewFleetMessage(ctx.Empire.ID, model.MessageFuelExhausted,
			fmt.Sprintf("%s has run out of fuel. Speed reduced to Warp %d.", fleet.Name, free), fleet.Key))
	}

	return msgs
}

// fuelConsumptionRate :
// The engine's per-warp table entry, scaled by (ship mass + cargo
// mass)/200, with IFE applying a flat 0.85 multiplier. A fleet with
// mixed engines sums each token's contribution, accounted per ship
// type rather than once for the whole fleet.
func fuelConsumptionRate(ctx MovementContext, fleet *model.Fleet, warp int) float64 {
	if warp == 1 {
		return -1
	}

	total := 0.0
	massFactor := float64(fleet.TotalMass()) / 200.0

	for _, token := range fleet.Tokens {
		design, ok := ctx.Empire.Designs[token.DesignKey]
		if !ok || design.Summary.Engine == "" {
			continue
		}
		engine, ok := ctx.Catalog.Engine(design.Summary.Engine)
		if !ok {
			continue
		}

		use := float64(engine.FuelUseAt(warp)) * massFactor
		if raceHasTrait(ctx.Empire, model.TraitImprovedFuel) {
			use *= 0.85
		}
		total += use
	}

	return total
}

// freeWarpSpeedForFleet :
// The highest warp factor at which every engine in the fleet burns no
// fuel -- the speed a fleet is dropped to when it runs dry.
func freeWarpSpeedForFleet(ctx MovementContext, fleet *model.Fleet) int {
	free := 10
	seen := false
	for _, token := range fleet.Tokens {
		design, ok := ctx.Empire.Designs[token.DesignKey]
		if !ok || design.Summary.Engine == "" {
			continue
		}
		engine, ok := ctx.Catalog.Engine(design.Summary.Engine)
		if !ok {
			continue
		}
		seen = true
		if fws := engine.FreeWarpSpeed(); fws < free {
			free = fws
		}
	}
	if !seen {
		return 0
	}
	return free
}

func raceHasTrait(empire *model.EmpireData, t model.Trait) bool {
	return empire.Race.HasTrait(t)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
