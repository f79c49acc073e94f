package game

import (
	"fmt"

	"novaturn/internal/model"
)

// RunColonisation :
// Processes every fleet sitting at a Colonise waypoint. Valid iff the fleet carries a colonisation module,
// holds at least 1 kT of colonists, and the target star is unowned. On
// success the colonising token is consumed and the fleet's cargo is
// transferred onto the new colony.
func RunColonisation(ctx PostBattleContext, world *model.WorldSnapshot) []model.Message {
	var msgs []model.Message

	for _, empire := range world.AllEmpires {
		for _, fleet := range empire.OwnedFleets {
			if len(fleet.Waypoints) == 0 || fleet.Waypoints[0].Task.Kind != model.ColoniseTask {
				continue
			}
			if fleet.InOrbit == "" {
				continue
			}
			star, ok := world.AllStars[fleet.InOrbit]
			if !ok {
				continue
			}

			msg := colonise(ctx, empire, fleet, star)
			if msg != nil {
				msgs = append(msgs, *msg)
			}
			consumeArrivalTask(fleet)
		}
	}

	return msgs
}

// colonise :
// Applies one colonisation attempt, returning a failure message if the
// preconditions aren't met and a success message otherwise.
func colonise(ctx PostBattleContext, empire *model.EmpireData, fleet *model.Fleet, star *model.Star) *model.Message {
	if star.IsOwned() {
		m := model.NewFleetMessage(empire.ID, model.MessageColonise,
			fmt.Sprintf("Colonisation of %s failed: already owned.", star.Name), fleet.Key)
		return &m
	}
	if fleet.Cargo.Colonists < 1 {
		m := model.NewFleetMessage(empire.ID, model.MessageColonise,
			fmt.Sprintf("Colonisation of %s failed: no colonists aboard.", star.Name), fleet.Key)
		return &m
	}

	colonyTokenKey, ok := findColonyToken(ctx, empire, fleet)
	if !ok {
		m := model.NewFleetMessage(empire.ID, model.MessageColonise,
			fmt.Sprintf("Colonisation of %s failed: no colony module in range.", star.Name), fleet.Key)
		return &m
	}

	star.Owner = empire.ID
	star.Colonists = fleet.Cargo.ColonistHeadcount()
	star.ResourcesOnHand = star.ResourcesOnHand.Add(fleet.Cargo.Minerals())
	fleet.Cargo = model.Cargo{}

	if token := fleet.Tokens[colonyTokenKey]; token != nil {
		token.Quantity--
		if token.Quantity <= 0 {
			delete(fleet.Tokens, colonyTokenKey)
		} else {
			token.Armour = token.PerShipArmour * token.Quantity
			token.Shields = token.PerShipShields * token.Quantity
		}
	}

	m := model.NewFleetMessage(empire.ID, model.MessageColonise,
		fmt.Sprintf("%s colonised by %s.", star.Name, fleet.Name), fleet.Key)
	return &m
}

// findColonyToken :
// Returns the design key of a token in the fleet whose design carries
// a colony module.
func findColonyToken(ctx PostBattleContext, empire *model.EmpireData, fleet *model.Fleet) (uint64, bool) {
	for key, token := range fleet.Tokens {
		design, ok := empire.Designs[token.DesignKey]
		if !ok {
			continue
		}
		if design.Stale {
			_ = RecomputeSummary(design, ctx.Catalog)
		}
		if design.Summary.HasColonyModule {
			return key, true
		}
	}
	return 0, false
}

// consumeArrivalTask :
// Advances past a one-shot arrival task (Colonise, Invade) once it has
// run, leaving the fleet idle at its current position unless more
// waypoints remain.
func consumeArrivalTask(fleet *model.Fleet) {
	if len(fleet.Waypoints) > 1 {
		fleet.Waypoints = fleet.Waypoints[1:]
	} else {
		fleet.EnsureIdleWaypoint()
	}
}
