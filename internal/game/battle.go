package game

import "novaturn/internal/model"

// RunBattles :
// Groups the fleets at every position holding at least two distinct
// hostile owners into an engagement (whether any token is armed is not
// checked), runs the
// configured engine against each, applies the resulting stack losses
// to the owning fleets, and deposits salvage.
func RunBattles(ctx BattleContext, world *model.WorldSnapshot) []model.Message {
	engine := BattleEngine(StandardEngine{})
	if world.Engine == model.EngineAlternative {
		engine = AlternativeEngine{}
	}

	var msgs []model.Message
	for _, engagement := range groupEngagements(ctx, world) {
		result := engine.Run(ctx, engagement)
		if !result.Occurred {
			continue
		}
		msgs = append(msgs, result.Messages...)
		applyDestruction(ctx, world, engagement.Position, result.Destroyed)
	}
	return msgs
}

// groupEngagements :
// Colocated fleets belonging to at least two empires that consider
// each other enemies form one engagement apiece.
func groupEngagements(ctx BattleContext, world *model.WorldSnapshot) []Engagement {
	byPosition := make(map[model.Position][]*model.Fleet)
	for _, empire := range world.AllEmpires {
		for _, fleet := range empire.OwnedFleets {
			if fleet.IsEmpty() || fleet.IsSalvage() {
				continue
			}
			byPosition[fleet.Position] = append(byPosition[fleet.Position], fleet)
		}
	}

	var engagements []Engagement
	for pos, fleets := range byPosition {
		if !hasHostilePair(ctx, fleets) {
			continue
		}
		engagements = append(engagements, Engagement{Position: pos, Fleets: fleets})
	}
	return engagements
}

// hasHostilePair :
// Returns whether at least two fleets at this position belong to
// empires that regard each other as enemies.
func hasHostilePair(ctx BattleContext, fleets []*model.Fleet) bool {
	for i, a := range fleets {
		for _, b := range fleets[i+1:] {
			if a.Owner == b.Owner {
				continue
			}
			if empire, ok := ctx.Empires[a.Owner]; ok && isHostile(empire, b.Owner) {
				return true
			}
		}
	}
	return false
}

// applyDestruction :
// Removes destroyed token quantities from their parent fleets and
// deposits salvage at the battle position.
func applyDestruction(ctx BattleContext, world *model.WorldSnapshot, position model.Position, events []DestructionEvent) {
	if len(events) == 0 {
		return
	}

	for _, e := range events {
		empire, ok := ctx.Empires[e.Owner]
		if !ok {
			continue
		}
		fleet, ok := empire.OwnedFleets[e.FleetKey]
		if !ok {
			continue
		}
		token, ok := fleet.Tokens[e.DesignKey]
		if !ok {
			continue
		}
		token.Quantity -= e.Quantity
		if token.Quantity <= 0 {
			delete(fleet.Tokens, e.DesignKey)
		} else {
			token.Armour = token.PerShipArmour * token.Quantity
			token.Shields = token.PerShipShields * token.Quantity
		}
	}

	var star *model.Star
	for _, s := range world.AllStars {
		if s.Position == position {
			star = s
			break
		}
	}

	firstEmpire := events[0].Owner
	var nextKey func() uint64
	if empire, ok := ctx.Empires[firstEmpire]; ok {
		nextKey = empire.NextFleetKey
	} else {
		return
	}

	if salvage := DepositSalvage(firstEmpire, position, star, events, ctx.Year, nextKey); salvage != nil {
		if empire, ok := ctx.Empires[firstEmpire]; ok {
			empire.OwnedFleets[salvage.Key] = salvage
		}
	}
}
