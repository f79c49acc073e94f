package game

import (
	"fmt"

	"novaturn/internal/model"
)

// processManufacturing :
// Iterates a star's production queue in order, spending resources
// already on hand (which by this point in the pipeline excludes what
// research claimed). An order that cannot be fully funded this turn
// keeps its partial spend and, unless it is marked AutoBuild, blocks
// every order behind it in the queue.
func processManufacturing(ctx EconomyContext, star *model.Star) []model.Message {
	var msgs []model.Message
	queue := star.ProductionQueue[:0:0]

	blocked := false
	for i := range star.ProductionQueue {
		order := star.ProductionQueue[i]

		if blocked && !order.AutoBuild {
			queue = append(queue, order)
			continue
		}

		done, completions := advanceOrder(ctx, star, &order)
		msgs = append(msgs, completions...)

		if !done {
			queue = append(queue, order)
			if !order.AutoBuild {
				blocked = true
			}
		}
	}

	star.ProductionQueue = queue
	return msgs
}

// advanceOrder :
// Spends as much of the star's on-hand resources as the order's
// remaining cost allows, completing as many units as can be fully
// funded this turn. Returns whether the order is fully satisfied (and
// should be dropped from the queue).
func advanceOrder(ctx EconomyContext, star *model.Star, order *model.ProductionOrder) (done bool, msgs []model.Message) {
	unitCost, ok := orderUnitCost(ctx, order)
	if !ok {
		// Unknown design or catalog entry: drop the order rather than
		// stall the queue behind something that can never be built.
		return true, []model.Message{model.NewMessage(ctx.Empire.ID, model.MessageProduction,
			fmt.Sprintf("Production order at %s cancelled: unresolvable design.", star.Name))}
	}

	for order.Quantity > 0 {
		need, err := unitCost.Sub(order.PartialSpent)
		if err != nil {
			// PartialSpent already covers (or exceeds) the unit cost.
			need = model.Resources{}
		}

		available := star.ResourcesOnHand
		spend := need
		if !available.GreaterOrEqual(need) {
			spend = affordablePortion(available, need)
		}

		order.PartialSpent = order.PartialSpent.Add(spend)
		star.ResourcesOnHand, _ = star.ResourcesOnHand.Sub(spend)

		if order.PartialSpent.GreaterOrEqual(unitCost) {
			order.PartialSpent, _ = order.PartialSpent.Sub(unitCost)
			order.Quantity--
			msgs = append(msgs, completeUnit(ctx, star, order)...)
			continue
		}

		// Couldn't fully fund this unit this turn.
		return false, msgs
	}

	return true, msgs
}

// affordablePortion :
// Scales `need` down to the largest amount `available` can pay for in
// full, proportionally across every resource field. Flooring (rather
// than rounding up) guarantees the result never exceeds what's on
// hand.
func affordablePortion(available, need model.Resources) model.Resources {
	ratio := available.Ratio(need)
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	floor := func(v int) int { return int(float64(v) * ratio) }
	return model.Resources{
		Ironium:   floor(need.Ironium),
		Boranium:  floor(need.Boranium),
		Germanium: floor(need.Germanium),
		Energy:    floor(need.Energy),
	}
}

// orderUnitCost :
// Resolves the full cost of one unit of `order`'s kind.
func orderUnitCost(ctx EconomyContext, order *model.ProductionOrder) (model.Resources, bool) {
	race := ctx.Empire.Race
	switch order.Kind {
	case model.ProductionFactory:
		return race.FactoryCost, true
	case model.ProductionMine:
		return race.MineCost, true
	case model.ProductionDefense:
		return race.DefenseCost, true
	case model.ProductionTerraform:
		return race.TerraformCost, true
	case model.ProductionAlchemy:
		return race.AlchemyCost, true
	case model.ProductionPacket:
		return model.Resources{Ironium: 100, Boranium: 100, Germanium: 100}, true
	case model.ProductionShip, model.ProductionStarbase:
		design, ok := ctx.Empire.Designs[order.DesignKey]
		if !ok {
			return model.Resources{}, false
		}
		if design.Stale {
			if err := RecomputeSummary(design, ctx.Catalog); err != nil {
				return model.Resources{}, false
			}
		}
		return design.Summary.Cost, true
	default:
		return model.Resources{}, false
	}
}

// completeUnit :
// Applies the effect of finishing one unit of a production order.
func completeUnit(ctx EconomyContext, star *model.Star, order *model.ProductionOrder) []model.Message {
	switch order.Kind {
	case model.ProductionFactory:
		star.Factories++
	case model.ProductionMine:
		star.Mines++
	case model.ProductionDefense:
		star.SetDefenses(star.Defenses + 1)
	case model.ProductionTerraform:
		terraformStep(star)
	case model.ProductionAlchemy:
		star.ResourcesOnHand.Ironium++
		star.ResourcesOnHand.Boranium++
		star.ResourcesOnHand.Germanium++
	case model.ProductionPacket:
		key := ctx.Empire.NextPacketKey()
		_ = key // packet launch target/warp is set by the player-facing order, out of scope here
	case model.ProductionShip, model.ProductionStarbase:
		return completeShip(ctx, star, order)
	}
	return nil
}

// terraformStep :
// Raises the star's gravity by one point, up to 100; temperature and
// radiation are not changed -- a minimal terraform effect sufficient to
// exercise the queue; full terraform target selection is a UI concern
// outside the turn engine core.
func terraformStep(star *model.Star) {
	if star.Environment.Gravity < 100 {
		star.Environment.Gravity++
	}
}

// completeShip :
// Adds a completed ship/starbase to an existing orbiting fleet of
// matching name, or creates a new one.
func completeShip(ctx EconomyContext, star *model.Star, order *model.ProductionOrder) []model.Message {
	design, ok := ctx.Empire.Designs[order.DesignKey]
	if !ok {
		return nil
	}

	var fleet *model.Fleet
	for _, f := range ctx.Empire.OwnedFleets {
		if f.Position == star.Position && f.InOrbit == star.Name && f.Name == design.Name {
			fleet = f
			break
		}
	}
	if fleet == nil {
		key := ctx.Empire.NextFleetKey()
		fleet = model.NewFleet(key, ctx.Empire.ID, design.Name, star.Position)
		fleet.InOrbit = star.Name
		ctx.Empire.OwnedFleets[key] = fleet
	}

	fleet.AddToken(design.Key, 1, design.Summary.Armour, design.Summary.Shields, design.Summary.Mass, design.Summary.Cost)

	if order.Kind == model.ProductionStarbase {
		star.HasStarbase = true
		star.StarbaseKey = fleet.Key
	}

	return []model.Message{model.NewFleetMessage(ctx.Empire.ID, model.MessageProduction,
		fmt.Sprintf("New %s completed at %s.", design.Name, star.Name), fleet.Key)}
}
