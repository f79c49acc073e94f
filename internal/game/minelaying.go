package game

import "novaturn/internal/model"

// LayMines :
// For every fleet currently executing a LayMines task, deposits that
// many mines at the fleet's snapped grid cell, merging into an
// existing field of the same (owner, cell, type) or creating one.
func LayMines(ctx EconomyContext, world *model.WorldSnapshot, fleet *model.Fleet) {
	if len(fleet.Waypoints) == 0 {
		return
	}
	task := fleet.Waypoints[0].Task
	if task.Kind != model.LayMinesTask || task.LayMinesYears <= 0 {
		return
	}

	rate, mineType := fleetMineLayRate(ctx, fleet)
	if rate <= 0 {
		return
	}

	cell := fleet.Position.SnapToGrid(model.MinefieldSnapToGridSize)
	key := model.MakeMinefieldKey(fleet.Owner, cell.X, cell.Y, mineType)

	field, ok := world.AllMinefields[key]
	if !ok {
		field = &model.Minefield{Key: key, Owner: fleet.Owner, Position: cell, MineType: mineType}
		world.AllMinefields[key] = field
	}
	field.Mines += rate

	fleet.Waypoints[0].Task.LayMinesYears--
	if fleet.Waypoints[0].Task.LayMinesYears <= 0 {
		fleet.Waypoints[0].Task = model.Task{Kind: model.NoTask}
	}
}

// fleetMineLayRate :
// Sums the mine-lay rate of every design in the fleet carrying a mine
// layer, reporting the heaviest mine type present.
func fleetMineLayRate(ctx EconomyContext, fleet *model.Fleet) (rate int, mineType model.MineType) {
	for _, token := range fleet.Tokens {
		design, ok := ctx.Empire.Designs[token.DesignKey]
		if !ok {
			continue
		}
		if design.Stale {
			_ = RecomputeSummary(design, ctx.Catalog)
		}
		if design.Summary.MineLayRate > 0 {
			rate += design.Summary.MineLayRate * token.Quantity
		}
	}
	return rate, mineType
}

// DecayMinefields :
// Applies the per-turn 1% decay to every minefield, removing any that
// fall to MinefieldMinMines or below.
func DecayMinefields(world *model.WorldSnapshot) {
	for key, field := range world.AllMinefields {
		if field.Decay() {
			delete(world.AllMinefields, key)
		}
	}
}
