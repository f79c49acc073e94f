package game

import (
	"math/rand"

	"novaturn/internal/model"
)

// TurnInput :
// Everything the orchestrator needs beyond the world snapshot itself:
// each empire's commands for this turn, already drained from the
// intake queue in submission order so the last command submitted for
// a given empire is the one applied last and therefore wins any
// conflict, and the turn's RNG seed for the steps that need
// randomness (movement engine failures, battle jitter/accuracy).
type TurnInput struct {
	Commands map[int][]Command
	Seed     int64
}

// TurnResult :
// The output of running one turn: the messages generated, keyed by
// the empire they're addressed to, and the error that aborted the
// turn, if any.
type TurnResult struct {
	Messages map[int][]model.Message
	Err      error
}

// RunTurn :
// Executes the full 17-step pipeline against `world`,
// mutating it in place. Every step sees the output of the prior one.
// No step reports an error: the pipeline always runs to the end and
// the returned TurnResult.Err is nil, so an engine invariant violation
// does not abort the turn.
func RunTurn(world *model.WorldSnapshot, catalog ComponentCatalog, input TurnInput) TurnResult {
	rng := rand.New(rand.NewSource(input.Seed))
	messages := make(map[int][]model.Message)
	emit := func(msgs []model.Message) {
		for _, m := range msgs {
			messages[m.Audience] = append(messages[m.Audience], m)
		}
	}

	empires := world.AllEmpires

	// Step 1: apply-commands.
	for _, id := range sortedEmpireIDs(empires) {
		for _, cmd := range input.Commands[id] {
			emit(ApplyCommand(empires[id], cmd))
		}
	}

	// Step 2: first-step -- lay mines, then decay all minefields.
	for _, empire := range empires {
		ctx := EconomyContext{Empire: empire, Catalog: catalog}
		for _, fleet := range empire.OwnedFleets {
			LayMines(ctx, world, fleet)
		}
	}
	DecayMinefields(world)

	// Step 3: split-merge.
	SplitMerge(world)

	// Step 4: scrap.
	RunScrap(world)

	// Step 5: move-fleets.
	passages := make(map[int]map[uint64]bool)
	for _, empire := range empires {
		mctx := MovementContext{Empire: empire, Catalog: catalog, Rand: rng}
		for _, fleet := range empire.OwnedFleets {
			if fleet.IsSalvage() || isStarbaseFleet(world, fleet) {
				continue
			}
			emit(MoveFleet(mctx, fleet))

			// Step 6: minefield-check, folded in immediately after each
			// fleet's own movement so a passage is recorded against the
			// fleet that actually triggered it.
			hits := CheckMinefields(rng, empire.ID, fleet, currentWarp(fleet), world.AllMinefields)
			emit(hits)
			recordMinefieldPassage(passages, empire.ID, fleet, world.AllMinefields)

			rrctx := RefuelRepairContext{Empire: empire, World: world, Catalog: catalog}
			stopped := len(fleet.Waypoints) == 0 || fleet.Waypoints[0].Position == fleet.Position
			RefuelAndRepair(rrctx, fleet, stopped)
		}
	}

	// Step 7: cleanup-fleets.
	CleanupFleets(world)

	// Step 8: battles.
	bctx := BattleContext{Empires: empires, Catalog: catalog, Rand: rng, Year: world.TurnYear}
	emit(RunBattles(bctx, world))

	// Step 9: cleanup-fleets.
	CleanupFleets(world)

	// Step 10: victory-check -- reserved, currently a no-op hook.

	// Step 11: increment turn year; mark every empire not-submitted.
	world.TurnYear++
	for _, empire := range empires {
		empire.TurnYear = world.TurnYear
		empire.Submitted = false
	}

	// Step 12: star-update.
	for _, empire := range empires {
		ectx := EconomyContext{Empire: empire, Catalog: catalog}
		for _, star := range empire.OwnedStars {
			emit(ProcessStarEconomy(ectx, star))
		}
	}

	// Step 13: bombing.
	bmctx := PostBattleContext{Empires: empires, Catalog: catalog}
	emit(RunBombing(bmctx, world))

	// Step 14: post-bombing -- colonise/invade.
	emit(RunColonisation(bmctx, world))
	emit(RunInvasion(bmctx, world))

	// Step 15: scan.
	RunScanning(world, passages)

	// Step 16: mineral-packet move.
	emit(MovePackets(world))

	// Step 17: minefield visibility refresh.
	RunScanning(world, passages)

	return TurnResult{Messages: messages}
}

// isStarbaseFleet :
// Starbase fleets never move under their own power; they're parked at the star that owns them.
func isStarbaseFleet(world *model.WorldSnapshot, fleet *model.Fleet) bool {
	for _, star := range world.AllStars {
		if star.HasStarbase && star.StarbaseKey == fleet.Key {
			return true
		}
	}
	return false
}

// recordMinefieldPassage :
// Notes every minefield a fleet's new position falls within, so the
// scan step can grant the owning empire visibility into it even
// without a scanner covering that location.
func recordMinefieldPassage(passages map[int]map[uint64]bool, empireID int, fleet *model.Fleet, fields map[uint64]*model.Minefield) {
	seen := passages[empireID]
	if seen == nil {
		seen = make(map[uint64]bool)
		passages[empireID] = seen
	}
	for key, field := range fields {
		if field.Covers(fleet.Position) {
			seen[key] = true
		}
	}
}

// sortedEmpireIDs :
// Ascending empire ids, giving command application a deterministic,
// submission-interleaving-independent order across empires.
func sortedEmpireIDs(empires map[int]*model.EmpireData) []int {
	ids := make([]int, 0, len(empires))
	for id := range empires {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}
