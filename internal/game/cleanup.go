package game

import "novaturn/internal/model"

// salvageDecayRate :
// Fraction of a salvage fleet's cargo lost per turn.
const salvageDecayRate = 0.30

// CleanupFleets :
// Removes empty fleets and orphaned starbases, decays salvage cargo,
// and deletes salvage older than SalvageDecayTurns.
func CleanupFleets(world *model.WorldSnapshot) {
	for _, empire := range world.AllEmpires {
		for key, fleet := range empire.OwnedFleets {
			if fleet.IsSalvage() {
				decaySalvage(fleet)
				if fleet.IsEmpty() || world.TurnYear-fleet.TurnCreated > model.SalvageDecayTurns {
					delete(empire.OwnedFleets, key)
				}
				continue
			}

			if fleet.IsEmpty() {
				delete(empire.OwnedFleets, key)
				continue
			}
		}
	}

	clearOrphanStarbases(world)
}

// decaySalvage :
// Erodes a salvage fleet's cargo minerals by salvageDecayRate.
func decaySalvage(fleet *model.Fleet) {
	fleet.Cargo.Ironium -= int(float64(fleet.Cargo.Ironium) * salvageDecayRate)
	fleet.Cargo.Boranium -= int(float64(fleet.Cargo.Boranium) * salvageDecayRate)
	fleet.Cargo.Germanium -= int(float64(fleet.Cargo.Germanium) * salvageDecayRate)
	if fleet.Cargo.IsZero() {
		// An emptied salvage fleet has no ships either; IsEmpty already
		// reports true via ShipCount, so no further action is needed
		// here beyond letting the caller's IsEmpty check catch it.
		return
	}
}

// clearOrphanStarbases :
// A star whose recorded starbase fleet no longer exists (destroyed in
// battle, or its parent fleet emptied above) reverts to having no
// starbase.
func clearOrphanStarbases(world *model.WorldSnapshot) {
	for _, star := range world.AllStars {
		if !star.HasStarbase {
			continue
		}
		empire, ok := world.AllEmpires[star.Owner]
		if !ok {
			star.HasStarbase = false
			star.StarbaseKey = 0
			continue
		}
		if _, ok := empire.OwnedFleets[star.StarbaseKey]; !ok {
			star.HasStarbase = false
			star.StarbaseKey = 0
		}
	}
}

// SplitMerge :
// Drops already-processed split/merge and spent cargo-transfer
// waypoints from the head of every fleet's route, then guarantees the
// idle-waypoint invariant.
func SplitMerge(world *model.WorldSnapshot) {
	for _, empire := range world.AllEmpires {
		for _, fleet := range empire.OwnedFleets {
			for len(fleet.Waypoints) > 0 {
				task := fleet.Waypoints[0].Task.Kind
				samePosition := fleet.Waypoints[0].Position == fleet.Position
				if !samePosition {
					break
				}
				if task != model.SplitMergeTask && task != model.TransferCargoTask {
					break
				}
				if len(fleet.Waypoints) == 1 {
					fleet.Waypoints[0].Task = model.Task{Kind: model.NoTask}
					break
				}
				fleet.Waypoints = fleet.Waypoints[1:]
			}
			fleet.EnsureIdleWaypoint()
		}
	}
}

// RunScrap :
// Processes every fleet sitting at a Scrap waypoint: half the fleet's
// total mineral cost is returned to the star it's orbiting (or lost,
// if it's scrapping in deep space), and the fleet is emptied.
func RunScrap(world *model.WorldSnapshot) {
	for _, empire := range world.AllEmpires {
		for _, fleet := range empire.OwnedFleets {
			if len(fleet.Waypoints) == 0 || fleet.Waypoints[0].Task.Kind != model.ScrapTask {
				continue
			}

			if fleet.InOrbit != "" {
				if star, ok := world.AllStars[fleet.InOrbit]; ok {
					for _, token := range fleet.Tokens {
						star.ResourcesOnHand = star.ResourcesOnHand.Add(token.PerShipCost.ScaleInt(token.Quantity).ScaleCeil(0.5))
					}
				}
			}

			fleet.Tokens = make(map[uint64]*model.ShipToken)
		}
	}
}
