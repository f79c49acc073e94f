package game

import "novaturn/internal/model"

// RunScanning :
// Refreshes every empire's star, fleet and minefield intel at the end
// of the turn. Own stars always get a full "owned" report and foreign
// star reports within pen-scan range are deep-scanned, both updated in
// place; foreign fleet reports are dropped and rebuilt from what this
// turn's scanners actually see. Visible minefields are rebuilt the
// same way, plus whatever fleets were recorded passing through one
// during movement. Empire reports are not touched, so designs seen in
// battle are not recorded in them.
func RunScanning(world *model.WorldSnapshot, passages map[int]map[uint64]bool) {
	for _, empire := range world.AllEmpires {
		scanStars(world, empire)
		scanFleets(world, empire)
		scanMinefields(world, empire, passages[empire.ID])
	}
}

// scanStars :
// Step 1: own stars get a full report. Step 3 (star half): non-own
// stars within pen-scan range of a scanner source get a deep report.
func scanStars(world *model.WorldSnapshot, empire *model.EmpireData) {
	for _, star := range world.AllStars {
		if star.Owner == empire.ID {
			empire.StarReports[star.Name] = ownedStarReport(world, star)
		}
	}

	sources := scannerSources(world, empire)
	for _, star := range world.AllStars {
		if star.Owner == empire.ID {
			continue
		}
		for _, src := range sources {
			if star.Position.DistanceTo(src.position) <= src.penScanRange {
				empire.StarReports[star.Name] = deepStarReport(world, star)
				break
			}
		}
	}
}

type scannerSource struct {
	position     model.Position
	scanRange    float64
	penScanRange float64
}

// scannerSources :
// Every own fleet or star carrying a scanner.
func scannerSources(world *model.WorldSnapshot, empire *model.EmpireData) []scannerSource {
	var sources []scannerSource

	for _, fleet := range empire.OwnedFleets {
		best := bestScanRangeInFleet(empire, fleet)
		if best.scanRange > 0 || best.penScanRange > 0 {
			sources = append(sources, scannerSource{position: fleet.Position, scanRange: best.scanRange, penScanRange: best.penScanRange})
		}
	}

	for _, star := range world.AllStars {
		if star.Owner != empire.ID || !star.HasStarbase {
			continue
		}
		base, ok := empire.OwnedFleets[star.StarbaseKey]
		if !ok {
			continue
		}
		best := bestScanRangeInFleet(empire, base)
		if best.scanRange > 0 || best.penScanRange > 0 {
			sources = append(sources, scannerSource{position: star.Position, scanRange: best.scanRange, penScanRange: best.penScanRange})
		}
	}

	return sources
}

func bestScanRangeInFleet(empire *model.EmpireData, fleet *model.Fleet) scannerSource {
	var best scannerSource
	for _, token := range fleet.Tokens {
		design, ok := empire.Designs[token.DesignKey]
		if !ok {
			continue
		}
		if float64(design.Summary.ScanRange) > best.scanRange {
			best.scanRange = float64(design.Summary.ScanRange)
		}
		if float64(design.Summary.PenScanRange) > best.penScanRange {
			best.penScanRange = float64(design.Summary.PenScanRange)
		}
	}
	return best
}

// ownedStarReport :
// A full report for a star the empire owns.
func ownedStarReport(world *model.WorldSnapshot, star *model.Star) model.StarReport {
	return model.StarReport{
		Name:          star.Name,
		Position:      star.Position,
		Year:          world.TurnYear,
		ScanLevel:     model.ScanOwned,
		Owner:         star.Owner,
		Colonists:     star.Colonists,
		Environment:   star.Environment,
		Concentration: star.Concentration,
		Factories:     star.Factories,
		Mines:         star.Mines,
		Defenses:      star.Defenses,
		Stockpile:     star.ResourcesOnHand,
	}
}

// deepStarReport :
// A deep-scan report: owner, environment and concentrations, but not
// infrastructure or stockpiles.
func deepStarReport(world *model.WorldSnapshot, star *model.Star) model.StarReport {
	return model.StarReport{
		Name:          star.Name,
		Position:      star.Position,
		Year:          world.TurnYear,
		ScanLevel:     model.ScanDeep,
		Owner:         star.Owner,
		Environment:   star.Environment,
		Concentration: star.Concentration,
	}
}

// scanFleets :
// Step 2: drop every foreign fleet report. Step 3 (fleet half):
// rebuild reports for non-own fleets within scan range of a scanner
// source.
func scanFleets(world *model.WorldSnapshot, empire *model.EmpireData) {
	empire.FleetReports = make(map[uint64]model.FleetReport)

	sources := scannerSources(world, empire)
	for _, other := range world.AllEmpires {
		if other.ID == empire.ID {
			continue
		}
		for _, fleet := range other.OwnedFleets {
			for _, src := range sources {
				if fleet.Position.DistanceTo(src.position) <= src.scanRange {
					empire.FleetReports[fleet.Key] = model.FleetReport{
						Key:       fleet.Key,
						Name:      fleet.Name,
						Owner:     fleet.Owner,
						Position:  fleet.Position,
						Year:      world.TurnYear,
						ShipCount: fleet.ShipCount(),
						Warp:      currentWarp(fleet),
					}
					break
				}
			}
		}
	}
}

func currentWarp(fleet *model.Fleet) int {
	if len(fleet.Waypoints) == 0 {
		return 0
	}
	return fleet.Waypoints[0].WarpFactor
}

// scanMinefields :
// Rebuilds an empire's visible minefield set: its own fields, every
// field within a scanner source's range, and every field a fleet was
// recorded passing through this turn.
func scanMinefields(world *model.WorldSnapshot, empire *model.EmpireData, passed map[uint64]bool) {
	empire.VisibleMinefields = make(map[uint64]model.Minefield)

	sources := scannerSources(world, empire)
	for _, field := range world.AllMinefields {
		if field.Owner == empire.ID {
			empire.VisibleMinefields[field.Key] = *field
			continue
		}
		if passed[field.Key] {
			empire.VisibleMinefields[field.Key] = *field
			continue
		}
		for _, src := range sources {
			if field.Position.DistanceTo(src.position) <= src.scanRange+field.Radius() {
				empire.VisibleMinefields[field.Key] = *field
				break
			}
		}
	}
}
