package game

import "novaturn/internal/model"

// EngineStats :
// The fuel behaviour of one engine component, as the movement step
// needs it. `FuelUse` is indexed by warp factor 1..10 at
// index warp-1; index -1 (warp 0) is never consulted since a stopped
// fleet burns no fuel.
type EngineStats struct {
	FuelUse  [10]int
	RamScoop bool
}

// FuelUseAt :
// Returns the table's per-200-mass fuel consumption rate at `warp`
// (1..10), or 0 outside that range.
func (e EngineStats) FuelUseAt(warp int) int {
	if warp < 1 || warp > 10 {
		return 0
	}
	return e.FuelUse[warp-1]
}

// FreeWarpSpeed :
// The highest warp factor at which this engine consumes no fuel,
// found by scanning the table from the top down; 0 if every warp
// burns fuel.
func (e EngineStats) FreeWarpSpeed() int {
	for warp := 10; warp >= 1; warp-- {
		if e.FuelUseAt(warp) == 0 {
			return warp
		}
	}
	return 0
}

// HullStats :
// The catalog-resolved properties of a hull, independent of its
// module allocations.
type HullStats struct {
	BaseMass      int
	BaseArmour    int
	BaseCost      model.Resources
	FuelCapacity  int
	CargoCapacity int
	SlotCount     int
	IsStarbase    bool
}

// ComponentStats :
// The catalog-resolved properties of a non-hull, non-engine component
// (weapon, armour plate, shield generator, scanner, bomb, mine layer,
// colonisation module, cargo pod, or dock). A design's summary is
// built by folding every allocated component's stats into the hull's
// base stats (see RecomputeSummary).
type ComponentStats struct {
	Mass int
	Cost model.Resources

	Armour  int
	Shields int

	IsWeapon     bool
	IsMissile    bool
	WeaponDamage int
	WeaponRange  int
	WeaponInit   int
	Accuracy     float64

	BombKillPercent float64
	BombMinKill     int

	MineLayRate int

	ScanRange    int
	PenScanRange int

	IsColonyModule bool
	IsDock         bool
	FuelCapacity   int
	CargoCapacity  int
}

// ComponentCatalog :
// Read-only lookup of hull layouts and component stats, external to
// the turn engine core. Exposed here as
// the narrow slice of lookups the design summary and movement/battle
// code actually need.
type ComponentCatalog interface {
	Hull(name string) (HullStats, bool)
	Engine(name string) (EngineStats, bool)
	Component(name string) (ComponentStats, bool)
}

// GalaxyGenerator :
// External collaborator that produces the initial
// WorldSnapshot for a new game. Only the interface is in scope for the
// core; a concrete implementation lives outside this repository.
type GalaxyGenerator interface {
	Generate(playerCount, universeSize int, seed int64) (gameID string, err error)
}

// AIPlayer :
// External collaborator: the reference AI. Only the
// interface is in scope for the core.
type AIPlayer interface {
	SubmitCommands(empireID int) []Command
}
