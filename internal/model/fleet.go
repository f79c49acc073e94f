package model

// SalvageFleetName :
// The fixed name assigned to a post-battle salvage fleet.
const SalvageFleetName = "S A L V A G E"

// SalvageDecayTurns :
// A salvage fleet is deleted once it has existed longer than this many
// turns.
const SalvageDecayTurns = 3

// Fleet :
// An empire-owned collection of ship tokens following a shared route.
// Keyed the same way as a ShipDesign: owner in the high 32 bits, a
// per-empire counter in the low 32 bits.
type Fleet struct {
	Key uint64 `json:"key" bson:"_id"`

	Owner int    `json:"owner" bson:"owner"`
	Name  string `json:"name" bson:"name"`

	Position Position `json:"position" bson:"position"`
	InOrbit  string   `json:"in_orbit,omitempty" bson:"in_orbit,omitempty"`

	Tokens    map[uint64]*ShipToken `json:"tokens" bson:"tokens"`
	Waypoints []Waypoint            `json:"waypoints" bson:"waypoints"`

	Cargo          Cargo  `json:"cargo" bson:"cargo"`
	FuelAvailable  int    `json:"fuel_available" bson:"fuel_available"`
	BattlePlanName string `json:"battle_plan_name" bson:"battle_plan_name"`

	// TurnCreated records the turn year a salvage fleet was created so
	// cleanup-fleets can delete it after SalvageDecayTurns.
	TurnCreated int `json:"turn_created,omitempty" bson:"turn_created,omitempty"`
}

// NewFleet :
// Builds a fleet owned by `owner` at `pos`, assigning it `key` (already
// encoded via MakeFleetKey) and seeding the idle waypoint invariant.
func NewFleet(key uint64, owner int, name string, pos Position) *Fleet {
	return &Fleet{
		Key:       key,
		Owner:     owner,
		Name:      name,
		Position:  pos,
		Tokens:    make(map[uint64]*ShipToken),
		Waypoints: []Waypoint{NewIdleWaypoint(pos)},
	}
}

// ShipCount :
// Returns the total number of ships across every token in the fleet.
func (f *Fleet) ShipCount() int {
	n := 0
	for _, t := range f.Tokens {
		n += t.Quantity
	}
	return n
}

// IsEmpty :
// Returns whether the fleet holds no ships at all. Empty fleets are
// destroyed before the next pipeline step.
func (f *Fleet) IsEmpty() bool {
	return f.ShipCount() <= 0
}

// Mass :
// Returns the fleet's total hull mass, excluding cargo.
func (f *Fleet) Mass() int {
	m := 0
	for _, t := range f.Tokens {
		m += t.Mass()
	}
	return m
}

// TotalMass :
// Returns the fleet's hull mass plus carried cargo, used by the fuel
// consumption formula.
func (f *Fleet) TotalMass() int {
	return f.Mass() + f.Cargo.Mass()
}

// IsSalvage :
// Returns whether this fleet is a post-battle salvage drop.
func (f *Fleet) IsSalvage() bool {
	return f.Name == SalvageFleetName
}

// AddToken :
// Adds `quantity` ships of `design` to the fleet, merging into an
// existing token for the same design if present (new ships join with
// full armour/shields). `perShip*` are the design's current per-ship
// stats, supplied by the caller since resolving the design is a
// game-package concern.
func (f *Fleet) AddToken(designKey uint64, quantity, perShipArmour, perShipShields, perShipMass int, perShipCost Resources) {
	if existing, ok := f.Tokens[designKey]; ok {
		existing.Quantity += quantity
		existing.Armour += perShipArmour * quantity
		existing.Shields += perShipShields * quantity
		return
	}
	f.Tokens[designKey] = &ShipToken{
		DesignKey:      designKey,
		Quantity:       quantity,
		Armour:         perShipArmour * quantity,
		Shields:        perShipShields * quantity,
		PerShipArmour:  perShipArmour,
		PerShipShields: perShipShields,
		PerShipMass:    perShipMass,
		PerShipCost:    perShipCost,
	}
}

// RemoveDesign :
// Removes every token referencing `designKey` from the fleet (used
// when a design is deleted, as part of the design-deletion cascade).
func (f *Fleet) RemoveDesign(designKey uint64) {
	delete(f.Tokens, designKey)
}

// EnsureIdleWaypoint :
// Guarantees the fleet's waypoint list starts with a NoTask waypoint
// at its current position, as required once every other waypoint has
// been consumed.
func (f *Fleet) EnsureIdleWaypoint() {
	if len(f.Waypoints) == 0 {
		f.Waypoints = []Waypoint{NewIdleWaypoint(f.Position)}
		return
	}
	if f.Waypoints[0].Position != f.Position {
		f.Waypoints[0] = NewIdleWaypoint(f.Position)
	}
}
