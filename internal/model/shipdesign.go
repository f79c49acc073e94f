package model

// ModuleSlot :
// One allocation of a component onto a hull slot: which component (by
// catalog name, resolved through the component catalog collaborator,
// C9) and how many copies, capped at the slot's maximum by the
// catalog at validation time.
type ModuleSlot struct {
	Component string `json:"component" bson:"component"`
	Count     int    `json:"count" bson:"count"`
}

// WeaponMount :
// A single weapon entry in a design's derived summary: which beam or
// missile component, how many mounts of it, and the per-mount stats
// the battle engine needs. Populated by `RecomputeSummary` from the
// component catalog.
type WeaponMount struct {
	Component  string  `json:"component" bson:"component"`
	Count      int     `json:"count" bson:"count"`
	IsMissile  bool    `json:"is_missile" bson:"is_missile"`
	Damage     int     `json:"damage" bson:"damage"`
	Range      int     `json:"range" bson:"range"`
	Initiative int     `json:"initiative" bson:"initiative"`
	Accuracy   float64 `json:"accuracy" bson:"accuracy"`
}

// DesignSummary :
// The derived, recomputable-from-the-blueprint values of a ship
// design, recomputed whenever an allocation changes. `Stale` tracks
// whether that has happened since the last `RecomputeSummary` call.
type DesignSummary struct {
	Mass            int           `json:"mass" bson:"mass"`
	Cost            Resources     `json:"cost" bson:"cost"`
	Armour          int           `json:"armour" bson:"armour"`
	Shields         int           `json:"shields" bson:"shields"`
	FuelCapacity    int           `json:"fuel_capacity" bson:"fuel_capacity"`
	CargoCapacity   int           `json:"cargo_capacity" bson:"cargo_capacity"`
	Engine          string        `json:"engine" bson:"engine"`
	Weapons         []WeaponMount `json:"weapons" bson:"weapons"`
	BombKillPercent float64       `json:"bomb_kill_percent" bson:"bomb_kill_percent"`
	BombMinKill     int           `json:"bomb_min_kill" bson:"bomb_min_kill"`
	MineLayRate     int           `json:"mine_lay_rate" bson:"mine_lay_rate"`
	ScanRange       int           `json:"scan_range" bson:"scan_range"`
	PenScanRange    int           `json:"pen_scan_range" bson:"pen_scan_range"`
	BattleInit      int           `json:"battle_initiative" bson:"battle_initiative"`
	IsStarbase      bool          `json:"is_starbase" bson:"is_starbase"`
	HasDock         bool          `json:"has_dock" bson:"has_dock"`
	HasColonyModule bool          `json:"has_colony_module" bson:"has_colony_module"`
	BattleSpeedClsN float64       `json:"battle_speed" bson:"battle_speed"`
}

// IsArmed :
// Returns whether the design carries at least one weapon.
func (s DesignSummary) IsArmed() bool {
	return len(s.Weapons) > 0
}

// ShipDesign :
// An empire's blueprint for a class of ship. `Key` is encoded the same
// way as a fleet key (owner in the high bits, a per-empire counter in
// the low bits).
type ShipDesign struct {
	Key      uint64       `json:"key" bson:"key"`
	Name     string       `json:"name" bson:"name"`
	Hull     string       `json:"hull" bson:"hull"`
	Slots    []ModuleSlot `json:"slots" bson:"slots"`
	Obsolete bool         `json:"obsolete" bson:"obsolete"`

	Summary DesignSummary `json:"summary" bson:"summary"`
	Stale   bool          `json:"stale" bson:"stale"`
}

// MarkDirty :
// Flags the design's summary as stale after a blueprint or allocation
// change. The next read that needs the summary must call
// `RecomputeSummary` (component-catalog dependent, so it lives in the
// game package) before trusting it.
func (d *ShipDesign) MarkDirty() {
	d.Stale = true
}

// ShipToken :
// A fleet's holding of a particular design: how many hulls, and their
// current (post-damage) armour and shields, alongside cached copies of
// the design's per-ship stats so combat and movement math doesn't need
// to resolve the design on every access.
type ShipToken struct {
	DesignKey uint64 `json:"design_key" bson:"design_key"`
	Quantity  int    `json:"quantity" bson:"quantity"`

	// Armour/Shields are the *current* totals across the whole token
	// (per-ship value times quantity), reduced by battle damage and
	// restored by repair.
	Armour  int `json:"armour" bson:"armour"`
	Shields int `json:"shields" bson:"shields"`

	// Cached per-ship design values, refreshed whenever the token's
	// quantity changes or the design summary is recomputed.
	PerShipArmour  int `json:"per_ship_armour" bson:"per_ship_armour"`
	PerShipShields int `json:"per_ship_shields" bson:"per_ship_shields"`
	PerShipMass    int `json:"per_ship_mass" bson:"per_ship_mass"`
	PerShipCost    Resources `json:"per_ship_cost" bson:"per_ship_cost"`
}

// MaxArmour :
// Returns the undamaged total armour for this token, used as the
// repair ceiling.
func (t ShipToken) MaxArmour() int {
	return t.PerShipArmour * t.Quantity
}

// MaxShields :
// Returns the undamaged total shields for this token.
func (t ShipToken) MaxShields() int {
	return t.PerShipShields * t.Quantity
}

// Mass :
// Returns the total mass contributed by this token.
func (t ShipToken) Mass() int {
	return t.PerShipMass * t.Quantity
}
