package model

// ScanLevel :
// How much detail an empire's intel on a star reflects.
type ScanLevel string

const (
	ScanNone  ScanLevel = "none"
	ScanIn    ScanLevel = "in_scan"
	ScanDeep  ScanLevel = "deep_scan"
	ScanOwned ScanLevel = "owned"
)

// StarReport :
// An empire's intel on one star, tagged with the turn year it was
// collected and how deep the scan was.
type StarReport struct {
	Name      string    `json:"name" bson:"name"`
	Position  Position  `json:"position" bson:"position"`
	Year      int       `json:"year" bson:"year"`
	ScanLevel ScanLevel `json:"scan_level" bson:"scan_level"`

	Owner     int `json:"owner,omitempty" bson:"owner,omitempty"`
	Colonists int `json:"colonists,omitempty" bson:"colonists,omitempty"`

	Environment   Environment   `json:"environment,omitempty" bson:"environment,omitempty"`
	Concentration Concentration `json:"concentration,omitempty" bson:"concentration,omitempty"`

	Factories int       `json:"factories,omitempty" bson:"factories,omitempty"`
	Mines     int       `json:"mines,omitempty" bson:"mines,omitempty"`
	Defenses  int       `json:"defenses,omitempty" bson:"defenses,omitempty"`
	Stockpile Resources `json:"stockpile,omitempty" bson:"stockpile,omitempty"`
}

// FleetReport :
// An empire's intel on a non-own fleet.
type FleetReport struct {
	Key       uint64   `json:"key" bson:"key"`
	Name      string   `json:"name" bson:"name"`
	Owner     int      `json:"owner" bson:"owner"`
	Position  Position `json:"position" bson:"position"`
	Year      int      `json:"year" bson:"year"`
	ShipCount int      `json:"ship_count" bson:"ship_count"`
	Bearing   float64  `json:"bearing" bson:"bearing"`
	Warp      int      `json:"warp" bson:"warp"`
}

// Relation :
// An empire's diplomatic stance towards another, backing the battle
// plan "Enemies" category. This engine initializes every other empire
// as Enemy and only ever changes it through an explicit (out of core
// scope) diplomacy command, so battle plans always have a
// well-defined answer.
type Relation int

const (
	RelationEnemy Relation = iota
	RelationNeutral
	RelationAlly
)

// EmpireReport :
// An empire's intel summary about another empire: its diplomatic
// relation and any of its ship designs seen in battle.
type EmpireReport struct {
	EmpireID      int      `json:"empire_id" bson:"empire_id"`
	Relation      Relation `json:"relation" bson:"relation"`
	KnownDesigns  []uint64 `json:"known_designs" bson:"known_designs"`
}

// ResearchSettings :
// An empire's standing research configuration.
type ResearchSettings struct {
	BudgetPercent int       `json:"budget_percent" bson:"budget_percent"`
	Priority      TechLevel `json:"priority" bson:"priority"`
	OnlyLeftover  bool      `json:"only_leftover" bson:"only_leftover"`
}

// ResearchState :
// An empire's accumulated research progress.
type ResearchState struct {
	Levels      TechLevel          `json:"levels" bson:"levels"`
	Accumulated map[Field]int      `json:"accumulated" bson:"accumulated"`
}

// BattlePlan :
// A named target-priority list a fleet can be assigned to.
// Up to five categories, most important first.
type BattlePlan struct {
	Name       string             `json:"name" bson:"name"`
	Priorities []TargetCategory   `json:"priorities" bson:"priorities"`
}

// TargetCategory :
// One of the seven priority buckets a battle plan can name.
type TargetCategory int

const (
	TargetStarbase TargetCategory = iota
	TargetBomber
	TargetCapitalShip
	TargetEscort
	TargetArmedShip
	TargetAnyShip
	TargetSupportShip
)

// EmpireData :
// One player's persistent state within a single game instance.
type EmpireData struct {
	ID       int    `json:"id" bson:"_id"`
	Race     Race   `json:"race" bson:"race"`
	TurnYear int    `json:"turn_year" bson:"turn_year"`
	Submitted bool  `json:"submitted" bson:"submitted"`

	Research ResearchSettings `json:"research_settings" bson:"research_settings"`
	Progress ResearchState    `json:"research_state" bson:"research_state"`

	OwnedStars map[string]*Star     `json:"owned_stars" bson:"owned_stars"`
	OwnedFleets map[uint64]*Fleet   `json:"owned_fleets" bson:"owned_fleets"`
	Designs     map[uint64]*ShipDesign `json:"designs" bson:"designs"`

	StarReports   map[string]StarReport    `json:"star_reports" bson:"star_reports"`
	FleetReports  map[uint64]FleetReport   `json:"fleet_reports" bson:"fleet_reports"`
	EmpireReports map[int]*EmpireReport    `json:"empire_reports" bson:"empire_reports"`

	BattlePlans map[string]BattlePlan `json:"battle_plans" bson:"battle_plans"`

	VisibleMinefields map[uint64]Minefield `json:"visible_minefields" bson:"visible_minefields"`

	fleetCounter  uint32
	designCounter uint32
	packetCounter uint32
}

// NewEmpireData :
// Builds an empty EmpireData for `id`, with the default "Default"
// battle plan (AnyShip only) and every other slot initialized.
func NewEmpireData(id int, race Race) *EmpireData {
	e := &EmpireData{
		ID:                id,
		Race:              race,
		TurnYear:          StartingYear,
		Research:          ResearchSettings{BudgetPercent: 0, Priority: NewTechLevel()},
		Progress:          ResearchState{Levels: NewTechLevel(), Accumulated: make(map[Field]int)},
		OwnedStars:        make(map[string]*Star),
		OwnedFleets:       make(map[uint64]*Fleet),
		Designs:           make(map[uint64]*ShipDesign),
		StarReports:       make(map[string]StarReport),
		FleetReports:      make(map[uint64]FleetReport),
		EmpireReports:     make(map[int]*EmpireReport),
		BattlePlans:       make(map[string]BattlePlan),
		VisibleMinefields: make(map[uint64]Minefield),
	}
	e.BattlePlans["Default"] = BattlePlan{Name: "Default", Priorities: []TargetCategory{TargetAnyShip}}
	return e
}

// NextFleetKey :
// Allocates the next fleet key for this empire. Strictly monotonic
// within the empire.
func (e *EmpireData) NextFleetKey() uint64 {
	e.fleetCounter++
	return MakeFleetKey(e.ID, e.fleetCounter)
}

// NextDesignKey :
// Allocates the next design key for this empire.
func (e *EmpireData) NextDesignKey() uint64 {
	e.designCounter++
	return MakeFleetKey(e.ID, e.designCounter)
}

// NextPacketKey :
// Allocates the next mineral packet key for this empire, encoded the
// same way as a fleet key.
func (e *EmpireData) NextPacketKey() uint64 {
	e.packetCounter++
	return MakeFleetKey(e.ID, e.packetCounter)
}

// StartingYear :
// The calendar year turn 0 starts on.
const StartingYear = 2100
