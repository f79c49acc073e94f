package model

// Trait :
// A lesser or primary racial trait. Only the traits that feed a
// mining/production/research/population formula are modelled here;
// component availability/restriction is the component catalog's
// concern and out of scope for the turn engine core.
type Trait string

const (
	TraitHyperExpansion     Trait = "HE"
	TraitImprovedFuel       Trait = "IFE"
	TraitCheapEngines       Trait = "CE"
	TraitRamScoopEngines    Trait = "RAMSCOOP"
	TraitRegeneratingShield Trait = "RS"
)

// Race :
// The economic and biological parameters of a player's species that
// feed the mining, production, research and population formulas.
// Ship component availability/restriction belongs to the component
// catalog, not here.
type Race struct {
	Name string `json:"name" bson:"name"`

	Traits map[Trait]bool `json:"traits" bson:"traits"`

	// GrowthRate is the race's base population growth rate, as a whole
	// percentage (e.g. 15 means 15%).
	GrowthRate int `json:"growth_rate" bson:"growth_rate"`

	// ColonistsPerResource is the number of colonists needed to produce
	// one resource point per year, absent any factories.
	ColonistsPerResource int `json:"colonists_per_resource" bson:"colonists_per_resource"`

	// FactoryProduction is the resources produced per 10 operable
	// factories per year.
	FactoryProduction float64 `json:"factory_production" bson:"factory_production"`

	// MineProduction is the minerals produced per 10 operable mines per
	// year, before concentration scaling.
	MineProduction float64 `json:"mine_production" bson:"mine_production"`

	// OperableFactories/OperableMines are the number of factories/mines
	// a single colonist (scaled per 10,000) can operate.
	OperableFactories float64 `json:"operable_factories" bson:"operable_factories"`
	OperableMines     float64 `json:"operable_mines" bson:"operable_mines"`

	// HabCenter/HabRange describe, per environment axis
	// (gravity/temperature/radiation, each 0..100), the centre and the
	// half-width of the comfortable band. Used to compute the
	// habitability value H at a given star.
	HabCenter [3]int `json:"hab_center" bson:"hab_center"`
	HabRange  [3]int `json:"hab_range" bson:"hab_range"`

	// Flat per-unit costs for the manufacturing queue's non-ship orders
	// (component catalog only prices hulls/engines/components).
	FactoryCost   Resources `json:"factory_cost" bson:"factory_cost"`
	MineCost      Resources `json:"mine_cost" bson:"mine_cost"`
	DefenseCost   Resources `json:"defense_cost" bson:"defense_cost"`
	TerraformCost Resources `json:"terraform_cost" bson:"terraform_cost"`
	AlchemyCost   Resources `json:"alchemy_cost" bson:"alchemy_cost"`
}

// HasTrait :
// Returns whether the race carries the named trait.
func (r Race) HasTrait(t Trait) bool {
	return r.Traits[t]
}

// Habitability :
// Returns the race's habitability value H in [-1, 1] for the given
// environment triple (gravity, temperature, radiation, each 0..100),
// using the race's per-axis comfort band. Each axis scores 1 at the
// centre, falling linearly to 0 at the band edge and below 0 beyond
// it; an axis with no range scores 0. H is the sum of the three axis
// scores divided by 3, clamped to [-1, 1], so a star dead-center on
// every axis scores 1 and one axis outside its band does not by itself
// make H negative.
func (r Race) Habitability(env [3]int) float64 {
	sum := 0.0
	for i := 0; i < 3; i++ {
		rng := r.HabRange[i]
		if rng <= 0 {
			continue
		}
		dist := env[i] - r.HabCenter[i]
		if dist < 0 {
			dist = -dist
		}
		sum += 1.0 - float64(dist)/float64(rng)
	}
	h := sum / 3.0
	if h > 1 {
		h = 1
	}
	if h < -1 {
		h = -1
	}
	return h
}
