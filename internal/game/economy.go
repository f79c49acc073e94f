package game

import (
	"fmt"
	"math"

	"novaturn/internal/model"
)

// EconomyContext :
// Collaborators the star-update step needs beyond the star itself: the
// owning empire (for race parameters and research state) and the
// component catalog (for ship/starbase design costs).
type EconomyContext struct {
	Empire  *model.EmpireData
	Catalog ComponentCatalog
}

// ProcessStarEconomy :
// Runs one owned, populated star through a full year of production:
// mining, resource income, research allocation, population growth,
// manufacturing, and the leftover-energy sweep, in that order.
// Population growth runs between research allocation and
// manufacturing so newly grown colonists crew next year's factories,
// not this year's.
func ProcessStarEconomy(ctx EconomyContext, star *model.Star) []model.Message {
	if !star.IsOwned() || star.Colonists <= 0 {
		return nil
	}

	race := ctx.Empire.Race
	var msgs []model.Message

	mineStar(star, race)

	income := resourcesPerYear(star, race)

	budget := 0.0
	if !ctx.Empire.Research.OnlyLeftover {
		budget = income * float64(ctx.Empire.Research.BudgetPercent) / 100.0
	}
	remaining := income - budget
	msgs = append(msgs, AccumulateResearch(ctx.Empire, budget)...)

	star.ResourcesOnHand.Energy += int(remaining)

	growStarPopulation(star, race)

	msgs = append(msgs, processManufacturing(ctx, star)...)

	if leftover := star.ResourcesOnHand.Energy; leftover > 0 {
		star.ResourcesOnHand.Energy = 0
		msgs = append(msgs, AccumulateResearch(ctx.Empire, float64(leftover))...)
	}

	return msgs
}

// mineStar :
// Extracts minerals from each of a star's three concentrations
//, adding the mined amount to the star's stockpile and
// decaying the concentration it was drawn from.
func mineStar(star *model.Star, race model.Race) {
	minesInUse := star.OperableMines(race)

	mine := func(concentration *int, onHand *int) {
		rate := float64(minesInUse) / 10.0 * race.MineProduction * (float64(*concentration) / 100.0)
		mined := int(rate)
		*onHand += mined

		decay := int(float64(mined) * float64(*concentration) / 12500.0)
		*concentration -= decay
		if *concentration < 1 {
			*concentration = 1
		}
	}

	mine(&star.Concentration.Ironium, &star.ResourcesOnHand.Ironium)
	mine(&star.Concentration.Boranium, &star.ResourcesOnHand.Boranium)
	mine(&star.Concentration.Germanium, &star.ResourcesOnHand.Germanium)
}

// resourcesPerYear :
// The abstract production income a star generates this turn
//, funding research and manufacturing before it is
// deducted.
func resourcesPerYear(star *model.Star, race model.Race) float64 {
	factoriesInUse := star.OperableFactories(race)
	fromColonists := float64(star.Colonists) / float64(maxInt(race.ColonistsPerResource, 1))
	fromFactories := float64(factoriesInUse) / 10.0 * race.FactoryProduction
	return fromColonists + fromFactories
}

// levelUpCost :
// The research points needed to advance from `level` to `level+1`,
// truncated to an integer.
func levelUpCost(level int) int {
	return int(50.0 * math.Pow(1.75, float64(level)))
}

// AccumulateResearch :
// Adds `points` of research production to the empire's
// highest-weighted field and applies as many level-ups as it funds,
// carrying any remainder forward. Points are truncated
// to an integer on entry, matching every other whole-resource
// accounting in the economy step.
func AccumulateResearch(empire *model.EmpireData, points float64) []model.Message {
	if points <= 0 {
		return nil
	}

	field := model.HighestWeighted(empire.Research.Priority)
	empire.Progress.Accumulated[field] += int(points)

	var msgs []model.Message
	for {
		level := empire.Progress.Levels.Level(field)
		cost := levelUpCost(level)
		if empire.Progress.Accumulated[field] < cost {
			break
		}
		empire.Progress.Accumulated[field] -= cost
		empire.Progress.Levels[field] = level + 1
		msgs = append(msgs, model.NewMessage(empire.ID, model.MessageResearch,
			fmt.Sprintf("%s tech reached level %d.", field, level+1)))
	}
	return msgs
}

// growStarPopulation :
// Applies the population delta formula and rounds the result down to the nearest 100.
func growStarPopulation(star *model.Star, race model.Race) {
	h := race.Habitability(star.Environment.Array())

	maxPopulation := 1_000_000.0
	if h < 0 {
		maxPopulation = 250_000.0
	}
	if race.HasTrait(model.TraitHyperExpansion) {
		maxPopulation *= 0.5
	}

	g := float64(race.GrowthRate) / 100.0
	if race.HasTrait(model.TraitHyperExpansion) {
		g *= 2.0
	}

	pop := float64(star.Colonists)
	c := pop / maxPopulation

	var delta float64
	switch {
	case h < 0:
		delta = 0.1 * pop * h
	case c < 0.25:
		delta = pop * g * h
	case c < 1:
		delta = pop * g * h * (16.0 / 9.0) * (1 - c) * (1 - c)
	case c == 1:
		delta = 0
	case c < 4:
		delta = pop * (c - 1) * -0.04
	default:
		delta = -0.12 * pop
	}

	newPop := int(pop + delta)
	newPop -= newPop % 100
	if newPop < 0 {
		newPop = 0
	}
	star.Colonists = newPop
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
