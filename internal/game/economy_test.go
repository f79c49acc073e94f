package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"novaturn/internal/model"
)

func testRace() model.Race {
	return model.Race{
		Name:                 "Humanoid",
		GrowthRate:           15,
		ColonistsPerResource: 1000,
		FactoryProduction:    10,
		MineProduction:       10,
		OperableFactories:    10,
		OperableMines:        10,
		HabCenter:            [3]int{50, 50, 50},
		HabRange:             [3]int{50, 50, 50},
	}
}

func testEmpire() *model.EmpireData {
	return model.NewEmpireData(1, testRace())
}

func TestStarEconomyGrowthAtLowCapacity(t *testing.T) {
	empire := testEmpire()
	star := &model.Star{
		Name:          "home",
		Owner:         empire.ID,
		Colonists:     10_000,
		Environment:   model.Environment{Gravity: 50, Temperature: 50, Radiation: 50},
		Concentration: model.Concentration{Ironium: 50, Boranium: 50, Germanium: 50},
	}

	before := star.Colonists
	ctx := EconomyContext{Empire: empire, Catalog: nil}
	ProcessStarEconomy(ctx, star)

	assert.Greater(t, star.Colonists, before, "a young colony far below capacity should grow")
}

func TestStarEconomyOvercrowdedShrinks(t *testing.T) {
	empire := testEmpire()
	star := &model.Star{
		Name:          "crowded",
		Owner:         empire.ID,
		Colonists:     4_000_000,
		Environment:   model.Environment{Gravity: 50, Temperature: 50, Radiation: 50},
		Concentration: model.Concentration{Ironium: 50, Boranium: 50, Germanium: 50},
	}

	before := star.Colonists
	ctx := EconomyContext{Empire: empire, Catalog: nil}
	ProcessStarEconomy(ctx, star)

	assert.Less(t, star.Colonists, before, "a population far past capacity should shrink")
}

func TestStarEconomySkipsUnownedStar(t *testing.T) {
	empire := testEmpire()
	star := &model.Star{Name: "wild", Owner: model.Nobody, Colonists: 0}

	ctx := EconomyContext{Empire: empire, Catalog: nil}
	msgs := ProcessStarEconomy(ctx, star)

	assert.Nil(t, msgs)
	assert.Equal(t, 0, star.Colonists)
}

func TestMineStarDoesNotRaiseConcentration(t *testing.T) {
	empire := testEmpire()
	star := &model.Star{
		Name:          "miner",
		Owner:         empire.ID,
		Colonists:     50_000,
		Mines:         100,
		Concentration: model.Concentration{Ironium: 80, Boranium: 80, Germanium: 80},
	}

	before := star.Concentration.Ironium
	mineStar(star, empire.Race)

	assert.Greater(t, star.ResourcesOnHand.Ironium, 0)
	assert.LessOrEqual(t, star.Concentration.Ironium, before)
}

func TestAccumulateResearchLevelsUp(t *testing.T) {
	empire := testEmpire()
	empire.Research.Priority[model.Weapons] = 10

	msgs := AccumulateResearch(empire, 1000)

	assert.Equal(t, 4, empire.Progress.Levels.Level(model.Weapons))
	assert.NotEmpty(t, msgs)
}

func TestAccumulateResearchCarriesRemainder(t *testing.T) {
	empire := testEmpire()
	empire.Research.Priority[model.Weapons] = 10

	AccumulateResearch(empire, 10)

	assert.Equal(t, 0, empire.Progress.Levels.Level(model.Weapons))
	assert.Equal(t, 10, empire.Progress.Accumulated[model.Weapons])
}
