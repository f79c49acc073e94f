package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"novaturn/internal/model"
)

func testFleetWithArmour(owner int, pos model.Position, armour int) *model.Fleet {
	fleet := model.NewFleet(model.MakeFleetKey(owner, 1), owner, "scout", pos)
	fleet.Tokens[1] = &model.ShipToken{DesignKey: 1, Quantity: 1, Armour: armour, PerShipArmour: armour}
	return fleet
}

func TestCheckMinefieldsSkipsOwnField(t *testing.T) {
	pos := model.Position{X: 0, Y: 0}
	fleet := testFleetWithArmour(1, pos, 100)
	field := &model.Minefield{Owner: 1, Position: pos, Mines: 10000, MineType: model.MineStandard}
	fields := map[uint64]*model.Minefield{1: field}

	rng := rand.New(rand.NewSource(1))
	msgs := CheckMinefields(rng, 1, fleet, 5, fields)

	assert.Empty(t, msgs)
	assert.Equal(t, 100, fleet.Tokens[1].Armour)
}

func TestCheckMinefieldsSkipsOutsideRadius(t *testing.T) {
	fleet := testFleetWithArmour(1, model.Position{X: 100, Y: 100}, 100)
	field := &model.Minefield{Owner: 2, Position: model.Position{X: 0, Y: 0}, Mines: 10000, MineType: model.MineStandard}
	fields := map[uint64]*model.Minefield{1: field}

	rng := rand.New(rand.NewSource(1))
	msgs := CheckMinefields(rng, 1, fleet, 9, fields)

	assert.Empty(t, msgs)
	assert.Equal(t, 100, fleet.Tokens[1].Armour)
}

func TestCheckMinefieldsHighWarpGuaranteesHit(t *testing.T) {
	pos := model.Position{X: 0, Y: 0}
	fleet := testFleetWithArmour(1, pos, 100)
	field := &model.Minefield{Owner: 2, Position: pos, Mines: 10000, MineType: model.MineStandard}
	fields := map[uint64]*model.Minefield{1: field}

	rng := rand.New(rand.NewSource(1))
	msgs := CheckMinefields(rng, 1, fleet, 400, fields)

	assert.Len(t, msgs, 1)
	assert.Equal(t, model.MessageMinefieldHit, msgs[0].Kind)
	assert.Less(t, fleet.Tokens[1].Armour, 100)
}

func TestMinefieldDamageScalesByType(t *testing.T) {
	fleet := testFleetWithArmour(1, model.Position{}, 1000)

	standard := minefieldDamage(model.MineStandard, fleet)
	heavy := minefieldDamage(model.MineHeavy, fleet)
	speedBump := minefieldDamage(model.MineSpeedBump, fleet)

	assert.Equal(t, 50, standard)
	assert.Equal(t, 150, heavy)
	assert.Equal(t, 20, speedBump)
}

func TestApplyFleetDamageDestroysToken(t *testing.T) {
	fleet := testFleetWithArmour(1, model.Position{}, 10)

	applyFleetDamage(fleet, 10)

	assert.Empty(t, fleet.Tokens)
}

func TestApplyFleetDamageHitsHeaviestTokenFirst(t *testing.T) {
	fleet := model.NewFleet(model.MakeFleetKey(1, 1), 1, "fleet", model.Position{})
	fleet.Tokens[1] = &model.ShipToken{DesignKey: 1, Quantity: 1, Armour: 50}
	fleet.Tokens[2] = &model.ShipToken{DesignKey: 2, Quantity: 1, Armour: 200}

	applyFleetDamage(fleet, 40)

	assert.Equal(t, 160, fleet.Tokens[2].Armour)
	assert.Equal(t, 50, fleet.Tokens[1].Armour)
}
