package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFleetKeyRoundTrip(t *testing.T) {
	key := MakeFleetKey(42, 7)

	assert.Equal(t, 42, FleetKeyOwner(key))
	assert.Equal(t, uint32(7), FleetKeyCounter(key))
}

func TestFleetKeyDistinctCounters(t *testing.T) {
	a := MakeFleetKey(1, 1)
	b := MakeFleetKey(1, 2)

	assert.NotEqual(t, a, b)
}

func TestMinefieldKeyRoundTrip(t *testing.T) {
	key := MakeMinefieldKey(5, -100, 200, MineStandard)

	assert.Equal(t, 5, MinefieldKeyOwner(key))
	assert.Equal(t, MineStandard, MinefieldKeyType(key))

	x, y := MinefieldKeyGrid(key)
	assert.Equal(t, -100, x)
	assert.Equal(t, 200, y)
}

func TestMinefieldKeyCollidesOnSameCell(t *testing.T) {
	a := MakeMinefieldKey(3, 10, 10, MineStandard)
	b := MakeMinefieldKey(3, 10, 10, MineStandard)

	assert.Equal(t, a, b)
}

func TestMinefieldKeyDistinguishesType(t *testing.T) {
	a := MakeMinefieldKey(3, 10, 10, MineStandard)
	b := MakeMinefieldKey(3, 10, 10, MineHeavy)

	assert.NotEqual(t, a, b)
}
