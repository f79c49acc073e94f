package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourcesAdd(t *testing.T) {
	a := Resources{Ironium: 10, Boranium: 5, Germanium: 2, Energy: 1}
	b := Resources{Ironium: 1, Boranium: 2, Germanium: 3, Energy: 4}

	assert.Equal(t, Resources{Ironium: 11, Boranium: 7, Germanium: 5, Energy: 5}, a.Add(b))
}

func TestResourcesSubUnderflow(t *testing.T) {
	a := Resources{Ironium: 1}
	b := Resources{Ironium: 2}

	_, err := a.Sub(b)
	assert.Error(t, err)
}

func TestResourcesSubExact(t *testing.T) {
	a := Resources{Ironium: 10, Boranium: 10, Germanium: 10, Energy: 10}
	b := Resources{Ironium: 4, Boranium: 3, Germanium: 2, Energy: 1}

	got, err := a.Sub(b)
	assert.NoError(t, err)
	assert.Equal(t, Resources{Ironium: 6, Boranium: 7, Germanium: 8, Energy: 9}, got)
}

func TestResourcesGreaterOrEqual(t *testing.T) {
	a := Resources{Ironium: 10, Boranium: 10, Germanium: 10, Energy: 10}

	assert.True(t, a.GreaterOrEqual(Resources{Ironium: 10, Boranium: 10, Germanium: 10, Energy: 10}))
	assert.False(t, a.GreaterOrEqual(Resources{Ironium: 11}))
}

func TestResourcesScaleCeilRoundsUp(t *testing.T) {
	r := Resources{Ironium: 3, Boranium: 1}

	got := r.ScaleCeil(0.5)
	assert.Equal(t, 2, got.Ironium)
	assert.Equal(t, 1, got.Boranium)
}

func TestResourcesRatioUsesMinimumField(t *testing.T) {
	have := Resources{Ironium: 10, Boranium: 100, Germanium: 100, Energy: 100}
	need := Resources{Ironium: 5, Boranium: 10, Germanium: 10, Energy: 10}

	assert.InDelta(t, 2.0, have.Ratio(need), 0.0001)
}

func TestResourcesIsZero(t *testing.T) {
	assert.True(t, Resources{}.IsZero())
	assert.False(t, Resources{Energy: 1}.IsZero())
}
