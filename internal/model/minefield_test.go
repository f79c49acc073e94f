package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinefieldDecayRemovesBelowMinimum(t *testing.T) {
	m := Minefield{Mines: 1000}

	for i := 0; i < 1000; i++ {
		if m.Decay() {
			break
		}
	}

	assert.LessOrEqual(t, m.Mines, MinefieldMinMines)
}

func TestMinefieldDecaySingleStep(t *testing.T) {
	m := Minefield{Mines: 1000}

	remove := m.Decay()

	assert.Equal(t, 990, m.Mines)
	assert.False(t, remove)
}

func TestMinefieldCoversWithinRadius(t *testing.T) {
	m := Minefield{Position: Position{X: 0, Y: 0}, Mines: 100}

	assert.True(t, m.Covers(Position{X: 9, Y: 0}))
	assert.False(t, m.Covers(Position{X: 11, Y: 0}))
}

func TestTechLevelGreaterOrEqual(t *testing.T) {
	a := TechLevel{Weapons: 5, Energy: 2}
	b := TechLevel{Weapons: 3}

	assert.True(t, a.GreaterOrEqual(b))
	assert.False(t, b.GreaterOrEqual(a))
}

func TestHighestWeightedBreaksTiesByFieldOrder(t *testing.T) {
	weights := TechLevel{Biotechnology: 5, Electronics: 5}

	assert.Equal(t, Biotechnology, HighestWeighted(weights))
}

func TestTechLevelCloneIsIndependent(t *testing.T) {
	a := TechLevel{Weapons: 1}
	b := a.Clone()
	b[Weapons] = 2

	assert.Equal(t, 1, a.Level(Weapons))
	assert.Equal(t, 2, b.Level(Weapons))
}
