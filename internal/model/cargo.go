package model

// ColonistsPerKiloton :
// Conversion factor between a kT of colonists carried as cargo and the
// actual headcount tracked on a star.
const ColonistsPerKiloton = 100

// Cargo :
// Non-negative quintuple of mineral and colonist cargo carried by a
// fleet. `Colonists` is expressed in kT, matching the star's colonist
// count only after multiplying by ColonistsPerKiloton.
type Cargo struct {
	Ironium    int `json:"ironium" bson:"ironium"`
	Boranium   int `json:"boranium" bson:"boranium"`
	Germanium  int `json:"germanium" bson:"germanium"`
	Colonists  int `json:"colonists" bson:"colonists"`
	Silicoxium int `json:"silicoxium" bson:"silicoxium"`
}

// Mass :
// Returns the total mass of the cargo hold: the sum of every field.
func (c Cargo) Mass() int {
	return c.Ironium + c.Boranium + c.Germanium + c.Colonists + c.Silicoxium
}

// IsZero :
// Returns whether the cargo hold is entirely empty.
func (c Cargo) IsZero() bool {
	return c == Cargo{}
}

// Minerals :
// Returns the mineral-only portion of this cargo as a Resources value
// (energy is always zero; colonists and silicoxium are excluded). Used
// when a colonising fleet transfers its held minerals onto a star.
func (c Cargo) Minerals() Resources {
	return Resources{Ironium: c.Ironium, Boranium: c.Boranium, Germanium: c.Germanium}
}

// Add :
// Returns the componentwise sum of two cargo holds.
func (c Cargo) Add(other Cargo) Cargo {
	return Cargo{
		Ironium:    c.Ironium + other.Ironium,
		Boranium:   c.Boranium + other.Boranium,
		Germanium:  c.Germanium + other.Germanium,
		Colonists:  c.Colonists + other.Colonists,
		Silicoxium: c.Silicoxium + other.Silicoxium,
	}
}

// Sub :
// Returns the componentwise difference `c - other`, clamped at zero per
// field. Cargo transfers are validated against availability before this
// is called, so clamping rather than erroring keeps the common case
// (exact transfer amounts) simple while still being safe against
// rounding-induced off-by-ones.
func (c Cargo) Sub(other Cargo) Cargo {
	sub := func(a, b int) int {
		v := a - b
		if v < 0 {
			return 0
		}
		return v
	}
	return Cargo{
		Ironium:    sub(c.Ironium, other.Ironium),
		Boranium:   sub(c.Boranium, other.Boranium),
		Germanium:  sub(c.Germanium, other.Germanium),
		Colonists:  sub(c.Colonists, other.Colonists),
		Silicoxium: sub(c.Silicoxium, other.Silicoxium),
	}
}

// ColonistHeadcount :
// Converts the kT of colonists carried into an actual headcount.
func (c Cargo) ColonistHeadcount() int {
	return c.Colonists * ColonistsPerKiloton
}
