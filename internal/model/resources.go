package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Resources :
// Non-negative quadruple of minerals and energy on hand at a star, or
// committed to a production order. Energy does not contribute to mass.
//
// The `Ironium`, `Boranium` and `Germanium` fields are minerals; the
// `Energy` field is not a physical substance and is tracked purely as
// a resource budget (it is what research and manufacturing consume).
type Resources struct {
	Ironium   int `json:"ironium" bson:"ironium"`
	Boranium  int `json:"boranium" bson:"boranium"`
	Germanium int `json:"germanium" bson:"germanium"`
	Energy    int `json:"energy" bson:"energy"`
}

// Mass :
// Returns the mass contribution of this resource set. Energy has no
// mass and is excluded.
func (r Resources) Mass() int {
	return r.Ironium + r.Boranium + r.Germanium
}

// Add :
// Returns the componentwise sum of two resource sets.
func (r Resources) Add(other Resources) Resources {
	return Resources{
		Ironium:   r.Ironium + other.Ironium,
		Boranium:  r.Boranium + other.Boranium,
		Germanium: r.Germanium + other.Germanium,
		Energy:    r.Energy + other.Energy,
	}
}

// Sub :
// Returns the componentwise difference `r - other`. An underflow (any
// resulting field going negative) is returned as an error: 
// subtraction never silently goes negative, and per §4.8 this must be
// caught by validation before it ever reaches apply-time arithmetic.
func (r Resources) Sub(other Resources) (Resources, error) {
	out := Resources{
		Ironium:   r.Ironium - other.Ironium,
		Boranium:  r.Boranium - other.Boranium,
		Germanium: r.Germanium - other.Germanium,
		Energy:    r.Energy - other.Energy,
	}
	if out.Ironium < 0 || out.Boranium < 0 || out.Germanium < 0 || out.Energy < 0 {
		return Resources{}, fmt.Errorf("resource underflow: %+v - %+v", r, other)
	}
	return out, nil
}

// GreaterOrEqual :
// Returns whether every field of `r` is at least the matching field of
// `other`. Used to check whether a production order can be afforded.
func (r Resources) GreaterOrEqual(other Resources) bool {
	return r.Ironium >= other.Ironium &&
		r.Boranium >= other.Boranium &&
		r.Germanium >= other.Germanium &&
		r.Energy >= other.Energy
}

// IsZero :
// Returns whether every field of this resource set is zero.
func (r Resources) IsZero() bool {
	return r.Ironium == 0 && r.Boranium == 0 && r.Germanium == 0 && r.Energy == 0
}

// ScaleInt :
// Multiplies every field by an integer scalar. This is always exact.
func (r Resources) ScaleInt(n int) Resources {
	return Resources{
		Ironium:   r.Ironium * n,
		Boranium:  r.Boranium * n,
		Germanium: r.Germanium * n,
		Energy:    r.Energy * n,
	}
}

// ScaleCeil :
// Multiplies every field by a real scalar, rounding each result up to
// the next integer. This avoids consuming more of a resource than is
// actually present when a fractional share is taken
// (e.g. a production order spanning a partial turn's worth of
// resources). `decimal.Decimal` is used instead of `math.Ceil` on a
// float64 product so the rounding boundary is exact regardless of the
// scalar's binary floating point representation.
func (r Resources) ScaleCeil(scalar float64) Resources {
	d := decimal.NewFromFloat(scalar)
	return Resources{
		Ironium:   ceilField(r.Ironium, d),
		Boranium:  ceilField(r.Boranium, d),
		Germanium: ceilField(r.Germanium, d),
		Energy:    ceilField(r.Energy, d),
	}
}

func ceilField(v int, scalar decimal.Decimal) int {
	product := decimal.NewFromInt(int64(v)).Mul(scalar)
	return int(product.Ceil().IntPart())
}

// Ratio :
// Returns the minimum ratio of `r` to `other` across all four fields,
// matching the "how many of these can I afford" division used by the
// manufacturing queue. Each divisor is floored to at least 0.1 to avoid
// division by zero when an order needs none of a given resource.
func (r Resources) Ratio(other Resources) float64 {
	div := func(a, b int) float64 {
		bf := float64(b)
		if bf < 0.1 {
			bf = 0.1
		}
		return float64(a) / bf
	}

	ratios := []float64{
		div(r.Ironium, other.Ironium),
		div(r.Boranium, other.Boranium),
		div(r.Germanium, other.Germanium),
		div(r.Energy, other.Energy),
	}

	min := ratios[0]
	for _, v := range ratios[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
