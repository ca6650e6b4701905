package dist

import "math"

// Gumbel is the light-tailed extreme-value distribution with location Loc
// and scale Scale > 0
type Gumbel struct {
	Loc   float64
	Scale float64
}

// NewGumbel returns a validated Gumbel distribution
func NewGumbel(loc, scale float64) (Gumbel, error) {
	g := Gumbel{Loc: loc, Scale: scale}
	if err := g.Validate(); err != nil {
		return Gumbel{}, err
	}
	return g, nil
}

// Validate checks that the location is finite and the scale is positive
func (g Gumbel) Validate() error {
	if err := checkFinite("gumbel", "loc", g.Loc); err != nil {
		return err
	}
	return checkScale("gumbel", g.Scale)
}

// InSupport is true for every real x
func (g Gumbel) InSupport(x float64) bool {
	return !math.IsNaN(x)
}

// CDF computes exp(-exp(-(x-loc)/scale))
func (g Gumbel) CDF(x float64) float64 {
	y := (x - g.Loc) / g.Scale
	return math.Exp(-math.Exp(-y))
}

// PDF computes (1/scale) exp(-y) exp(-exp(-y)) with y = (x-loc)/scale
func (g Gumbel) PDF(x float64) float64 {
	y := (x - g.Loc) / g.Scale
	c := 1.0 / g.Scale
	return c * math.Exp(-y) * math.Exp(-math.Exp(-y))
}

// Quantile computes loc - scale log(-log p). Quantile(0) is -Inf and
// Quantile(1) is +Inf.
func (g Gumbel) Quantile(p float64) float64 {
	return g.Loc - g.Scale*math.Log(negLog(p))
}

// Random draws a Gumbel variate
func (g Gumbel) Random(seed Seed) float64 {
	return inverseTransform(g, NewSource(seed))
}
