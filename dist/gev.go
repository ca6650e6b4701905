package dist

import "math"

// GEV is the Generalized Extreme Value distribution. Shape 0 is the Gumbel
// case, a positive shape the Fréchet-like case and a negative shape the
// reversed Weibull-like case.
type GEV struct {
	Loc   float64
	Scale float64
	Shape float64
}

// NewGEV returns a validated GEV distribution. Only the scale is
// constrained; it must be positive.
func NewGEV(loc, scale, shape float64) (GEV, error) {
	g := GEV{Loc: loc, Scale: scale, Shape: shape}
	if err := g.Validate(); err != nil {
		return GEV{}, err
	}
	return g, nil
}

// Validate checks that the location and shape are finite and the scale is positive
func (g GEV) Validate() error {
	if err := checkFinite("gev", "loc", g.Loc); err != nil {
		return err
	}
	if err := checkScale("gev", g.Scale); err != nil {
		return err
	}
	return checkFinite("gev", "shape", g.Shape)
}

// InSupport is true when 1 + shape (x-loc)/scale > 0
func (g GEV) InSupport(x float64) bool {
	return 1.0+g.Shape*((x-g.Loc)/g.Scale) > 0
}

// t is exp(-(x-loc)/scale) for shape 0 and (1 + shape y)^(-1/shape) otherwise.
// The shape 0 test is exact.
func (g GEV) t(x float64) float64 {
	y := (x - g.Loc) / g.Scale
	if g.Shape == 0 {
		return math.Exp(-y)
	}
	return math.Pow(1.0+g.Shape*y, -1.0/g.Shape)
}

// CDF computes exp(-t(x))
func (g GEV) CDF(x float64) float64 {
	return math.Exp(-g.t(x))
}

// PDF computes (1/scale) t(x)^(shape+1) exp(-t(x))
func (g GEV) PDF(x float64) float64 {
	c := 1.0 / g.Scale
	t := g.t(x)
	return c * math.Pow(t, g.Shape+1.0) * math.Exp(-t)
}

// Quantile computes loc - scale log(-log p) for shape 0 and
// (scale/shape)(-log p)^-shape - scale/shape + loc otherwise
func (g GEV) Quantile(p float64) float64 {
	if g.Shape == 0 {
		return -g.Scale*math.Log(negLog(p)) + g.Loc
	}
	c := g.Scale / g.Shape
	return c*math.Pow(negLog(p), -g.Shape) - c + g.Loc
}

// Random draws a GEV variate
func (g GEV) Random(seed Seed) float64 {
	return inverseTransform(g, NewSource(seed))
}
