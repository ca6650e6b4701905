package dist

import "math"

// Weibull is the reversed Weibull distribution of minima theory, bounded
// above by Loc. It is not the reliability Weibull of distuv.Weibull.
type Weibull struct {
	Loc   float64
	Scale float64
	Shape float64
}

// NewWeibull returns a validated reversed Weibull distribution. Scale and
// shape must be positive.
func NewWeibull(loc, scale, shape float64) (Weibull, error) {
	w := Weibull{Loc: loc, Scale: scale, Shape: shape}
	if err := w.Validate(); err != nil {
		return Weibull{}, err
	}
	return w, nil
}

// Validate checks that the location is finite and the scale and shape are positive
func (w Weibull) Validate() error {
	if err := checkFinite("weibull", "loc", w.Loc); err != nil {
		return err
	}
	if err := checkScale("weibull", w.Scale); err != nil {
		return err
	}
	return checkShape("weibull", w.Shape)
}

// InSupport is true for x < loc
func (w Weibull) InSupport(x float64) bool {
	return x < w.Loc
}

// CDF computes exp(-(-(x-loc)/scale)^shape)
func (w Weibull) CDF(x float64) float64 {
	y := (x - w.Loc) / w.Scale
	return math.Exp(-math.Pow(-y, w.Shape))
}

// PDF computes (shape/scale) (-y)^(shape-1) exp(-(-y)^shape)
func (w Weibull) PDF(x float64) float64 {
	y := (x - w.Loc) / w.Scale
	c := w.Shape / w.Scale
	return c * math.Pow(-y, w.Shape-1.0) * math.Exp(-math.Pow(-y, w.Shape))
}

// Quantile computes loc - scale (-log p)^(1/shape). Quantile(1) is loc.
func (w Weibull) Quantile(p float64) float64 {
	return w.Loc - w.Scale*math.Pow(negLog(p), 1.0/w.Shape)
}

// Random draws a reversed Weibull variate
func (w Weibull) Random(seed Seed) float64 {
	return inverseTransform(w, NewSource(seed))
}
