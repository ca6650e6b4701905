package dist

import "math"

// Frechet is the heavy-tailed extreme-value distribution, bounded below by
// Loc
type Frechet struct {
	Loc   float64
	Scale float64
	Shape float64
}

// NewFrechet returns a validated Fréchet distribution. Scale and shape must
// be positive.
func NewFrechet(loc, scale, shape float64) (Frechet, error) {
	f := Frechet{Loc: loc, Scale: scale, Shape: shape}
	if err := f.Validate(); err != nil {
		return Frechet{}, err
	}
	return f, nil
}

// Validate checks that the location is finite and the scale and shape are positive
func (f Frechet) Validate() error {
	if err := checkFinite("frechet", "loc", f.Loc); err != nil {
		return err
	}
	if err := checkScale("frechet", f.Scale); err != nil {
		return err
	}
	return checkShape("frechet", f.Shape)
}

// InSupport is true for x > loc
func (f Frechet) InSupport(x float64) bool {
	return x > f.Loc
}

// CDF computes exp(-((x-loc)/scale)^-shape)
func (f Frechet) CDF(x float64) float64 {
	y := (x - f.Loc) / f.Scale
	return math.Exp(-math.Pow(y, -f.Shape))
}

// PDF computes (shape/scale) y^(-1-shape) exp(-y^-shape)
func (f Frechet) PDF(x float64) float64 {
	y := (x - f.Loc) / f.Scale
	c := f.Shape / f.Scale
	return c * math.Pow(y, -1.0-f.Shape) * math.Exp(-math.Pow(y, -f.Shape))
}

// Quantile computes loc + scale (-log p)^(-1/shape). Quantile(0) is loc.
func (f Frechet) Quantile(p float64) float64 {
	return f.Loc + f.Scale*math.Pow(negLog(p), -1.0/f.Shape)
}

// Random draws a Fréchet variate
func (f Frechet) Random(seed Seed) float64 {
	return inverseTransform(f, NewSource(seed))
}
