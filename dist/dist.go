// Package dist implements the extreme-value distributions: Gumbel, Fréchet,
// reversed Weibull and the Generalized Extreme Value (GEV) distribution.
//
// The methods of each distribution evaluate the closed forms without any
// checks. The package level functions CDF, PDF, Quantile, Random and Sample
// validate the parameters and the input first and return a *DomainError
// when either is out of range.
package dist

import (
	"errors"
	"fmt"
	"math"
)

// Distribution is the set of operations every extreme-value distribution
// provides
type Distribution interface {
	// CDF returns P(X <= x)
	CDF(x float64) float64
	// PDF returns the density at x
	PDF(x float64) float64
	// Quantile is the inverse of the CDF, p in [0,1]
	Quantile(p float64) float64
	// Random draws a variate by inverse-transform sampling
	Random(seed Seed) float64
	// Validate checks the parameters
	Validate() error
	// InSupport reports whether x is in the domain of CDF and PDF
	InSupport(x float64) bool
}

var (
	// ErrDomain is matched by every domain violation
	ErrDomain = errors.New("domain violation")
	// ErrUnknownDistribution is returned by New for names that are not registered
	ErrUnknownDistribution = errors.New("unknown distribution")
)

// DomainError describes a parameter or an input outside its required range
type DomainError struct {
	// Dist name of the distribution
	Dist string
	// Field that is out of range, either a parameter name or the operation input
	Field string
	// Value that was rejected
	Value float64
	// Requirement that was violated
	Requirement string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %v violates %s", e.Dist, e.Field, e.Value, e.Requirement)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func domainErr(dist, field string, value float64, requirement string) error {
	return &DomainError{
		Dist:        dist,
		Field:       field,
		Value:       value,
		Requirement: requirement,
	}
}

func checkScale(dist string, scale float64) error {
	if !(scale > 0) || math.IsInf(scale, 1) {
		return domainErr(dist, "scale", scale, "scale > 0")
	}
	return nil
}

func checkShape(dist string, shape float64) error {
	if !(shape > 0) || math.IsInf(shape, 1) {
		return domainErr(dist, "shape", shape, "shape > 0")
	}
	return nil
}

func checkFinite(dist, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domainErr(dist, field, v, field+" is finite")
	}
	return nil
}

func nameOf(d Distribution) string {
	switch d.(type) {
	case Gumbel, *Gumbel:
		return "gumbel"
	case Frechet, *Frechet:
		return "frechet"
	case Weibull, *Weibull:
		return "weibull"
	case GEV, *GEV:
		return "gev"
	}
	return fmt.Sprintf("%T", d)
}

// CDF validates d and x and evaluates the CDF
func CDF(d Distribution, x float64) (float64, error) {
	if err := checkSupport(d, x); err != nil {
		return 0, err
	}
	return d.CDF(x), nil
}

// PDF validates d and x and evaluates the density
func PDF(d Distribution, x float64) (float64, error) {
	if err := checkSupport(d, x); err != nil {
		return 0, err
	}
	return d.PDF(x), nil
}

// Quantile validates d and p and evaluates the quantile function
func Quantile(d Distribution, p float64) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if !(p >= 0 && p <= 1) {
		return 0, domainErr(nameOf(d), "p", p, "0 <= p <= 1")
	}
	return d.Quantile(p), nil
}

// Random validates d and draws one variate
func Random(d Distribution, seed Seed) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d.Random(seed), nil
}

func checkSupport(d Distribution, x float64) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if math.IsNaN(x) || !d.InSupport(x) {
		return domainErr(nameOf(d), "x", x, "x in support")
	}
	return nil
}

// negLog returns -log(p) with -log(1) as +0, so powers with a negative odd
// exponent at p = 1 give +Inf rather than -Inf
func negLog(p float64) float64 {
	v := -math.Log(p)
	if v == 0 {
		return 0
	}
	return v
}
