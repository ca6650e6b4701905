package dist

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Params holds the parameters of any of the distributions. Shape is ignored
// by Gumbel.
type Params struct {
	Loc   float64 `json:"loc"`
	Scale float64 `json:"scale"`
	Shape float64 `json:"shape"`
}

type constructor func(Params) (Distribution, error)

var registry = map[string]constructor{
	"gumbel": func(p Params) (Distribution, error) {
		return NewGumbel(p.Loc, p.Scale)
	},
	"frechet": func(p Params) (Distribution, error) {
		return NewFrechet(p.Loc, p.Scale, p.Shape)
	},
	"weibull": func(p Params) (Distribution, error) {
		return NewWeibull(p.Loc, p.Scale, p.Shape)
	},
	"gev": func(p Params) (Distribution, error) {
		return NewGEV(p.Loc, p.Scale, p.Shape)
	},
}

// Names returns the registered distribution names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs the named distribution from p
func New(name string, p Params) (Distribution, error) {
	c, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDistribution, name)
	}
	return c(p)
}

// Op is one of the operations of Distribution
type Op string

const (
	OpCDF      Op = "cdf"
	OpPDF      Op = "pdf"
	OpQuantile Op = "quantile"
	OpRandom   Op = "random"
)

// ErrUnknownOp is returned by ParseOp for anything but cdf, pdf, quantile and random
var ErrUnknownOp = errors.New("unknown operation")

// ParseOp parses the name of an operation
func ParseOp(s string) (Op, error) {
	switch op := Op(strings.ToLower(s)); op {
	case OpCDF, OpPDF, OpQuantile, OpRandom:
		return op, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownOp, s)
}

// Evaluate runs the checked version of op on d. x is the argument of cdf,
// pdf and quantile; random ignores it and uses seed.
func Evaluate(d Distribution, op Op, x float64, seed Seed) (float64, error) {
	switch op {
	case OpCDF:
		return CDF(d, x)
	case OpPDF:
		return PDF(d, x)
	case OpQuantile:
		return Quantile(d, x)
	case OpRandom:
		return Random(d, seed)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownOp, op)
}
