package dist

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/distuv"
)

func testDistributions() []Distribution {
	return []Distribution{
		Gumbel{Loc: 0.5, Scale: 2.0},
		Gumbel{Loc: -10, Scale: 0.01},
		Frechet{Loc: 1.0, Scale: 0.1, Shape: 1.0},
		Frechet{Loc: -2, Scale: 3, Shape: 4.5},
		Weibull{Loc: 2.0, Scale: 2.0, Shape: 2.0},
		Weibull{Loc: 0, Scale: 0.5, Shape: 0.7},
		GEV{Loc: 2.0, Scale: 2.0, Shape: 2.0},
		GEV{Loc: 2.0, Scale: 2.0, Shape: 0.0},
		GEV{Loc: 0, Scale: 1, Shape: -0.4},
		GEV{Loc: 1, Scale: 0.3, Shape: 0.25},
	}
}

func probabilities() []float64 {
	ps := make([]float64, 0, 99)
	for i := 1; i < 100; i++ {
		ps = append(ps, float64(i)/100)
	}
	return ps
}

func TestQuantileRoundTrip(t *testing.T) {
	for _, d := range testDistributions() {
		t.Run(fmt.Sprintf("%#v", d), func(t *testing.T) {
			for _, p := range probabilities() {
				x := d.Quantile(p)
				if !d.InSupport(x) {
					t.Errorf("quantile(%v) = %v outside the support", p, x)
					continue
				}
				if got := d.CDF(x); !scalar.EqualWithinAbsOrRel(got, p, 1e-12, 1e-10) {
					t.Errorf("cdf(quantile(%v)) = %v", p, got)
				}
			}
		})
	}
}

func TestQuantileMonotone(t *testing.T) {
	for _, d := range testDistributions() {
		t.Run(fmt.Sprintf("%#v", d), func(t *testing.T) {
			prev := d.Quantile(0)
			for _, p := range append(probabilities(), 1) {
				cur := d.Quantile(p)
				assert.GreaterOrEqual(t, cur, prev, "quantile at %v", p)
				prev = cur
			}
		})
	}
}

func TestCDFMonotoneAndDensityPositive(t *testing.T) {
	for _, d := range testDistributions() {
		t.Run(fmt.Sprintf("%#v", d), func(t *testing.T) {
			lo, hi := d.Quantile(0.001), d.Quantile(0.999)
			xs := make([]float64, 200)
			floats.Span(xs, lo, hi)

			prev := 0.0
			for _, x := range xs {
				if !d.InSupport(x) {
					continue
				}
				c := d.CDF(x)
				assert.GreaterOrEqual(t, c, prev, "cdf at %v", x)
				assert.LessOrEqual(t, c, 1.0, "cdf at %v", x)
				assert.GreaterOrEqual(t, d.PDF(x), 0.0, "pdf at %v", x)
				prev = c
			}
		})
	}
}

func TestQuantileBoundaries(t *testing.T) {
	cases := []struct {
		d        Distribution
		at0, at1 float64
	}{
		{Gumbel{Loc: 0.5, Scale: 2}, math.Inf(-1), math.Inf(1)},
		{Frechet{Loc: 1, Scale: 0.1, Shape: 1}, 1, math.Inf(1)},
		{Frechet{Loc: 1, Scale: 0.1, Shape: 3}, 1, math.Inf(1)},
		{Weibull{Loc: 2, Scale: 2, Shape: 2}, math.Inf(-1), 2},
		{GEV{Loc: 2, Scale: 2, Shape: 0}, math.Inf(-1), math.Inf(1)},
		// lower endpoint loc - scale/shape
		{GEV{Loc: 2, Scale: 2, Shape: 2}, 1, math.Inf(1)},
		// upper endpoint loc - scale/shape
		{GEV{Loc: 0, Scale: 1, Shape: -0.5}, math.Inf(-1), 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.at0, c.d.Quantile(0), "%#v quantile(0)", c.d)
		assert.Equal(t, c.at1, c.d.Quantile(1), "%#v quantile(1)", c.d)
	}
}

func TestGumbelMatchesGonum(t *testing.T) {
	g := Gumbel{Loc: 0.5, Scale: 2}
	ref := distuv.GumbelRight{Mu: 0.5, Beta: 2}

	for _, x := range []float64{-5, -1, 0, 0.5, 2, 8} {
		assert.True(t, scalar.EqualWithinAbsOrRel(ref.CDF(x), g.CDF(x), 1e-15, 1e-13), "cdf at %v", x)
		assert.True(t, scalar.EqualWithinAbsOrRel(ref.Prob(x), g.PDF(x), 1e-15, 1e-13), "pdf at %v", x)
	}
	for _, p := range []float64{0.05, 0.5, 0.7, 0.95} {
		assert.True(t, scalar.EqualWithinAbsOrRel(ref.Quantile(p), g.Quantile(p), 1e-15, 1e-13), "quantile at %v", p)
	}
}
