package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"frechet", "gev", "gumbel", "weibull"}, Names())
}

func TestNew(t *testing.T) {
	d, err := New("Gumbel", Params{Loc: 0.5, Scale: 2, Shape: 9})
	require.NoError(t, err)
	assert.Equal(t, Gumbel{Loc: 0.5, Scale: 2}, d)

	d, err = New("gev", Params{Loc: 2, Scale: 2, Shape: -1})
	require.NoError(t, err)
	assert.Equal(t, GEV{Loc: 2, Scale: 2, Shape: -1}, d)

	_, err = New("weibull", Params{Loc: 0, Scale: 1, Shape: 0})
	assert.ErrorIs(t, err, ErrDomain)

	_, err = New("pareto", Params{Scale: 1})
	assert.ErrorIs(t, err, ErrUnknownDistribution)
}

func TestParseOp(t *testing.T) {
	for _, s := range []string{"cdf", "PDF", "Quantile", "random"} {
		_, err := ParseOp(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseOp("mean")
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestEvaluate(t *testing.T) {
	f := Frechet{Loc: 1, Scale: 0.1, Shape: 1}

	v, err := Evaluate(f, OpCDF, 3, Unseeded())
	require.NoError(t, err)
	assert.Equal(t, f.CDF(3), v)

	v, err = Evaluate(f, OpPDF, 3, Unseeded())
	require.NoError(t, err)
	assert.Equal(t, f.PDF(3), v)

	v, err = Evaluate(f, OpQuantile, 0.7, Unseeded())
	require.NoError(t, err)
	assert.Equal(t, f.Quantile(0.7), v)

	v, err = Evaluate(f, OpRandom, 0, WithSeed(4))
	require.NoError(t, err)
	assert.Equal(t, f.Random(WithSeed(4)), v)

	_, err = Evaluate(f, OpQuantile, 1.5, Unseeded())
	assert.ErrorIs(t, err, ErrDomain)

	_, err = Evaluate(f, Op("mode"), 0, Unseeded())
	assert.ErrorIs(t, err, ErrUnknownOp)
}
