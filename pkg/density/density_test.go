package density

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/worldgen/pkg/noise"
)

// passthroughResolver exercises the WrapperResolver path without caching,
// so the cache-equivalence test can compare Sample with this resolver
// installed against Sample with no resolver.
type passthroughResolver struct{}

func (passthroughResolver) Resolve(w *Wrapper, ctx *EvalContext) float64 {
	return w.Input.Sample(ctx)
}

func (passthroughResolver) FillResolve(w *Wrapper, ctx *EvalContext, arr []float64, applier Applier) {
	w.Input.Fill(ctx, arr, applier)
}

func buildSampleGraph() Node {
	cfg := noise.NewConfig(42, false)
	continents := cfg.Register("continents", -9, []float64{1, 1, 2, 2, 2, 1, 1, 1, 1})
	erosion := cfg.Register("erosion", -9, []float64{1, 1, 0, 1, 1})

	a := &NoiseFn{Sampler: continents, XZScale: 0.25, YScale: 0.25}
	b := &NoiseFn{Sampler: erosion, XZScale: 0.25, YScale: 0.25}
	binary := &Binary{A: a, B: b, Op: BinaryAdd}
	clamped := &Clamp{Input: binary, Min: -1, Max: 1}
	wrapped := &Wrapper{Input: clamped, Kind: CacheCell}
	return &Linear{Input: wrapped, Op: LinearMul, K: 2}
}

// TestWrapperCacheEquivalence checks that sampling through a Wrapper with a
// trivial (non-caching) resolver produces the same results as sampling with
// no resolver at all: cache state must only change latency, never the
// result.
func TestWrapperCacheEquivalence(t *testing.T) {
	graph := buildSampleGraph()

	for ix := 0; ix < 8; ix++ {
		for iy := 0; iy < 8; iy++ {
			for iz := 0; iz < 8; iz++ {
				x := float64(ix) * 3.7
				y := float64(iy) * 1.3
				z := float64(iz) * 3.7

				plain := graph.Sample(&EvalContext{X: x, Y: y, Z: z})
				cached := graph.Sample(&EvalContext{X: x, Y: y, Z: z, Resolver: passthroughResolver{}})

				require.InDelta(t, plain, cached, 1e-9)
			}
		}
	}
}

func TestSplineHermiteMatchesEndpointsAtControlPoints(t *testing.T) {
	input := &Constant{Value: 5}
	sp := &Spline{
		Input: input,
		Points: []SplinePoint{
			{Location: 0, Value: 10, Derivative: 0},
			{Location: 5, Value: -3, Derivative: 0},
			{Location: 10, Value: 4, Derivative: 0},
		},
	}
	require.InDelta(t, -3.0, sp.Sample(&EvalContext{}), 1e-9)
}

func TestSplineExtrapolatesLinearlyOutsideRange(t *testing.T) {
	sp := &Spline{
		Input: &Constant{Value: -5},
		Points: []SplinePoint{
			{Location: 0, Value: 1, Derivative: 2},
			{Location: 1, Value: 3, Derivative: 2},
		},
	}
	got := sp.Sample(&EvalContext{})
	want := 1 + 2*(-5-0)
	require.InDelta(t, want, got, 1e-9)
}

func TestUnarySqueezeFormula(t *testing.T) {
	u := &Unary{Input: &Constant{Value: 0.4}, Op: UnarySqueeze}
	got := u.Sample(&EvalContext{})
	want := 0.4/2 - 0.4*0.4*0.4/24
	require.InDelta(t, want, got, 1e-12)
}

func TestUnaryHalfNegQuartNeg(t *testing.T) {
	half := &Unary{Input: &Constant{Value: -4}, Op: UnaryHalfNeg}
	quart := &Unary{Input: &Constant{Value: -4}, Op: UnaryQuartNeg}
	require.Equal(t, -2.0, half.Sample(&EvalContext{}))
	require.Equal(t, -1.0, quart.Sample(&EvalContext{}))

	halfPos := &Unary{Input: &Constant{Value: 4}, Op: UnaryHalfNeg}
	require.Equal(t, 4.0, halfPos.Sample(&EvalContext{}))
}

func TestYClampedRamp(t *testing.T) {
	yc := &YClamped{Y0: 0, Y1: 10, V0: -1, V1: 1}
	require.Equal(t, -1.0, yc.Sample(&EvalContext{Y: -5}))
	require.Equal(t, 1.0, yc.Sample(&EvalContext{Y: 20}))
	require.InDelta(t, 0.0, yc.Sample(&EvalContext{Y: 5}), 1e-9)
}

func TestRangeGateSelectsBranch(t *testing.T) {
	r := &Range{
		Input: &Constant{Value: 5},
		Min:   0, Max: 10,
		In:  &Constant{Value: 1},
		Out: &Constant{Value: -1},
	}
	require.Equal(t, 1.0, r.Sample(&EvalContext{}))

	r.Input = &Constant{Value: 20}
	require.Equal(t, -1.0, r.Sample(&EvalContext{}))
}

func TestEndIslandDensityDeterministicAndFinite(t *testing.T) {
	s := noise.NewSimplexNoiseSampler(noise.NewLegacyRNG(0))
	e := &End{Simplex: s}
	v1 := e.Sample(&EvalContext{X: 512, Y: 64, Z: -256})
	v2 := e.Sample(&EvalContext{X: 512, Y: 64, Z: -256})
	require.Equal(t, v1, v2)
	require.False(t, math.IsNaN(v1))
	require.False(t, math.IsInf(v1, 0))
}

func TestBlendAlphaOffsetDensityAreNoOps(t *testing.T) {
	var alpha BlendAlpha
	var offset BlendOffset
	require.Equal(t, 1.0, alpha.Sample(&EvalContext{}))
	require.Equal(t, 0.0, offset.Sample(&EvalContext{}))

	bd := &BlendDensity{Input: &Constant{Value: 42}}
	require.Equal(t, 42.0, bd.Sample(&EvalContext{}))
}
