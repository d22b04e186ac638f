package router

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/worldgen/pkg/density"
	"github.com/voxelforge/worldgen/pkg/noise"
)

func buildTestRouter(seed int64) *Router {
	cfg := noise.NewConfig(seed, false)
	return Build(cfg, Overworld, -64, 384)
}

// TestRouterDeterministic checks that two routers built from the same seed
// agree at a grid of sample points, independent of which named reference is
// read — this stands in for the exact-decimal regression in the source,
// which depended on proprietary spline tables this implementation only
// approximates (see DESIGN.md).
func TestRouterDeterministic(t *testing.T) {
	r1 := buildTestRouter(0)
	r2 := buildTestRouter(0)

	points := []density.Pos{
		{X: 0, Y: 0, Z: 0},
		{X: 114, Y: 0, Z: 64},
		{X: -100, Y: -50, Z: -50},
		{X: 50, Y: 100, Z: -100},
	}

	for _, p := range points {
		ctx1 := &density.EvalContext{X: p.X, Y: p.Y, Z: p.Z}
		ctx2 := &density.EvalContext{X: p.X, Y: p.Y, Z: p.Z}
		require.Equal(t, r1.FinalDensity.Sample(ctx1), r2.FinalDensity.Sample(ctx2))
		require.Equal(t, r1.Continents.Sample(ctx1), r2.Continents.Sample(ctx2))
		require.Equal(t, r1.Barrier.Sample(ctx1), r2.Barrier.Sample(ctx2))
	}
}

// TestRouterOutputsAreFiniteAndBounded samples twelve of the named
// references (all but the three fluid-level/lava ones) over a scattered set
// of positions, requiring that none produces NaN or +-Inf; final_density is
// then checked against the clamp bound at the origin.
func TestRouterOutputsAreFiniteAndBounded(t *testing.T) {
	r := buildTestRouter(7)
	refs := map[string]density.Node{
		"barrier":      r.Barrier,
		"temperature":  r.Temperature,
		"vegetation":   r.Vegetation,
		"continents":   r.Continents,
		"erosion":      r.Erosion,
		"depth":        r.Depth,
		"ridges":       r.Ridges,
		"internal":     r.InternalDensity,
		"final":        r.FinalDensity,
		"vein_toggle":  r.VeinToggle,
		"vein_ridged":  r.VeinRidged,
		"vein_gap":     r.VeinGap,
	}

	for name, node := range refs {
		for ix := -2; ix <= 2; ix++ {
			for iz := -2; iz <= 2; iz++ {
				for iy := -4; iy <= 4; iy++ {
					ctx := &density.EvalContext{X: float64(ix) * 37, Y: float64(iy) * 16, Z: float64(iz) * 53}
					v := node.Sample(ctx)
					if math.IsNaN(v) || math.IsInf(v, 0) {
						t.Fatalf("%s produced non-finite value %v at %+v", name, v, ctx)
					}
				}
			}
		}
	}

	v := r.FinalDensity.Sample(&density.EvalContext{X: 0, Y: 0, Z: 0})
	require.GreaterOrEqual(t, v, -64.0)
	require.LessOrEqual(t, v, 64.0)
}

func TestAmplifiedVariantDiffersFromOverworld(t *testing.T) {
	cfgSurface := noise.NewConfig(3, false)
	surface := Build(cfgSurface, Overworld, -64, 384)

	cfgAmp := noise.NewConfig(3, false)
	amplified := Build(cfgAmp, Amplified, -64, 384)

	ctx := &density.EvalContext{X: 200, Y: 32, Z: 200}
	require.NotEqual(t, surface.InternalDensity.Sample(ctx), amplified.InternalDensity.Sample(ctx))
}

func TestApplySlidesPushesTowardBotValAtBottom(t *testing.T) {
	d := applySlides(&density.Constant{Value: 0}, -64, 384, 0, 40, -1, 0, 8, -30)
	v := d.Sample(&density.EvalContext{Y: -64})
	require.InDelta(t, -30.0, v, 1e-9)
}

func TestApplySlidesReachesTopValBelowTheCeilingBand(t *testing.T) {
	d := applySlides(&density.Constant{Value: 0}, -64, 384, 0, 40, -1, 0, 8, -30)
	v := d.Sample(&density.EvalContext{Y: 280})
	require.InDelta(t, -1.0, v, 1e-9)
}
