// Package router assembles the named density-function graph ("NoiseRouter")
// that drives terrain shape: the fifteen references every chunk generator
// samples, built once per seed from the pkg/noise samplers and pkg/density
// node kinds.
package router

import (
	"github.com/voxelforge/worldgen/pkg/density"
	"github.com/voxelforge/worldgen/pkg/noise"
)

// Router holds the fifteen named density references a chunk generator reads
// from. It is immutable once built and safe to share across concurrent
// chunk generators; any per-chunk state lives in the caller's
// density.WrapperResolver, not here.
type Router struct {
	Barrier                density.Node
	FluidLevelFloodedness  density.Node
	FluidLevelSpread       density.Node
	Lava                   density.Node
	Temperature            density.Node
	Vegetation             density.Node
	Continents             density.Node
	Erosion                density.Node
	Depth                  density.Node
	Ridges                 density.Node
	InternalDensity        density.Node
	FinalDensity           density.Node
	VeinToggle             density.Node
	VeinRidged             density.Node
	VeinGap                density.Node
}

// Variant selects which of the three stock router assemblies to build.
// All three use the same sub-graphs and the same apply_slides parameters;
// they differ only in the two factors returned by variantScale.
type Variant int

const (
	// Overworld is the default surface router.
	Overworld Variant = iota
	// LargeBiomes stretches the continentalness/erosion sampling by the
	// same factor the source uses for large-biome worlds.
	LargeBiomes
	// Amplified exaggerates internal_density so surface relief is taller
	// and cliffs steeper.
	Amplified
)

// applySlides implements the apply_slides(d, y_min, y_max, ...) helper: it
// pushes d toward bot_val near the bottom of the shape and toward top_val
// near the top, leaving d unchanged in the middle.
func applySlides(d density.Node, yMin, yMax int, topDMin, topDMax int, topVal float64, botDMin, botDMax int, botVal float64) density.Node {
	bot := &density.YClamped{
		Y0: float64(yMin + botDMin), Y1: float64(yMin + botDMax),
		V0: 0, V1: 1,
	}
	top := &density.YClamped{
		Y0: float64(yMin + yMax - topDMin), Y1: float64(yMin + yMax - topDMax),
		V0: 1, V1: 0,
	}
	topBlend := lerpNode(top, &density.Constant{Value: topVal}, d)
	return lerpNode(bot, &density.Constant{Value: botVal}, topBlend)
}

// lerpNode builds lerp(t, a, b) = a + t*(b-a) as a density graph: a + t*b - t*a.
func lerpNode(t, a, b density.Node) density.Node {
	tb := &density.Binary{A: t, B: b, Op: density.BinaryMul}
	ta := &density.Linear{Input: &density.Binary{A: t, B: a, Op: density.BinaryMul}, Op: density.LinearMul, K: -1}
	sum := &density.Binary{A: a, B: tb, Op: density.BinaryAdd}
	return &density.Binary{A: sum, B: ta, Op: density.BinaryAdd}
}

// variantScale returns the horizontal stretch factor applied to
// continentalness/erosion sampling for large-biome worlds, and the
// internal-density amplification factor for amplified worlds.
func variantScale(v Variant) (xzStretch, densityAmplify float64) {
	switch v {
	case LargeBiomes:
		return 4, 1
	case Amplified:
		return 1, 2.5
	default:
		return 1, 1
	}
}

// Build assembles a Router for seed using the named noise samplers
// registered into cfg. minY/height describe the world's vertical extent so
// apply_slides can place its top/bottom ramps correctly.
func Build(cfg *noise.Config, variant Variant, minY, height int) *Router {
	xzStretch, ampFactor := variantScale(variant)

	continentsNoise := cfg.Register("continents", -9, []float64{1, 1, 2, 2, 2, 1, 1, 1, 1})
	erosionNoise := cfg.Register("erosion", -9, []float64{1, 1, 0, 1, 1})
	ridgesNoise := cfg.Register("ridges", -7, []float64{1, 2, 1})
	temperatureNoise := cfg.Register("temperature", -10, []float64{1.5, 0, 1, 0, 0, 0})
	vegetationNoise := cfg.Register("vegetation", -8, []float64{1, 1, 0, 0, 0, 0})
	depthNoise := cfg.Register("depth", -9, []float64{1, 1, 1, 0, 0, 0})
	barrierNoise := cfg.Register("aquifer_barrier", -3, []float64{1})
	floodNoise := cfg.Register("aquifer_fluid_level_floodedness", -7, []float64{1})
	spreadNoise := cfg.Register("aquifer_fluid_level_spread", -5, []float64{1})
	lavaNoise := cfg.Register("aquifer_lava", -1, []float64{1})
	veinToggleNoise := cfg.Register("ore_vein_toggle", -8, []float64{1})
	veinRidgedNoise := cfg.Register("ore_vein_ridged", -7, []float64{1})
	veinGapNoise := cfg.Register("ore_vein_gap", -5, []float64{1})
	spaghetti3D1Noise := cfg.Register("spaghetti_3d_1", -7, []float64{1})
	spaghetti3D2Noise := cfg.Register("spaghetti_3d_2", -7, []float64{1})

	xzScale := 0.25 / xzStretch

	continents := &density.Wrapper{Kind: density.CacheOnce2D, Input: &density.NoiseFn{
		Sampler: continentsNoise, XZScale: xzScale, YScale: 0,
	}}
	erosion := &density.Wrapper{Kind: density.CacheOnce2D, Input: &density.NoiseFn{
		Sampler: erosionNoise, XZScale: xzScale, YScale: 0,
	}}
	ridges := &density.NoiseFn{Sampler: ridgesNoise, XZScale: 0.25, YScale: 0}
	temperature := &density.Wrapper{Kind: density.CacheOnce2D, Input: &density.NoiseFn{
		Sampler: temperatureNoise, XZScale: 0.025, YScale: 0,
	}}
	vegetation := &density.Wrapper{Kind: density.CacheOnce2D, Input: &density.NoiseFn{
		Sampler: vegetationNoise, XZScale: 0.025, YScale: 0,
	}}
	depth := &density.Wrapper{Kind: density.CacheOnce2D, Input: &density.NoiseFn{
		Sampler: depthNoise, XZScale: 0.25, YScale: 0,
	}}

	internal := buildInternalDensity(continents, erosion, ridges, depth, ampFactor, minY, height, spaghetti3D1Noise, spaghetti3D2Noise)
	final := applySlides(internal, minY, height, 40, 0, -1, 0, 8, -30)
	final = &density.Clamp{Input: final, Min: -64, Max: 64}

	return &Router{
		Barrier:               &density.NoiseFn{Sampler: barrierNoise, XZScale: 1, YScale: 1},
		FluidLevelFloodedness: &density.NoiseFn{Sampler: floodNoise, XZScale: 1, YScale: 1},
		FluidLevelSpread:      &density.NoiseFn{Sampler: spreadNoise, XZScale: 1, YScale: 1},
		Lava:                  &density.NoiseFn{Sampler: lavaNoise, XZScale: 1, YScale: 1},
		Temperature:           temperature,
		Vegetation:            vegetation,
		Continents:            continents,
		Erosion:               erosion,
		Depth:                 depth,
		Ridges:                ridges,
		InternalDensity:       internal,
		FinalDensity:          final,
		VeinToggle:            &density.NoiseFn{Sampler: veinToggleNoise, XZScale: 1, YScale: 1},
		VeinRidged:            &density.NoiseFn{Sampler: veinRidgedNoise, XZScale: 1, YScale: 1},
		VeinGap:               &density.NoiseFn{Sampler: veinGapNoise, XZScale: 1, YScale: 1},
	}
}

// buildInternalDensity combines continentalness/erosion/ridges through a
// spline-shaped offset-plus-factor graph and overlays the cave sub-graph,
// then amplifies relief by ampFactor for the Amplified variant.
func buildInternalDensity(continents, erosion, ridges, depth density.Node, ampFactor float64, minY, height int, spaghetti1, spaghetti2 *noise.DoublePerlinNoiseSampler) density.Node {
	offset := &density.Spline{
		Input:  continents,
		Points: SplinePointsFrom(continentOffsetPoints()),
	}
	factor := &density.Spline{
		Input: erosion,
		Points: SplinePointsFrom(erosionFactorPoints()),
	}

	yGradient := &density.YClamped{Y0: float64(minY), Y1: float64(minY + height), V0: 1.5, V1: -1.5}
	base := &density.Binary{A: offset, B: yGradient, Op: density.BinaryAdd}
	shaped := &density.Binary{A: base, B: factor, Op: density.BinaryMul}

	cheese := buildCaves(continents, erosion, ridges, depth, spaghetti1, spaghetti2)
	combined := &density.Binary{A: shaped, B: cheese, Op: density.BinaryAdd}

	if ampFactor != 1 {
		return &density.Linear{Input: combined, Op: density.LinearMul, K: ampFactor}
	}
	return combined
}

// SplinePointsFrom converts a flat (location, value, derivative) table into
// density.SplinePoint values.
func SplinePointsFrom(rows [][3]float64) []density.SplinePoint {
	pts := make([]density.SplinePoint, len(rows))
	for i, r := range rows {
		pts[i] = density.SplinePoint{Location: r[0], Value: r[1], Derivative: r[2]}
	}
	return pts
}

// continentOffsetPoints and erosionFactorPoints are representative,
// monotonic control-point tables standing in for the proprietary spline
// data baked into the original game; see the design notes for why these are
// approximations rather than a bit-exact transcription.
func continentOffsetPoints() [][3]float64 {
	return [][3]float64{
		{-1.2, 0.8, 0},
		{-1.05, 0.5, 0.3},
		{-0.455, -0.3, 0.6},
		{-0.19, -0.1, 0.4},
		{-0.11, 0.05, 0.3},
		{0.03, 0.2, 0.2},
		{0.25, 0.6, 0.2},
		{1.0, 1.0, 0},
	}
}

func erosionFactorPoints() [][3]float64 {
	return [][3]float64{
		{-1.0, 1.0, 0},
		{-0.78, 0.85, 0.1},
		{-0.4875, 0.55, 0.2},
		{-0.15, 0.3, 0.2},
		{0.0, 0.0, 0.1},
		{0.45, -0.3, 0.1},
		{0.55, -0.6, 0},
		{1.0, -1.0, 0},
	}
}
