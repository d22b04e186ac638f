package aquifer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/worldgen/pkg/density"
	"github.com/voxelforge/worldgen/pkg/noise"
	"github.com/voxelforge/worldgen/pkg/worldgen"
)

func buildTestSampler(seed int64) *WorldSampler {
	cfg := noise.NewConfig(seed, false)
	barrier := cfg.Register("aquifer_barrier", -3, []float64{1})
	erosionSampler := cfg.Register("erosion", -9, []float64{1, 1, 0, 1, 1})
	continentsSampler := cfg.Register("continents", -9, []float64{1, 1, 2, 2, 2, 1, 1, 1, 1})
	depthSampler := cfg.Register("depth", -9, []float64{1, 1, 1, 0, 0, 0})
	floodSampler := cfg.Register("aquifer_fluid_level_floodedness", -7, []float64{1})
	spreadSampler := cfg.Register("aquifer_fluid_level_spread", -5, []float64{1})
	lavaSampler := cfg.Register("aquifer_lava", -1, []float64{1})

	continents := &density.NoiseFn{Sampler: continentsSampler, XZScale: 0.25, YScale: 0}
	erosion := &density.NoiseFn{Sampler: erosionSampler, XZScale: 0.25, YScale: 0}
	depth := &density.NoiseFn{Sampler: depthSampler, XZScale: 0.25, YScale: 0}
	flood := &density.NoiseFn{Sampler: floodSampler, XZScale: 1, YScale: 1}
	spread := &density.NoiseFn{Sampler: spreadSampler, XZScale: 1, YScale: 1}
	lava := &density.NoiseFn{Sampler: lavaSampler, XZScale: 1, YScale: 1}

	final := &density.Binary{A: continents, B: erosion, Op: density.BinaryAdd}

	refs := RouterRefs{
		FinalDensity:          final,
		FluidLevelFloodedness: flood,
		FluidLevelSpread:      spread,
		Erosion:               erosion,
		Depth:                 depth,
		Lava:                  lava,
	}

	fluid := FluidLevelSampler{SeaLevel: 63, SeaState: 1, DeepLevel: -54, DeepState: 2}
	return NewWorldSampler(fluid, cfg, barrier, refs)
}

func TestWorldSamplerDeterministic(t *testing.T) {
	s1 := buildTestSampler(0)
	s2 := buildTestSampler(0)

	st1, ok1 := s1.Apply(114, 0, 64, -0.01)
	st2, ok2 := s2.Apply(114, 0, 64, -0.01)
	require.Equal(t, ok1, ok2)
	require.Equal(t, st1, st2)
}

func TestSeaLevelSamplerAboveDensityIsAir(t *testing.T) {
	fluid := FluidLevelSampler{SeaLevel: 63, SeaState: 1, DeepLevel: -54, DeepState: 2}
	s := SeaLevelSampler{Fluid: fluid}
	_, ok := s.Apply(0, 70, 0, 5)
	require.False(t, ok)
}

func TestSeaLevelSamplerBelowDensityReturnsDefaultFluid(t *testing.T) {
	fluid := FluidLevelSampler{SeaLevel: 63, SeaState: 1, DeepLevel: -54, DeepState: 2}
	s := SeaLevelSampler{Fluid: fluid}
	state, ok := s.Apply(0, 40, 0, -0.5)
	require.True(t, ok)
	require.Equal(t, worldgen.BlockState(1), state)
}

func TestCalcDensityFluidMismatchIsFlatTwo(t *testing.T) {
	water := FluidLevel{Y: 60, Fluid: Water}
	lava := FluidLevel{Y: 60, Fluid: Lava}
	require.Equal(t, 2.0, calcDensity(50, water, lava, 0.8))
	require.Equal(t, 2.0, calcDensity(50, water, lava, -0.8))
}

func TestCalcDensityEqualLevelsIsZero(t *testing.T) {
	water := FluidLevel{Y: 60, Fluid: Water}
	require.Equal(t, 0.0, calcDensity(50, water, water, 0.7))
}

func TestCalcDensityBarrierGatedWithinRange(t *testing.T) {
	a := FluidLevel{Y: 10, Fluid: Water}
	b := FluidLevel{Y: 0, Fluid: Water}
	require.InDelta(t, 3.0, calcDensity(8, a, b, 0.5), 1e-9)
	require.InDelta(t, 1.0, calcDensity(8, a, b, -0.5), 1e-9)
}

func TestCalcDensityBarrierIgnoredOutsideRange(t *testing.T) {
	a := FluidLevel{Y: 100, Fluid: Water}
	b := FluidLevel{Y: 0, Fluid: Water}
	require.InDelta(t, 66.0, calcDensity(50, a, b, 5), 1e-9)
	require.InDelta(t, 66.0, calcDensity(50, a, b, -5), 1e-9)
}

func TestFloorDivRoundsTowardNegativeInfinity(t *testing.T) {
	require.Equal(t, -1, floorDiv(-1, 16))
	require.Equal(t, -1, floorDiv(-16, 16))
	require.Equal(t, -2, floorDiv(-17, 16))
	require.Equal(t, 0, floorDiv(0, 16))
	require.Equal(t, 1, floorDiv(16, 16))
}
