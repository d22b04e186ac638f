package orevein

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/worldgen/pkg/density"
	"github.com/voxelforge/worldgen/pkg/noise"
	"github.com/voxelforge/worldgen/pkg/worldgen"
)

func buildTestSampler(seed int64) *Sampler {
	cfg := noise.NewConfig(seed, false)
	toggleSampler := cfg.Register("ore_vein_toggle", -8, []float64{1})
	ridgedSampler := cfg.Register("ore_vein_ridged", -7, []float64{1})
	gapSampler := cfg.Register("ore_vein_gap", -5, []float64{1})

	refs := RouterRefs{
		VeinToggle: &density.NoiseFn{Sampler: toggleSampler, XZScale: 1, YScale: 1},
		VeinRidged: &density.NoiseFn{Sampler: ridgedSampler, XZScale: 1, YScale: 1},
		VeinGap:    &density.NoiseFn{Sampler: gapSampler, XZScale: 1, YScale: 1},
	}

	return &Sampler{
		Config: cfg,
		Router: refs,
		Copper: OreType{Ore: 10, RawOre: 11, Stone: 1, MinY: 0, MaxY: 96},
		Iron:   OreType{Ore: 20, RawOre: 21, Stone: 1, MinY: -24, MaxY: 56},
	}
}

func TestOreVeinSamplerDeterministic(t *testing.T) {
	s1 := buildTestSampler(3)
	s2 := buildTestSampler(3)

	for _, p := range [][3]int{{10, 20, 30}, {-5, 0, 5}, {100, 40, -100}} {
		st1, ok1 := s1.Sample(p[0], p[1], p[2])
		st2, ok2 := s2.Sample(p[0], p[1], p[2])
		require.Equal(t, ok1, ok2)
		require.Equal(t, st1, st2)
	}
}

func TestOreVeinSamplerOutsideYRangeNeverProduces(t *testing.T) {
	s := buildTestSampler(9)
	_, ok := s.Sample(0, 200, 0)
	require.False(t, ok)
	_, ok = s.Sample(0, -200, 0)
	require.False(t, ok)
}

func TestClampedMapClampsAtBounds(t *testing.T) {
	require.Equal(t, -0.2, clampedMap(-5, 0, 20, -0.2, 0))
	require.Equal(t, 0.0, clampedMap(50, 0, 20, -0.2, 0))
	require.InDelta(t, -0.1, clampedMap(10, 0, 20, -0.2, 0), 1e-9)
}

func TestOreVeinNeverReturnsZeroStateWhenItProducesOre(t *testing.T) {
	s := buildTestSampler(1)
	state, ok := s.Sample(48, 30, 48)
	if ok {
		require.NotEqual(t, worldgen.Air, state)
	}
}
