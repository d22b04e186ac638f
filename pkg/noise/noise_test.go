package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerlinDeterministic(t *testing.T) {
	a := NewPerlinNoiseSampler(NewLegacyRNG(42))
	b := NewPerlinNoiseSampler(NewLegacyRNG(42))
	for i := 0; i < 50; i++ {
		x := float64(i) * 0.37
		require.Equal(t, a.Sample(x, x*0.5, x*0.25), b.Sample(x, x*0.5, x*0.25))
	}
}

func TestPerlinNoFadeQuantisesY(t *testing.T) {
	p := NewPerlinNoiseSampler(NewLegacyRNG(7))
	v1 := p.SampleNoFade(1.3, 4.01, 2.2, 2, 10)
	v2 := p.SampleNoFade(1.3, 4.99, 2.2, 2, 10)
	require.Equal(t, v1, v2, "y values quantised to the same multiple of yScale should match")
}

func TestOctaveSkipIsExactly262(t *testing.T) {
	r1 := NewLegacyRNG(99)
	NewLegacyOctaveSampler(r1, -3, []float64{0})
	afterSkipped := r1.next(32)

	r2 := NewLegacyRNG(99)
	r2.Skip(legacyOctaveSkip)
	afterManual := r2.next(32)

	require.Equal(t, afterManual, afterSkipped)
}

func TestDoublePerlinRangeMonteCarlo(t *testing.T) {
	cfg := NewConfig(0, false)
	sampler := cfg.Register("test", -7, []float64{1, 1, 1, 1})
	max := sampler.MaxValue()

	rng := NewXoroshiro128(123)
	for i := 0; i < 200000; i++ {
		x := rng.NextDouble()*20 - 10
		y := rng.NextDouble()*20 - 10
		z := rng.NextDouble()*20 - 10
		v := sampler.Sample(x, y, z)
		if math.IsNaN(v) {
			t.Fatalf("sample produced NaN at (%f,%f,%f)", x, y, z)
		}
		if v < -max-1e-6 || v > max+1e-6 {
			t.Fatalf("sample %f out of bound [-%f,%f] at (%f,%f,%f)", v, max, max, x, y, z)
		}
	}
}

func TestDoublePerlinModernDeterministic(t *testing.T) {
	c1 := NewConfig(55, false)
	c2 := NewConfig(55, false)
	s1 := c1.Register("continentalness", -9, []float64{1, 1, 2, 2, 2, 1, 1, 1, 1})
	s2 := c2.Register("continentalness", -9, []float64{1, 1, 2, 2, 2, 1, 1, 1, 1})
	require.Equal(t, s1.Sample(10, 20, 30), s2.Sample(10, 20, 30))
}

func TestSimplex2DRange(t *testing.T) {
	s := NewSimplexNoiseSampler(NewLegacyRNG(3))
	for i := 0; i < 10000; i++ {
		x := float64(i)*0.021 - 100
		y := float64(i)*0.013 - 60
		v := s.Sample2D(x, y)
		if v < -1.2 || v > 1.2 {
			t.Fatalf("Sample2D(%f,%f) = %f out of expected range", x, y, v)
		}
	}
}

func TestSimplex3DRange(t *testing.T) {
	s := NewSimplexNoiseSampler(NewLegacyRNG(4))
	for i := 0; i < 10000; i++ {
		x := float64(i)*0.017 - 90
		y := float64(i)*0.011 - 40
		z := float64(i)*0.009 - 30
		v := s.Sample3D(x, y, z)
		if v < -1.2 || v > 1.2 {
			t.Fatalf("Sample3D(%f,%f,%f) = %f out of expected range", x, y, z, v)
		}
	}
}

func TestLegacyRNGDeterministic(t *testing.T) {
	a := NewLegacyRNG(100)
	b := NewLegacyRNG(100)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.NextLong(), b.NextLong())
	}
}

func TestSplitStringDerivesIndependentStreams(t *testing.T) {
	root := NewLegacyRNG(1).ForkPositional()
	a := root.FromHashOf("erosion")
	b := root.FromHashOf("continents")
	require.NotEqual(t, a.NextLong(), b.NextLong())
}

func TestSplitPosDeterministic(t *testing.T) {
	root := NewXoroshiro128(77).ForkPositional()
	a := root.AtPosition(12, 64, -8)
	b := root.AtPosition(12, 64, -8)
	require.Equal(t, a.NextLong(), b.NextLong())
}
