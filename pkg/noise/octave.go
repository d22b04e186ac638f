package noise

import "math"

// maintainPrecision keeps inputs to the per-octave Perlin sampler within a
// range where float64 Perlin stays numerically stable across very large
// coordinates.
func maintainPrecision(v float64) float64 {
	const wrap = 3.3554432e7
	return v - math.Floor(v/wrap+0.5)*wrap
}

// OctavePerlinNoiseSampler sums several octaves of PerlinNoiseSampler with
// per-octave amplitude/persistence/lacunarity.
type OctavePerlinNoiseSampler struct {
	octaves      []*PerlinNoiseSampler
	amplitudes   []float64
	lacunarities []float64
	firstOctave  int
}

// legacyOctaveSkip is the fixed number of LegacyRNG draws skipped per absent
// octave in the legacy construction mode. Seed-sensitive; never round it.
const legacyOctaveSkip = 262

// NewLegacyOctaveSampler builds octaves from a single RNG chain, skipping
// legacyOctaveSkip draws for every absent leading octave.
func NewLegacyOctaveSampler(r RNG, firstOctave int, amplitudes []float64) *OctavePerlinNoiseSampler {
	n := len(amplitudes)
	o := &OctavePerlinNoiseSampler{
		octaves:      make([]*PerlinNoiseSampler, n),
		amplitudes:   append([]float64(nil), amplitudes...),
		lacunarities: make([]float64, n),
		firstOctave:  firstOctave,
	}

	legacy, ok := r.(*LegacyRNG)
	if !ok {
		legacy = NewLegacyRNG(0)
	}

	// Absent (zero-amplitude) octaves still consume RNG draws so later
	// present octaves land on the same stream position as upstream seeds.
	for i := 0; i < n; i++ {
		if amplitudes[i] != 0 {
			o.octaves[i] = NewPerlinNoiseSampler(legacy)
		} else {
			legacy.Skip(legacyOctaveSkip)
		}
		o.lacunarities[i] = lacunarityFor(firstOctave + i)
	}
	return o
}

// lacunarityFor returns 2^octaveIndex.
func lacunarityFor(octaveIndex int) float64 {
	return math.Pow(2, float64(octaveIndex))
}

// NewModernOctaveSampler derives one RNG per octave from split_string("octave_{n}").
func NewModernOctaveSampler(positional PositionalRNG, firstOctave int, amplitudes []float64) *OctavePerlinNoiseSampler {
	return newModernOctaveSamplerSuffixed(positional, firstOctave, amplitudes, "")
}

func octaveTag(n int) string {
	// octave_{n}
	buf := make([]byte, 0, 12)
	buf = append(buf, "octave_"...)
	if n < 0 {
		buf = append(buf, '-')
		n = -n
	}
	if n == 0 {
		buf = append(buf, '0')
	} else {
		start := len(buf)
		for n > 0 {
			buf = append(buf, byte('0'+n%10))
			n /= 10
		}
		for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return string(buf)
}

// Sample sums every present octave, scaled by amplitude and persistence.
func (o *OctavePerlinNoiseSampler) Sample(x, y, z float64) float64 {
	var total float64
	n := len(o.octaves)
	persistence := persistenceFor(n)
	for i := 0; i < n; i++ {
		oct := o.octaves[i]
		if oct == nil {
			continue
		}
		lac := o.lacunarities[i]
		p := persistence[i]
		total += o.amplitudes[i] * p * oct.Sample(
			maintainPrecision(x*lac),
			maintainPrecision(y*lac),
			maintainPrecision(z*lac))
	}
	return total
}

// persistenceFor returns p_i = 2^(N-1-i) / (2^N - 1) for N octaves.
func persistenceFor(n int) []float64 {
	out := make([]float64, n)
	denom := math.Pow(2, float64(n)) - 1
	for i := 0; i < n; i++ {
		out[i] = math.Pow(2, float64(n-1-i)) / denom
	}
	return out
}
