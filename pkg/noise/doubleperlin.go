package noise

// DoublePerlinNoiseSampler sums two octave samplers, the second evaluated at
// an offset frequency, and scales the result so the output is roughly
// normalised onto [-1, 1].
type DoublePerlinNoiseSampler struct {
	first     *OctavePerlinNoiseSampler
	second    *OctavePerlinNoiseSampler
	amplitude float64
}

const doublePerlinOffset = 1.0181268882175227

// NewLegacyDoublePerlinNoiseSampler builds both inner octave stacks from one
// LegacyRNG chain, consuming it sequentially (first stack, then second).
func NewLegacyDoublePerlinNoiseSampler(r RNG, firstOctave int, amplitudes []float64) *DoublePerlinNoiseSampler {
	return &DoublePerlinNoiseSampler{
		first:     NewLegacyOctaveSampler(r, firstOctave, amplitudes),
		second:    NewLegacyOctaveSampler(r, firstOctave, amplitudes),
		amplitude: doublePerlinAmplitude(amplitudes),
	}
}

// NewModernDoublePerlinNoiseSampler derives each inner octave stack from a
// positional splitter rooted at the noise's string id; the two stacks use
// distinct per-octave tags so they are independent streams.
func NewModernDoublePerlinNoiseSampler(positional PositionalRNG, firstOctave int, amplitudes []float64) *DoublePerlinNoiseSampler {
	return &DoublePerlinNoiseSampler{
		first:     newModernOctaveSamplerSuffixed(positional, firstOctave, amplitudes, ""),
		second:    newModernOctaveSamplerSuffixed(positional, firstOctave, amplitudes, "B"),
		amplitude: doublePerlinAmplitude(amplitudes),
	}
}

func newModernOctaveSamplerSuffixed(positional PositionalRNG, firstOctave int, amplitudes []float64, suffix string) *OctavePerlinNoiseSampler {
	n := len(amplitudes)
	o := &OctavePerlinNoiseSampler{
		octaves:      make([]*PerlinNoiseSampler, n),
		amplitudes:   append([]float64(nil), amplitudes...),
		lacunarities: make([]float64, n),
		firstOctave:  firstOctave,
	}
	for i := 0; i < n; i++ {
		o.lacunarities[i] = lacunarityFor(firstOctave + i)
		if amplitudes[i] == 0 {
			continue
		}
		o.octaves[i] = NewPerlinNoiseSampler(positional.FromHashOf(octaveTag(firstOctave+i) + suffix))
	}
	return o
}

// doublePerlinAmplitude computes (1/6) / (0.1 * (1 + 1/(span+1))) where span
// is the distance between the first and last non-zero amplitude index.
func doublePerlinAmplitude(amplitudes []float64) float64 {
	first, last := -1, -1
	for i, a := range amplitudes {
		if a != 0 {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	span := 0
	if first >= 0 {
		span = last - first
	}
	return (1.0 / 6.0) / (0.1 * (1 + 1/float64(span+1)))
}

// Sample evaluates both octave stacks and combines them.
func (d *DoublePerlinNoiseSampler) Sample(x, y, z float64) float64 {
	s1 := d.first.Sample(x, y, z)
	s2 := d.second.Sample(x*doublePerlinOffset, y*doublePerlinOffset, z*doublePerlinOffset)
	return (s1 + s2) * d.amplitude
}

// MaxValue returns an upper bound on |Sample|, used by range tests.
func (d *DoublePerlinNoiseSampler) MaxValue() float64 {
	return d.amplitude * 2
}
