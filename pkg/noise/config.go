package noise

// Config owns every DoublePerlinNoiseSampler instance for a seed, keyed by
// each noise's string id. It is built once per seed and lives as long as the
// world; nodes in the density-function graph hold the sampler pointers that
// Register returns rather than owning their own RNG state.
type Config struct {
	seed    int64
	legacy  bool
	root    PositionalRNG
	samplers map[string]*DoublePerlinNoiseSampler
}

// NewConfig creates a NoiseConfig for seed. legacy selects the Java-LCG RNG
// family used by pre-1.18-style seeds; otherwise Xoroshiro128 is used.
func NewConfig(seed int64, legacy bool) *Config {
	c := &Config{
		seed:     seed,
		legacy:   legacy,
		samplers: make(map[string]*DoublePerlinNoiseSampler),
	}
	if legacy {
		c.root = NewLegacyRNG(seed).ForkPositional()
	} else {
		c.root = NewXoroshiro128(seed).ForkPositional()
	}
	return c
}

// Seed returns the seed the config was built from.
func (c *Config) Seed() int64 { return c.seed }

// Register installs (or replaces) the sampler for id, built with
// firstOctave/amplitudes parameters, deriving its RNG from split_string(id).
func (c *Config) Register(id string, firstOctave int, amplitudes []float64) *DoublePerlinNoiseSampler {
	var sampler *DoublePerlinNoiseSampler
	if c.legacy {
		sampler = NewLegacyDoublePerlinNoiseSampler(c.root.FromHashOf(id), firstOctave, amplitudes)
	} else {
		sampler = NewModernDoublePerlinNoiseSampler(c.root.FromHashOf(id).ForkPositional(), firstOctave, amplitudes)
	}
	c.samplers[id] = sampler
	return sampler
}

// Sampler returns a previously registered sampler, or nil.
func (c *Config) Sampler(id string) *DoublePerlinNoiseSampler {
	return c.samplers[id]
}

// PositionalRNGAt forks a fresh positional RNG rooted at split_pos(x,y,z),
// used by per-block decisions such as the ore-vein gate and aquifer jitter.
func (c *Config) PositionalRNGAt(x, y, z int32) RNG {
	return c.root.AtPosition(x, y, z)
}

// Positional exposes the root positional splitter for split_string use
// outside of registered noise samplers.
func (c *Config) Positional() PositionalRNG {
	return c.root
}
