package noise

import "math"

// gradients is the fixed 16-entry gradient table used by the reference
// Perlin implementation.
var gradients = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {0, -1, 1}, {-1, 1, 0}, {0, -1, -1},
}

// PerlinNoiseSampler is a single octave of 3-D gradient noise, built from a
// seeded Fisher-Yates permutation of 0..255 plus three randomised origins.
type PerlinNoiseSampler struct {
	perm    [256]int32
	originX float64
	originY float64
	originZ float64
}

// NewPerlinNoiseSampler builds a sampler from an RNG, consuming origin draws
// before the permutation shuffle exactly as the reference implementation
// does (origin draws first, then the Fisher-Yates pass).
func NewPerlinNoiseSampler(r RNG) *PerlinNoiseSampler {
	p := &PerlinNoiseSampler{
		originX: r.NextDouble() * 256,
		originY: r.NextDouble() * 256,
		originZ: r.NextDouble() * 256,
	}
	for i := range p.perm {
		p.perm[i] = int32(i)
	}
	for i := 0; i < 256; i++ {
		j := int(r.NextIntBound(int32(256 - i)))
		p.perm[i], p.perm[i+j] = p.perm[i+j], p.perm[i]
	}
	return p
}

func smoothstep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func (p *PerlinNoiseSampler) hash(i int32) int32 {
	return p.perm[i&255]
}

func grad(hash int32, x, y, z float64) float64 {
	g := gradients[hash&15]
	return g[0]*x + g[1]*y + g[2]*z
}

// Sample evaluates the noise field at (x, y, z).
func (p *PerlinNoiseSampler) Sample(x, y, z float64) float64 {
	return p.sampleInternal(x, y, z, 0, 0)
}

// SampleNoFade quantises y to multiples of yScale (capped by yMax) before
// sampling, producing slab-style terrain shaping.
func (p *PerlinNoiseSampler) SampleNoFade(x, y, z, yScale, yMax float64) float64 {
	return p.sampleInternal(x, y, z, yScale, yMax)
}

func (p *PerlinNoiseSampler) sampleInternal(x, y, z, yScale, yMax float64) float64 {
	xd := x + p.originX
	yd := y + p.originY
	zd := z + p.originZ

	xFloor := math.Floor(xd)
	yFloor := math.Floor(yd)
	zFloor := math.Floor(zd)

	xi := int32(xFloor)
	yi := int32(yFloor)
	zi := int32(zFloor)

	xf := xd - xFloor
	yf := yd - yFloor
	zf := zd - zFloor

	if yScale != 0 {
		clampedY := yMax
		if y < clampedY || clampedY < 0 {
			clampedY = y
		}
		yd = math.Floor(clampedY/yScale+1.0e-7)*yScale + p.originY
		yFloor = math.Floor(yd)
		yi = int32(yFloor)
		yf = yd - yFloor
	}

	return p.sampleGrid(xi, yi, zi, xf, yf, zf, yf)
}

func (p *PerlinNoiseSampler) sampleGrid(xi, yi, zi int32, xf, yf, zf, yfRaw float64) float64 {
	u := smoothstep(xf)
	v := smoothstep(yf)
	w := smoothstep(zf)

	a := p.hash(xi) + yi
	aa := p.hash(a) + zi
	ab := p.hash(a+1) + zi
	b := p.hash(xi+1) + yi
	ba := p.hash(b) + zi
	bb := p.hash(b+1) + zi

	_ = yfRaw

	return lerp(w,
		lerp(v,
			lerp(u, grad(p.hash(aa), xf, yf, zf), grad(p.hash(ba), xf-1, yf, zf)),
			lerp(u, grad(p.hash(ab), xf, yf-1, zf), grad(p.hash(bb), xf-1, yf-1, zf))),
		lerp(v,
			lerp(u, grad(p.hash(aa+1), xf, yf, zf-1), grad(p.hash(ba+1), xf-1, yf, zf-1)),
			lerp(u, grad(p.hash(ab+1), xf, yf-1, zf-1), grad(p.hash(bb+1), xf-1, yf-1, zf-1))))
}
