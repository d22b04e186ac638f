package noise

import "math"

const (
	skew2D   = 0.3660254037844386  // (sqrt(3)-1)/2
	unskew2D = 0.21132486540518713 // (3-sqrt(3))/6
)

var simplexGradients3D = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// SimplexNoiseSampler implements 2-D and 3-D skewed simplex noise. It is used
// only inside end-island generation.
type SimplexNoiseSampler struct {
	perm    [256]int32
	originX float64
	originY float64
	originZ float64
}

// NewSimplexNoiseSampler builds a sampler the same way PerlinNoiseSampler
// does: randomised origins, then a Fisher-Yates permutation.
func NewSimplexNoiseSampler(r RNG) *SimplexNoiseSampler {
	s := &SimplexNoiseSampler{
		originX: r.NextDouble() * 256,
		originY: r.NextDouble() * 256,
		originZ: r.NextDouble() * 256,
	}
	for i := range s.perm {
		s.perm[i] = int32(i)
	}
	for i := 0; i < 256; i++ {
		j := int(r.NextIntBound(int32(256 - i)))
		s.perm[i], s.perm[i+j] = s.perm[i+j], s.perm[i]
	}
	return s
}

func (s *SimplexNoiseSampler) hash(i int32) int32 {
	return s.perm[i&255]
}

func dot3(g [3]float64, x, y, z float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z
}

// Sample2D evaluates 2-D simplex noise at (x, y).
func (s *SimplexNoiseSampler) Sample2D(x, y float64) float64 {
	hairyFactor := (x + y) * skew2D
	i := math.Floor(x + hairyFactor)
	j := math.Floor(y + hairyFactor)
	d := (i + j) * unskew2D
	x0 := x - (i - d)
	y0 := y - (j - d)

	var i1, j1 float64
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - i1 + unskew2D
	y1 := y0 - j1 + unskew2D
	x2 := x0 - 1 + 2*unskew2D
	y2 := y0 - 1 + 2*unskew2D

	ii := int32(i)
	jj := int32(j)

	n0 := s.cornerContribution2D(ii, jj, x0, y0)
	n1 := s.cornerContribution2D(ii+int32(i1), jj+int32(j1), x1, y1)
	n2 := s.cornerContribution2D(ii+1, jj+1, x2, y2)

	return 70 * (n0 + n1 + n2)
}

func (s *SimplexNoiseSampler) cornerContribution2D(i, j int32, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := simplexGradients3D[s.hash(s.hash(i)+j)%12]
	return t * t * dot3(g, x, y, 0)
}

// Sample3D evaluates 3-D simplex noise at (x, y, z).
func (s *SimplexNoiseSampler) Sample3D(x, y, z float64) float64 {
	const skew3D = 1.0 / 3.0
	const unskew3D = 1.0 / 6.0

	hairy := (x + y + z) * skew3D
	i := math.Floor(x + hairy)
	j := math.Floor(y + hairy)
	k := math.Floor(z + hairy)
	d := (i + j + k) * unskew3D
	x0 := x - (i - d)
	y0 := y - (j - d)
	z0 := z - (k - d)

	var i1, j1, k1, i2, j2, k2 int32
	switch {
	case x0 >= y0 && y0 >= z0:
		i1, j1, k1 = 1, 0, 0
		i2, j2, k2 = 1, 1, 0
	case x0 >= z0 && z0 >= y0:
		i1, j1, k1 = 1, 0, 0
		i2, j2, k2 = 1, 0, 1
	case y0 >= z0 && z0 >= x0:
		i1, j1, k1 = 0, 1, 0
		i2, j2, k2 = 1, 1, 0
	case z0 >= x0 && x0 >= y0:
		i1, j1, k1 = 0, 0, 1
		i2, j2, k2 = 1, 0, 1
	case z0 >= y0 && y0 >= x0:
		i1, j1, k1 = 0, 0, 1
		i2, j2, k2 = 0, 1, 1
	default:
		i1, j1, k1 = 0, 1, 0
		i2, j2, k2 = 0, 1, 1
	}

	x1 := x0 - float64(i1) + unskew3D
	y1 := y0 - float64(j1) + unskew3D
	z1 := z0 - float64(k1) + unskew3D
	x2 := x0 - float64(i2) + 2*unskew3D
	y2 := y0 - float64(j2) + 2*unskew3D
	z2 := z0 - float64(k2) + 2*unskew3D
	x3 := x0 - 1 + 3*unskew3D
	y3 := y0 - 1 + 3*unskew3D
	z3 := z0 - 1 + 3*unskew3D

	ii, jj, kk := int32(i), int32(j), int32(k)

	n0 := s.cornerContribution3D(ii, jj, kk, x0, y0, z0)
	n1 := s.cornerContribution3D(ii+i1, jj+j1, kk+k1, x1, y1, z1)
	n2 := s.cornerContribution3D(ii+i2, jj+j2, kk+k2, x2, y2, z2)
	n3 := s.cornerContribution3D(ii+1, jj+1, kk+1, x3, y3, z3)

	return 32 * (n0 + n1 + n2 + n3)
}

func (s *SimplexNoiseSampler) cornerContribution3D(i, j, k int32, x, y, z float64) float64 {
	t := 0.6 - x*x - y*y - z*z
	if t < 0 {
		return 0
	}
	t *= t
	g := simplexGradients3D[s.hash(s.hash(s.hash(i)+j)+k)%12]
	return t * t * dot3(g, x, y, z)
}
