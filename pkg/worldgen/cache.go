package worldgen

import "github.com/voxelforge/worldgen/pkg/density"

// columnKey packs a quantised (x,z) column position for use as a cache map
// key; quantisation is to whole blocks, which is the resolution Cache2D
// needs.
type columnKey struct{ x, z int64 }

// cache2DState backs a density.CacheOnce2D wrapper: remembers the last
// sampled column and its value, matching the source's single-entry hit
// check rather than an unbounded memo.
type cache2DState struct {
	hasLast bool
	lastKey columnKey
	lastVal float64
}

func (s *cache2DState) get(ctx *density.EvalContext, input density.Node) float64 {
	k := columnKey{int64(ctx.X), int64(ctx.Z)}
	if s.hasLast && k == s.lastKey {
		return s.lastVal
	}
	v := input.Sample(ctx)
	s.hasLast = true
	s.lastKey = k
	s.lastVal = v
	return v
}

// flatCacheState precomputes a biome-grid-resolution (4-block) column cache
// over one chunk's footprint; outside the populated footprint it falls back
// to direct sampling.
type flatCacheState struct {
	populated bool
	originX   int64
	originZ   int64
	size      int
	values    []float64 // size*size, biome-grid resolution (4 blocks/cell)
}

const flatCacheCellBlocks = 4

func (s *flatCacheState) ensure(ctx *density.EvalContext, input density.Node, chunkOriginX, chunkOriginZ int64, cellsPerSide int) {
	if s.populated && s.originX == chunkOriginX && s.originZ == chunkOriginZ {
		return
	}
	s.size = cellsPerSide
	s.originX = chunkOriginX
	s.originZ = chunkOriginZ
	s.values = make([]float64, cellsPerSide*cellsPerSide)
	for iz := 0; iz < cellsPerSide; iz++ {
		for ix := 0; ix < cellsPerSide; ix++ {
			x := float64(chunkOriginX + int64(ix*flatCacheCellBlocks))
			z := float64(chunkOriginZ + int64(iz*flatCacheCellBlocks))
			sub := ctx.At(density.Pos{X: x, Y: ctx.Y, Z: z})
			s.values[iz*cellsPerSide+ix] = input.Sample(sub)
		}
	}
	s.populated = true
}

func (s *flatCacheState) get(ctx *density.EvalContext, input density.Node, chunkOriginX, chunkOriginZ int64, cellsPerSide int) float64 {
	s.ensure(ctx, input, chunkOriginX, chunkOriginZ, cellsPerSide)
	ix := (int64(ctx.X) - chunkOriginX) / flatCacheCellBlocks
	iz := (int64(ctx.Z) - chunkOriginZ) / flatCacheCellBlocks
	if ix < 0 || iz < 0 || int(ix) >= s.size || int(iz) >= s.size {
		return input.Sample(ctx)
	}
	return s.values[int(iz)*s.size+int(ix)]
}

// onceCacheState remembers a single scalar for the duration of the
// generator's current "unique sample" pass, identified by a counter the
// generator bumps once per Fill/Sample entry point. It is the stand-in for
// the source's cache_once_unique_index / sample_unique_index pair.
type onceCacheState struct {
	hasValue bool
	passID   uint64
	value    float64
}

func (s *onceCacheState) get(ctx *density.EvalContext, input density.Node, passID uint64) float64 {
	if s.hasValue && s.passID == passID {
		return s.value
	}
	v := input.Sample(ctx)
	s.hasValue = true
	s.passID = passID
	s.value = v
	return v
}

// cellCacheState holds a single scalar for the currently active H*H*V cell:
// the first sample taken inside a cell computes it, and every later sample
// with the same cellID reads it back.
type cellCacheState struct {
	populated bool
	cellID    int64
	value     float64
}

func (s *cellCacheState) get(ctx *density.EvalContext, input density.Node, cellID int64) float64 {
	if s.populated && s.cellID == cellID {
		return s.value
	}
	v := input.Sample(ctx)
	s.populated = true
	s.cellID = cellID
	s.value = v
	return v
}

// interpolatedState mirrors the source's 8-corner cell interpolator:
// corners are sampled once per cell by ensure, then every
// interior block position is produced by tri-linear interpolation across
// the three interpolation passes (y, x, z) instead of by direct sampling.
type interpolatedState struct {
	populated bool
	cellID    int64
	corners   [8]float64 // order: (x,y,z) bit0=dx,bit1=dy,bit2=dz... see cornerIndex
}

func cornerIndex(dx, dy, dz int) int {
	return dx | dy<<1 | dz<<2
}

func (s *interpolatedState) ensure(ctx *density.EvalContext, input density.Node, cellID int64, origin density.Pos, cellSizeXZ, cellSizeY float64) {
	if s.populated && s.cellID == cellID {
		return
	}
	for dy := 0; dy <= 1; dy++ {
		for dz := 0; dz <= 1; dz++ {
			for dx := 0; dx <= 1; dx++ {
				p := density.Pos{
					X: origin.X + float64(dx)*cellSizeXZ,
					Y: origin.Y + float64(dy)*cellSizeY,
					Z: origin.Z + float64(dz)*cellSizeXZ,
				}
				s.corners[cornerIndex(dx, dy, dz)] = input.Sample(ctx.At(p))
			}
		}
	}
	s.populated = true
	s.cellID = cellID
}

// interpolate performs the first_pass/second_pass/third_pass tri-linear
// blend described by the source: interpolate along y first, then x, then z.
func (s *interpolatedState) interpolate(tx, ty, tz float64) float64 {
	var firstPass [4]float64 // after interpolating y, indexed by (dx,dz)
	for dz := 0; dz <= 1; dz++ {
		for dx := 0; dx <= 1; dx++ {
			lo := s.corners[cornerIndex(dx, 0, dz)]
			hi := s.corners[cornerIndex(dx, 1, dz)]
			firstPass[dx|dz<<1] = lo + ty*(hi-lo)
		}
	}
	var secondPass [2]float64 // after interpolating x, indexed by dz
	for dz := 0; dz <= 1; dz++ {
		lo := firstPass[0|dz<<1]
		hi := firstPass[1|dz<<1]
		secondPass[dz] = lo + tx*(hi-lo)
	}
	return secondPass[0] + tz*(secondPass[1]-secondPass[0])
}
