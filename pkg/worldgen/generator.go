package worldgen

import (
	"github.com/voxelforge/worldgen/pkg/density"
)

// Generator evaluates a density-function graph for one chunk. It implements
// density.WrapperResolver: every Wrapper node in the shared, immutable graph
// resolves by looking up its own entry in the generator's arena rather than
// holding any state itself, so the same graph stays safe to hand to many
// concurrent generators.
//
// The arena is a map keyed by wrapper pointer identity to a slice index;
// this is the Go counterpart to the source's raw-pointer cache fields — an
// index into storage the generator owns, never a pointer stored back inside
// the graph.
type Generator struct {
	shape GenerationShape

	chunkOriginX int64
	chunkOriginZ int64

	passID       uint64
	currentCell  int64
	cellOrigin   density.Pos
	cellSizeXZ   float64
	cellSizeY    float64

	arena map[*density.Wrapper]int

	cache2D      []cache2DState
	flatCache    []flatCacheState
	onceCache    []onceCacheState
	cellCache    []cellCacheState
	interpolated []interpolatedState
}

// NewGenerator creates a Generator for one chunk at the given chunk-local
// origin (block coordinates of the chunk's (0,0) corner).
func NewGenerator(shape GenerationShape, chunkOriginX, chunkOriginZ int64) *Generator {
	return &Generator{
		shape:        shape,
		chunkOriginX: chunkOriginX,
		chunkOriginZ: chunkOriginZ,
		arena:        make(map[*density.Wrapper]int),
	}
}

// slotFor returns the arena slot for w, allocating and zero-initialising
// backing storage for its cache kind on first sight.
func (g *Generator) slotFor(w *density.Wrapper) int {
	if idx, ok := g.arena[w]; ok {
		return idx
	}
	var idx int
	switch w.Kind {
	case density.CacheOnce2D:
		g.cache2D = append(g.cache2D, cache2DState{})
		idx = len(g.cache2D) - 1
	case density.CacheFlat:
		g.flatCache = append(g.flatCache, flatCacheState{})
		idx = len(g.flatCache) - 1
	case density.CacheOnce:
		g.onceCache = append(g.onceCache, onceCacheState{})
		idx = len(g.onceCache) - 1
	case density.CacheCell:
		g.cellCache = append(g.cellCache, cellCacheState{})
		idx = len(g.cellCache) - 1
	case density.CacheInterpolated:
		g.interpolated = append(g.interpolated, interpolatedState{})
		idx = len(g.interpolated) - 1
	}
	g.arena[w] = idx
	return idx
}

// BeginPass bumps the once-cache generation counter; call it once per
// independent Sample/Fill entry point (a new chunk, a new block query
// outside of chunk generation) so CacheOnce wrappers don't leak state
// across unrelated evaluations.
func (g *Generator) BeginPass() {
	g.passID++
}

// BeginCell marks the generator as evaluating inside a fresh H*H*V cell at
// origin with the given cell sizes, populating CellCache/Interpolated
// corner state lazily as wrappers are first visited.
func (g *Generator) BeginCell(cellX, cellY, cellZ int, origin density.Pos, cellSizeXZ, cellSizeY float64) {
	g.currentCell = int64(cellX)<<40 | int64(cellY)<<20 | int64(cellZ)
	g.cellOrigin = origin
	g.cellSizeXZ = cellSizeXZ
	g.cellSizeY = cellSizeY
}

// Resolve implements density.WrapperResolver.
func (g *Generator) Resolve(w *density.Wrapper, ctx *density.EvalContext) float64 {
	idx := g.slotFor(w)
	switch w.Kind {
	case density.CacheOnce2D:
		return g.cache2D[idx].get(ctx, w.Input)
	case density.CacheFlat:
		return g.flatCache[idx].get(ctx, w.Input, g.chunkOriginX, g.chunkOriginZ, 16/flatCacheCellBlocks)
	case density.CacheOnce:
		return g.onceCache[idx].get(ctx, w.Input, g.passID)
	case density.CacheCell:
		return g.cellCache[idx].get(ctx, w.Input, g.currentCell)
	case density.CacheInterpolated:
		st := &g.interpolated[idx]
		st.ensure(ctx, w.Input, g.currentCell, g.cellOrigin, g.cellSizeXZ, g.cellSizeY)
		tx := safeFraction(ctx.X-g.cellOrigin.X, g.cellSizeXZ)
		ty := safeFraction(ctx.Y-g.cellOrigin.Y, g.cellSizeY)
		tz := safeFraction(ctx.Z-g.cellOrigin.Z, g.cellSizeXZ)
		return st.interpolate(tx, ty, tz)
	default:
		return w.Input.Sample(ctx)
	}
}

// FillResolve implements density.WrapperResolver.
func (g *Generator) FillResolve(w *density.Wrapper, ctx *density.EvalContext, arr []float64, applier density.Applier) {
	for i := range arr {
		p := applier(i)
		arr[i] = g.Resolve(w, ctx.At(p))
	}
}

func safeFraction(delta, span float64) float64 {
	if span == 0 {
		return 0
	}
	t := delta / span
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
