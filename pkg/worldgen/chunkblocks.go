package worldgen

import (
	"github.com/voxelforge/worldgen/pkg/density"
)

// BlockState is an interned block-state id. The zero value is air.
type BlockState uint32

// Air is the implicit default state of every block before a sampler writes
// to it.
const Air BlockState = 0

// StateSampler decides the concrete block state at a position once the
// density graph has already said the position is solid/fluid (final_density
// <= 0). It composes an aquifer sampler (fluid vs air-or-stone) and an ore
// vein sampler (stone vs ore) the way the source chains them.
type StateSampler interface {
	Sample(x, y, z int, finalDensity float64) (BlockState, bool)
}

// ChunkBlocks is the per-chunk output: a dense 16xHx16 block-state array
// plus a packed heightmap, 7 nine-bit entries per 64-bit word (256 columns
// total, column index = z*16+x).
type ChunkBlocks struct {
	MinY    int
	Height  int
	Blocks  []BlockState // index = (((y - MinY) * 16) + z) * 16 + x
	Heights []uint64     // packed heightmap, ceil(256/7) = 37 words
}

const heightsPerWord = 7
const heightBits = 9
const heightMask = (1 << heightBits) - 1

// NewChunkBlocks allocates a zero (all-air) chunk of the given shape.
func NewChunkBlocks(shape GenerationShape) *ChunkBlocks {
	return &ChunkBlocks{
		MinY:    shape.MinY,
		Height:  shape.Height,
		Blocks:  make([]BlockState, 16*shape.Height*16),
		Heights: make([]uint64, (256+heightsPerWord-1)/heightsPerWord),
	}
}

func (c *ChunkBlocks) index(x, y, z int) int {
	return ((y-c.MinY)*16+z)*16 + x
}

func (c *ChunkBlocks) set(x, y, z int, state BlockState) {
	c.Blocks[c.index(x, y, z)] = state
	c.recordHeight(x, z, y+1)
}

// BlockAt returns the block state at chunk-local (x,y,z).
func (c *ChunkBlocks) BlockAt(x, y, z int) BlockState {
	return c.Blocks[c.index(x, y, z)]
}

func (c *ChunkBlocks) columnHeight(x, z int) int {
	col := z*16 + x
	word := col / heightsPerWord
	slot := col % heightsPerWord
	shift := uint(slot * heightBits)
	return int((c.Heights[word] >> shift) & heightMask)
}

// recordHeight stores candidateTop (the y one above the written block) if
// it is higher than the column's current recorded height, biased by -c.MinY
// so the packed 9-bit field (0..511) can represent negative minY worlds.
func (c *ChunkBlocks) recordHeight(x, z, candidateTop int) {
	biased := candidateTop - c.MinY
	if biased < 0 {
		biased = 0
	}
	if biased > heightMask {
		biased = heightMask
	}
	if biased <= c.columnHeight(x, z) {
		return
	}
	col := z*16 + x
	word := col / heightsPerWord
	slot := col % heightsPerWord
	shift := uint(slot * heightBits)
	c.Heights[word] &^= heightMask << shift
	c.Heights[word] |= uint64(biased) << shift
}

// ColumnHighestSolidY returns the y of the highest non-air block in chunk-
// local column (x,z), or MinY-1 if the column is entirely air.
func (c *ChunkBlocks) ColumnHighestSolidY(x, z int) int {
	biased := c.columnHeight(x, z)
	if biased == 0 {
		return c.MinY - 1
	}
	return biased + c.MinY - 1
}

// HighestBlockY returns the tallest recorded column height, converted back
// to world-space y.
func (c *ChunkBlocks) HighestBlockY() int {
	best := 0
	for col := 0; col < 256; col++ {
		word := col / heightsPerWord
		slot := col % heightsPerWord
		shift := uint(slot * heightBits)
		h := int((c.Heights[word] >> shift) & heightMask)
		if h > best {
			best = h
		}
	}
	return best + c.MinY
}

// GenerateChunkBlocks runs the cell-major ChunkBlocks producer pass
// described in the source: an interpolated final_density sample per block,
// solid/fluid written whenever final_density <= 0, deferring to states to
// pick the concrete block.
func GenerateChunkBlocks(shape GenerationShape, chunkX, chunkZ int, finalDensity density.Node, states StateSampler) *ChunkBlocks {
	g := NewGenerator(shape, int64(chunkX)*16, int64(chunkZ)*16)
	g.BeginPass()

	out := NewChunkBlocks(shape)

	hBlocks := shape.HorizontalCellBlockCount
	vBlocks := shape.VerticalCellBlockCount
	hCells := shape.HorizontalCellCount()
	vCells := shape.VerticalCellCount()

	resolverCtx := func(x, y, z float64) *density.EvalContext {
		return &density.EvalContext{X: x, Y: y, Z: z, Resolver: g}
	}

	for cellX := 0; cellX < hCells; cellX++ {
		for cellZ := 0; cellZ < hCells; cellZ++ {
			for cellY := vCells - 1; cellY >= 0; cellY-- {
				originX := float64(chunkX*16 + cellX*hBlocks)
				originZ := float64(chunkZ*16 + cellZ*hBlocks)
				originY := float64(shape.MinY + cellY*vBlocks)

				g.BeginCell(cellX, cellY, cellZ, density.Pos{X: originX, Y: originY, Z: originZ}, float64(hBlocks), float64(vBlocks))

				for by := vBlocks - 1; by >= 0; by-- {
					blockY := shape.MinY + cellY*vBlocks + by
					for bx := 0; bx < hBlocks; bx++ {
						blockX := chunkX*16 + cellX*hBlocks + bx
						for bz := 0; bz < hBlocks; bz++ {
							blockZ := chunkZ*16 + cellZ*hBlocks + bz

							ctx := resolverCtx(float64(blockX), float64(blockY), float64(blockZ))
							d := finalDensity.Sample(ctx)
							if d > 0 {
								continue
							}
							state, ok := states.Sample(blockX, blockY, blockZ, d)
							if ok {
								out.set(bx+cellX*hBlocks, blockY, bz+cellZ*hBlocks, state)
							}
						}
					}
				}
			}
		}
	}

	return out
}
