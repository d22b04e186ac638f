package world

import (
	"github.com/voxelforge/worldgen/pkg/light"
	"github.com/voxelforge/worldgen/pkg/worldgen"
)

// Chunk is one realized column: the block data the generator produced, plus
// its sky-light buffer once lighting has run. LightReady stays false until
// InitializeLight succeeds, so callers reading light on a freshly generated
// chunk can tell an all-dark buffer from one that simply hasn't run yet.
type Chunk struct {
	Pos        ChunkPos
	Blocks     *worldgen.ChunkBlocks
	Light      *light.ChunkLightData
	LightReady bool
}

// blockSource adapts a Chunk's block array to light.ColumnSource. The
// engine's 0/15 opacity model treats every non-air block as fully opaque.
type blockSource struct {
	c *Chunk
}

func (s blockSource) IsOpaque(x, y, z int) bool {
	lx, lz := floorModInt(x, 16), floorModInt(z, 16)
	if y < s.c.Blocks.MinY || y >= s.c.Blocks.MinY+s.c.Blocks.Height {
		return false
	}
	return s.c.Blocks.BlockAt(lx, y, lz) != worldgen.Air
}

func (s blockSource) HighestOpaqueY(x, z int) int {
	lx, lz := floorModInt(x, 16), floorModInt(z, 16)
	return s.c.Blocks.ColumnHighestSolidY(lx, lz)
}

func floorModInt(a, b int) int {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}

func (s blockSource) MinY() int { return s.c.Blocks.MinY }
func (s blockSource) MaxY() int { return s.c.Blocks.MinY + s.c.Blocks.Height - 1 }

// InitializeLight runs the sky-light engine over this chunk's blocks,
// pulling in whatever its already-loaded neighbours can offer across the
// shared edge. It returns the increases that tried to leak into chunks
// still ungenerated, for the caller to queue and re-apply once those
// chunks exist.
func (c *Chunk) InitializeLight(neighbours [4]*Chunk) []light.ChunkBoundaryPropagation {
	if c.Light == nil {
		c.Light = light.NewChunkLightData(c.Pos.X, c.Pos.Z, c.Blocks.MinY, c.Blocks.Height)
	}
	var nb [4]*light.ChunkLightData
	for i, n := range neighbours {
		if n != nil {
			nb[i] = n.Light
		}
	}
	out := c.Light.Initialize(blockSource{c: c}, nb)
	c.LightReady = true
	return out
}
