package worldgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/worldgen/pkg/density"
	"github.com/voxelforge/worldgen/pkg/noise"
)

func testShape() GenerationShape {
	return GenerationShape{MinY: -64, Height: 384, HorizontalCellBlockCount: 4, VerticalCellBlockCount: 8}
}

type constSampler struct{ state BlockState }

func (c constSampler) Sample(x, y, z int, finalDensity float64) (BlockState, bool) {
	return c.state, true
}

func TestGenerateChunkBlocksDeterministic(t *testing.T) {
	cfg := noise.NewConfig(11, false)
	sampler := cfg.Register("test_density", -6, []float64{1, 1, 1})
	node := &density.NoiseFn{Sampler: sampler, XZScale: 0.01, YScale: 0.01}

	c1 := GenerateChunkBlocks(testShape(), 2, -3, node, constSampler{state: 1})
	c2 := GenerateChunkBlocks(testShape(), 2, -3, node, constSampler{state: 1})

	require.Equal(t, c1.Blocks, c2.Blocks)
	require.Equal(t, c1.Heights, c2.Heights)
}

func TestChunkBlocksHeightmapTracksHighestSolidBlock(t *testing.T) {
	shape := testShape()
	cb := NewChunkBlocks(shape)
	cb.set(3, 10, 5, 1)
	cb.set(3, 40, 5, 1)
	require.Equal(t, 41, cb.columnHeight(3, 5)+shape.MinY)
}

func TestWrapperResolverCacheOnce2DMatchesDirectSample(t *testing.T) {
	cfg := noise.NewConfig(5, false)
	sampler := cfg.Register("col", -5, []float64{1, 1})
	node := &density.NoiseFn{Sampler: sampler, XZScale: 0.25, YScale: 0}
	wrapped := &density.Wrapper{Input: node, Kind: density.CacheOnce2D}

	g := NewGenerator(testShape(), 0, 0)
	ctx := &density.EvalContext{X: 10, Y: 0, Z: 20, Resolver: g}

	direct := node.Sample(&density.EvalContext{X: 10, Y: 0, Z: 20})
	cached := wrapped.Sample(ctx)
	require.InDelta(t, direct, cached, 1e-12)
}
