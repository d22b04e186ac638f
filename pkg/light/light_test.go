package light

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// flatSource is a ColumnSource over a flat world: everything at or below
// topY is opaque, except cells punched out in holes. A hole at a column's
// own surface lowers that column's HighestOpaqueY, so it is open to the sky;
// a hole below the surface is reachable only sideways.
type flatSource struct {
	minY, maxY, topY int
	holes            map[[3]int]bool
}

func (s *flatSource) IsOpaque(x, y, z int) bool {
	if s.holes[[3]int{x, y, z}] {
		return false
	}
	return y <= s.topY
}

func (s *flatSource) HighestOpaqueY(x, z int) int {
	// A column with a hole carved at its own surface reads as if the
	// surface were one block lower, matching IsOpaque for that cell.
	if s.holes[[3]int{x, s.topY, z}] {
		return s.topY - 1
	}
	return s.topY
}

func (s *flatSource) MinY() int { return s.minY }
func (s *flatSource) MaxY() int { return s.maxY }

func newFlatSource(topY int) *flatSource {
	return &flatSource{minY: -16, maxY: 31, topY: topY, holes: map[[3]int]bool{}}
}

func TestColumnFillsFullBrightAboveTerrainAndDarkAtTop(t *testing.T) {
	src := newFlatSource(0)
	c := NewChunkLightData(0, 0, src.minY, src.maxY-src.minY+1)
	c.Initialize(src, [4]*ChunkLightData{})

	require.Equal(t, FullBright, c.GetLightLevel(5, src.maxY, 5))
	require.Equal(t, 0, c.GetLightLevel(5, 0, 5))
}

func TestLightNeverIncreasesDownToTheSurface(t *testing.T) {
	src := newFlatSource(0)
	c := NewChunkLightData(0, 0, src.minY, src.maxY-src.minY+1)
	c.Initialize(src, [4]*ChunkLightData{})

	prev := FullBright
	for y := src.maxY; y >= 1; y-- {
		level := c.GetLightLevel(5, y, 5)
		require.LessOrEqual(t, level, prev)
		prev = level
	}
}

func TestSurfaceGapIsLitFromOpenSky(t *testing.T) {
	src := newFlatSource(5)
	// Punch a one-block gap at the surface of column (8,8); that column's
	// HighestOpaqueY drops to 4, so the gap is filled from the open sky.
	src.holes[[3]int{8, 5, 8}] = true

	c := NewChunkLightData(0, 0, src.minY, src.maxY-src.minY+1)
	c.Initialize(src, [4]*ChunkLightData{})

	require.Greater(t, c.GetLightLevel(8, 5, 8), 0)
}

func TestSetLightLevelOutsideSpanIsNoOp(t *testing.T) {
	c := NewChunkLightData(0, 0, -16, 32)
	c.SetLightLevel(0, 10000, 0, FullBright)
	// A y this far above the top band reads as open sky (FullBright)
	// regardless of the no-op Set, matching the "above the top returns 15"
	// rule rather than surfacing the write as having silently failed.
	require.Equal(t, FullBright, c.GetLightLevel(0, 10000, 0))
}

func TestGetLightLevelBelowBottomBandIsZero(t *testing.T) {
	c := NewChunkLightData(0, 0, -16, 32)
	require.Equal(t, 0, c.GetLightLevel(0, -10000, 0))
}

func TestEdgeExchangePullsBrighterNeighbourAcrossTheSeam(t *testing.T) {
	// A sealed pocket at (x=0, y=10): opaque roof and floor, reachable only
	// sideways across the chunk seam from x=-1. Internal propagation alone
	// can never light it; only the edge exchange against the west
	// neighbour can.
	src := newFlatSource(30)
	for z := 0; z < 16; z++ {
		src.holes[[3]int{0, 10, z}] = true
	}
	minY, height := src.minY, src.maxY-src.minY+1

	west := NewChunkLightData(-1, 0, minY, height)
	for z := 0; z < 16; z++ {
		west.SetLightLevel(15, 10, z, FullBright)
	}

	east := NewChunkLightData(0, 0, minY, height)
	east.Initialize(src, [4]*ChunkLightData{
		NeighbourNorth: nil,
		NeighbourSouth: nil,
		NeighbourWest:  west,
		NeighbourEast:  nil,
	})

	require.Equal(t, FullBright-1, east.GetLightLevel(0, 10, 3))
}

func TestSaturatingSubNeverGoesNegative(t *testing.T) {
	require.Equal(t, 0, saturatingSub(0, 1))
	require.Equal(t, 0, saturatingSub(1, 1))
	require.Equal(t, 4, saturatingSub(5, 1))
}

func TestPacketDataMarksWrittenSectionsInSetMaskOnly(t *testing.T) {
	src := newFlatSource(0)
	c := NewChunkLightData(0, 0, src.minY, src.maxY-src.minY+1)
	c.Initialize(src, [4]*ChunkLightData{})

	pkt := c.PacketData()
	require.NotZero(t, pkt.SetMask)
	require.Zero(t, pkt.SetMask&pkt.EmptyMask)
	require.Len(t, pkt.Sections, popcount(pkt.SetMask))
}

func popcount(v int64) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}
