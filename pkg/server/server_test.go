package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/worldgen/pkg/world"
)

func TestServerGetBreakSetBlock(t *testing.T) {
	srv, err := New(Config{Seed: 0})
	require.NoError(t, err)

	before := srv.GetBlock(0, 60, 0)

	broken := srv.BreakBlock(0, 60, 0)
	require.Equal(t, before, broken)
	require.Equal(t, world.Air, srv.GetBlock(0, 60, 0))

	srv.SetBlockState(0, 60, 0, world.Stone)
	require.Equal(t, world.Stone, srv.GetBlock(0, 60, 0))
}

func TestServerLightPacketNeverSetsBothMasksForSameBand(t *testing.T) {
	srv, err := New(Config{Seed: 0})
	require.NoError(t, err)

	pkt := srv.LightPacket(0, 0)
	require.Zero(t, pkt.SetMask&pkt.EmptyMask, "a band must never be reported both set and empty")
	require.Len(t, pkt.Sections, popcount(pkt.SetMask))
}

func TestServerLoadChunkIsIdempotent(t *testing.T) {
	srv, err := New(Config{Seed: 42})
	require.NoError(t, err)

	srv.LoadChunk(3, -2)
	first := srv.GetLightLevel(3*16, 200, -2*16)
	srv.LoadChunk(3, -2)
	second := srv.GetLightLevel(3*16, 200, -2*16)
	require.Equal(t, first, second)
}

func popcount(v int64) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}
