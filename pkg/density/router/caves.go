package router

import (
	"github.com/voxelforge/worldgen/pkg/density"
	"github.com/voxelforge/worldgen/pkg/noise"
)

// buildCaves composes the cheese/spaghetti/pillar/noodle cave sub-graph and
// returns a single density contribution to be added into internal_density.
// Each sub-graph independently carves a different cave shape; they are
// combined by taking the loosest (max) of the carving signals so any one of
// them can open a void.
func buildCaves(continents, erosion, ridges, depth density.Node, spaghetti1, spaghetti2 *noise.DoublePerlinNoiseSampler) density.Node {
	cheese := cheeseCaves(depth, erosion)
	spaghetti := spaghettiCaves(ridges, spaghetti1, spaghetti2)
	pillars := pillarCaves(continents)
	noodle := noodleCaves(ridges, depth)

	a := &density.Binary{A: cheese, B: spaghetti, Op: density.BinaryMax}
	b := &density.Binary{A: pillars, B: noodle, Op: density.BinaryMax}
	return &density.Binary{A: a, B: b, Op: density.BinaryMax}
}

// cheeseCaves carves broad open caverns where erosion is high and depth is
// shallow: a gentle negative offset, clamped so it never fully overrides
// solid terrain above the cave band.
func cheeseCaves(depth, erosion density.Node) density.Node {
	band := &density.Range{
		Input: depth,
		Min:   -64, Max: 0.2,
		In:  &density.Linear{Input: erosion, Op: density.LinearMul, K: -0.3},
		Out: &density.Constant{Value: -64},
	}
	return &density.Clamp{Input: band, Min: -1, Max: 0.6}
}

// spaghettiCaves carves narrow ridged tunnels: two independently-seeded
// Wierd warps of the ridges signal, combined by taking whichever opens the
// tunnel wider, then folded against the raw ridges magnitude and clamped to
// the carving range.
func spaghettiCaves(ridges density.Node, spaghetti1, spaghetti2 *noise.DoublePerlinNoiseSampler) density.Node {
	w1 := &density.Wierd{Input: ridges, Noise: spaghetti1, Kind: density.WierdTunnels}
	w2 := &density.Wierd{Input: ridges, Noise: spaghetti2, Kind: density.WierdTunnels}
	widest := &density.Binary{A: w1, B: w2, Op: density.BinaryMax}
	magnitude := &density.Unary{Input: ridges, Op: density.UnaryAbs}
	combined := &density.Binary{A: widest, B: magnitude, Op: density.BinaryAdd}
	return &density.Clamp{Input: combined, Min: -1, Max: 1}
}

// pillarCaves yields -1 in a narrow band around zero continentalness and -64
// everywhere else. buildCaves combines it by max with cheeseCaves, which is
// clamped to at least -1, so it never changes the cave contribution and no
// pillars are placed.
func pillarCaves(continents density.Node) density.Node {
	narrow := &density.Range{
		Input: continents,
		Min:   -0.05, Max: 0.05,
		In:  &density.Constant{Value: -1},
		Out: &density.Constant{Value: -64},
	}
	return narrow
}

// noodleCaves carves thin winding tunnels, gated so they only appear away
// from the surface (depth below a threshold).
func noodleCaves(ridges, depth density.Node) density.Node {
	gate := &density.Range{
		Input: depth,
		Min:   -64, Max: -4,
		In:  &density.Linear{Input: ridges, Op: density.LinearMul, K: -0.05},
		Out: &density.Constant{Value: -64},
	}
	return gate
}
