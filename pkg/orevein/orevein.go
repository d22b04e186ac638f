// Package orevein implements the rule-set that overlays elongated ore
// deposits onto otherwise-stone terrain, gated by the router's vein_toggle,
// vein_ridged and vein_gap density references and a per-block RNG draw.
package orevein

import (
	"github.com/voxelforge/worldgen/pkg/density"
	"github.com/voxelforge/worldgen/pkg/noise"
	"github.com/voxelforge/worldgen/pkg/worldgen"
)

// OreType is one of the two vein materials the source supports.
type OreType struct {
	Ore    worldgen.BlockState
	RawOre worldgen.BlockState
	Stone  worldgen.BlockState
	MinY   int
	MaxY   int
}

// RouterRefs is the subset of router density references OreVeinSampler
// needs.
type RouterRefs struct {
	VeinToggle density.Node
	VeinRidged density.Node
	VeinGap    density.Node
}

// Sampler decides whether stone at a position should instead be an ore or
// raw-ore block.
type Sampler struct {
	Config  *noise.Config
	Router  RouterRefs
	Copper  OreType
	Iron    OreType
}

// Sample implements the source's per-block vein rule: a vein-toggle density
// selects copper vs iron, a vertical-depth bias and a position-seeded RNG
// draw gate whether this block actually becomes ore, raw ore, or stays
// stone.
func (s *Sampler) Sample(x, y, z int) (worldgen.BlockState, bool) {
	ctx := &density.EvalContext{X: float64(x), Y: float64(y), Z: float64(z)}
	toggle := s.Router.VeinToggle.Sample(ctx)

	oreType := s.Iron
	if toggle > 0 {
		oreType = s.Copper
	}

	dyTop := oreType.MaxY - y
	dyBottom := y - oreType.MinY
	if dyTop < 0 || dyBottom < 0 {
		return worldgen.Air, false
	}
	dy := dyTop
	if dyBottom < dy {
		dy = dyBottom
	}

	absToggle := abs(toggle)
	bias := clampedMap(float64(dy), 0, 20, -0.2, 0)
	if absToggle+bias < 0.4 {
		return worldgen.Air, false
	}

	// Three independent draws off the position-seeded RNG, in the source's
	// order: the outer gate, the ore-vs-stone threshold, then raw-ore odds.
	rng := s.Config.PositionalRNGAt(int32(x), int32(y), int32(z))
	if rng.NextDouble() > 0.7 {
		return worldgen.Air, false
	}
	if s.Router.VeinRidged.Sample(ctx) >= 0 {
		return worldgen.Air, false
	}

	threshold := clampedMap(absToggle, 0.4, 0.6, 0.1, 0.3)
	if rng.NextDouble() < threshold && s.Router.VeinGap.Sample(ctx) > -0.3 {
		if rng.NextDouble() < 0.02 {
			return oreType.RawOre, true
		}
		return oreType.Ore, true
	}
	return oreType.Stone, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clampedMap(v, srcLo, srcHi, dstLo, dstHi float64) float64 {
	t := (v - srcLo) / (srcHi - srcLo)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return dstLo + t*(dstHi-dstLo)
}
