// Package aquifer implements the rule-set that overrides solid terrain with
// water or lava pockets: a cheap SeaLevel variant for shallow worlds and a
// World variant that jitters fluid "seed positions" onto a coarse 3-D grid
// and blends between their levels near the boundary.
package aquifer

import (
	"math"

	"github.com/voxelforge/worldgen/pkg/density"
	"github.com/voxelforge/worldgen/pkg/noise"
	"github.com/voxelforge/worldgen/pkg/worldgen"
)

// FluidType distinguishes the two fluids the generator ever places.
type FluidType int

const (
	// NoFluid marks "no aquifer here" — the caller should fall through to
	// stone/air decided elsewhere.
	NoFluid FluidType = iota
	Water
	Lava
)

// FluidLevel is the fluid occupying a column up to and including Y.
type FluidLevel struct {
	Y     int
	Fluid FluidType
}

// FluidLevelSampler holds the world's default sea and deep-lava levels,
// used both as the SeaLevel variant's whole behaviour and as the fallback
// default inside the World variant's column estimator.
type FluidLevelSampler struct {
	SeaLevel  int
	SeaState  worldgen.BlockState
	DeepLevel int
	DeepState worldgen.BlockState
}

// DefaultLevel returns the ambient fluid level a column would have absent
// any local aquifer carving: lava below DeepLevel, otherwise sea level.
func (f FluidLevelSampler) DefaultLevel(y int) FluidLevel {
	if y < f.DeepLevel {
		return FluidLevel{Y: f.DeepLevel, Fluid: Lava}
	}
	return FluidLevel{Y: f.SeaLevel, Fluid: Water}
}

// BlockStateAt returns the fluid's block state if y is at or below level.Y,
// or (Air, false) otherwise.
func (f FluidLevelSampler) BlockStateAt(y int, level FluidLevel) (worldgen.BlockState, bool) {
	if y > level.Y {
		return worldgen.Air, false
	}
	switch level.Fluid {
	case Water:
		return f.SeaState, true
	case Lava:
		return f.DeepState, true
	default:
		return worldgen.Air, false
	}
}

// Sampler is implemented by both aquifer variants; it decides the fluid (if
// any) a solid-or-fluid position should actually become.
type Sampler interface {
	Apply(x, y, z int, finalDensity float64) (worldgen.BlockState, bool)
}

// SeaLevelSampler is the cheap aquifer variant used by worlds that disable
// full aquifer carving: final_density alone decides solid vs fluid, and the
// fluid is always whatever FluidLevelSampler.DefaultLevel says for that y.
type SeaLevelSampler struct {
	Fluid FluidLevelSampler
}

// Apply implements Sampler.
func (s SeaLevelSampler) Apply(x, y, z int, finalDensity float64) (worldgen.BlockState, bool) {
	if finalDensity > 0 {
		return worldgen.Air, false
	}
	return s.Fluid.BlockStateAt(y, s.Fluid.DefaultLevel(y))
}

// WorldSampler implements the full 3-D aquifer grid described by the
// source: fluid seed positions jittered within 16x12x16 cells, levels
// estimated per-seed and cached, and nearby blocks blended between the
// three closest seeds via calc_density.
type WorldSampler struct {
	Fluid    FluidLevelSampler
	Config   *noise.Config
	Barrier  *noise.DoublePerlinNoiseSampler
	Router   RouterRefs

	levelCache map[seedKey]FluidLevel
}

// RouterRefs is the subset of router.Router density references the aquifer
// needs; kept as plain fields here (rather than importing pkg/density/router
// directly) so aquifer has no dependency on the router package's variant
// machinery.
type RouterRefs struct {
	FinalDensity          density.Node
	FluidLevelFloodedness density.Node
	FluidLevelSpread      density.Node
	Erosion               density.Node
	Depth                 density.Node
	Lava                  density.Node
}

type seedKey struct{ x, y, z int32 }

type seedInfo struct {
	cx, cy, cz int32
	dist       float64
	level      FluidLevel
}

// NewWorldSampler builds a WorldSampler; cfg supplies the split_pos-derived
// jitter RNG and barrier is the router's barrier noise reference.
func NewWorldSampler(fluid FluidLevelSampler, cfg *noise.Config, barrier *noise.DoublePerlinNoiseSampler, refs RouterRefs) *WorldSampler {
	return &WorldSampler{
		Fluid:      fluid,
		Config:     cfg,
		Barrier:    barrier,
		Router:     refs,
		levelCache: make(map[seedKey]FluidLevel),
	}
}

const (
	aquiferXZCell = 16
	aquiferYCell  = 12
)

// seedCell returns the coarse grid cell a position falls in.
func seedCell(x, y, z int) (int32, int32, int32) {
	return int32(floorDiv(x, aquiferXZCell)), int32(floorDiv(y, aquiferYCell)), int32(floorDiv(z, aquiferXZCell))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// jitteredSeedPos returns the jittered fluid seed position for grid cell
// (cx,cy,cz), deterministic from split_pos(cx,cy,cz).
func (w *WorldSampler) jitteredSeedPos(cx, cy, cz int32) (int, int, int) {
	rng := w.Config.PositionalRNGAt(cx, cy, cz)
	jx := int(rng.NextLong()%aquiferXZCell + aquiferXZCell) % aquiferXZCell
	jy := int(rng.NextLong()%aquiferYCell + aquiferYCell) % aquiferYCell
	jz := int(rng.NextLong()%aquiferXZCell + aquiferXZCell) % aquiferXZCell
	return int(cx)*aquiferXZCell + jx, int(cy)*aquiferYCell + jy, int(cz)*aquiferXZCell + jz
}

func (w *WorldSampler) levelAt(cx, cy, cz int32) FluidLevel {
	key := seedKey{cx, cy, cz}
	if lvl, ok := w.levelCache[key]; ok {
		return lvl
	}
	sx, sy, sz := w.jitteredSeedPos(cx, cy, cz)
	lvl := w.getFluidLevel(sx, sy, sz)
	w.levelCache[key] = lvl
	return lvl
}

// Apply implements Sampler.
func (w *WorldSampler) Apply(x, y, z int, finalDensity float64) (worldgen.BlockState, bool) {
	if finalDensity > 0 {
		return worldgen.Air, false
	}

	seeds := make([]seedInfo, 0, 27)
	bx, by, bz := seedCell(x, y, z)
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dz := int32(-1); dz <= 1; dz++ {
				cx, cy, cz := bx+dx, by+dy, bz+dz
				sx, sy, sz := w.jitteredSeedPos(cx, cy, cz)
				d2 := sq(float64(sx-x)) + sq(float64(sy-y)) + sq(float64(sz-z))
				seeds = append(seeds, seedInfo{cx, cy, cz, d2, w.levelAt(cx, cy, cz)})
			}
		}
	}

	sortByDist(seeds)
	s1, s2, s3 := seeds[0], seeds[1], seeds[2]

	state, ok := w.Fluid.BlockStateAt(y, s1.level)
	if !ok {
		return worldgen.Air, false
	}
	if s1.level.Fluid == Lava {
		return state, true
	}

	d1 := math.Sqrt(s1.dist)
	d2 := math.Sqrt(s2.dist)
	weight := 1 - math.Abs(d1-d2)/25
	if weight <= 0 {
		return state, true
	}
	if s1.level.Fluid == Water && isLavaDirectlyBelow(s1.level, s2.level) {
		return state, true
	}

	barrier := w.Barrier.Sample(float64(x), float64(y), float64(z))

	contribution := calcDensity(y, s1.level, s2.level, barrier) * weight
	if finalDensity+contribution > 0 {
		return worldgen.Air, false
	}

	weight13 := 1 - math.Abs(d1-math.Sqrt(s3.dist))/25
	if weight13 > 0 {
		c13 := calcDensity(y, s1.level, s3.level, barrier) * weight13
		if finalDensity+c13 > 0 {
			return worldgen.Air, false
		}
	}
	weight23 := 1 - math.Abs(d2-math.Sqrt(s3.dist))/25
	if weight23 > 0 {
		c23 := calcDensity(y, s2.level, s3.level, barrier) * weight23
		if finalDensity+c23 > 0 {
			return worldgen.Air, false
		}
	}

	return state, true
}

func sq(v float64) float64 { return v * v }

func isLavaDirectlyBelow(closest, other FluidLevel) bool {
	return closest.Fluid == Water && other.Fluid == Lava && other.Y < closest.Y
}

// effectiveFluidAt returns the fluid level's type at y, or NoFluid if y is
// above the level's ceiling — the Go counterpart to the source's
// FluidLevel::get_block_state(y), which returns AIR once y reaches max_y.
func effectiveFluidAt(level FluidLevel, y int) FluidType {
	if y > level.Y {
		return NoFluid
	}
	return level.Fluid
}

// calcDensity computes the density contribution for a pair of candidate
// fluid levels per the source's calculate_density: if the two levels put a
// genuine lava/water pair at this exact y, the contribution is a flat 2.0.
// Otherwise it folds the vertical gap between the two ceilings through one
// of four ratio bands (chosen by the sign of the y-vs-average-level offset
// and by the sign of the half-gap-minus-offset residual), gates in the
// barrier sample only when that ratio falls in [-2, 2], and doubles the
// sum.
func calcDensity(y int, a, b FluidLevel, barrierSample float64) float64 {
	fa, fb := effectiveFluidAt(a, y), effectiveFluidAt(b, y)
	if (fa == Lava && fb == Water) || (fa == Water && fb == Lava) {
		return 2
	}

	levelDiff := math.Abs(float64(a.Y - b.Y))
	if levelDiff == 0 {
		return 0
	}

	avgLevel := 0.5 * float64(a.Y+b.Y)
	scaledLevel := float64(y) + 0.5 - avgLevel
	halvedDiff := levelDiff / 2
	o := halvedDiff - math.Abs(scaledLevel)

	var q float64
	if scaledLevel > 0 {
		if o > 0 {
			q = o / 1.5
		} else {
			q = o / 2.5
		}
	} else {
		p := 3 + o
		if p > 0 {
			q = p / 3
		} else {
			q = p / 10
		}
	}

	r := 0.0
	if q >= -2 && q <= 2 {
		r = barrierSample
	}
	return 2 * (r + q)
}

// sortByDist sorts seeds ascending by squared distance; small fixed-size
// slice so a simple insertion sort is clearer than pulling in sort.Slice
// with a closure.
func sortByDist(seeds []seedInfo) {
	for i := 1; i < len(seeds); i++ {
		for j := i; j > 0 && seeds[j].dist < seeds[j-1].dist; j-- {
			seeds[j], seeds[j-1] = seeds[j-1], seeds[j]
		}
	}
}
