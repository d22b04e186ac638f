package aquifer

import (
	"math"

	"github.com/voxelforge/worldgen/pkg/density"
)

const minHeightCell = -64

// estimateSurfaceHeight walks a column downward from the world ceiling and
// returns the highest y at which final_density first becomes non-positive,
// the terrain-surface convention used throughout §4. It samples the router
// graph directly (no resolver) since a one-off column probe does not
// benefit from per-chunk caching.
func (w *WorldSampler) estimateSurfaceHeight(x, z int) int {
	const top = 320
	const bottom = -64
	for y := top; y >= bottom; y-- {
		v := w.Router.FinalDensity.Sample(&density.EvalContext{X: float64(x), Y: float64(y), Z: float64(z)})
		if v <= 0 {
			return y
		}
	}
	return bottom
}

// getFluidLevel estimates the ambient fluid level at (x,y,z) from nearby
// column surface heights: if the query point sits well above the local
// surface, the world's default level applies; otherwise the exact level is
// resolved by getFluidBlockY.
func (w *WorldSampler) getFluidLevel(x, y, z int) FluidLevel {
	surface := w.estimateSurfaceHeight(x, z)
	for dz := -1; dz <= 1; dz++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dz == 0 {
				continue
			}
			s := w.estimateSurfaceHeight(x+dx*4, z+dz*4)
			if s < surface {
				surface = s
			}
		}
	}

	if y-12 > surface {
		return w.Fluid.DefaultLevel(y)
	}
	return w.getFluidBlockY(x, y, z, surface)
}

// getFluidBlockY resolves the exact fluid ceiling at (x,y,z) once the point
// is known to be close enough to the surface to matter, per the
// deep-dark/flooded-ness/noise-based rules in the source.
func (w *WorldSampler) getFluidBlockY(x, y, z int, surfaceEstimate int) FluidLevel {
	erosion := w.Router.Erosion.Sample(&density.EvalContext{X: float64(x), Y: float64(y), Z: float64(z)})
	depth := w.Router.Depth.Sample(&density.EvalContext{X: float64(x), Y: float64(y), Z: float64(z)})

	if erosion < -0.225 && depth > 0.9 {
		return FluidLevel{Y: minHeightCell, Fluid: Lava}
	}

	flood := w.Router.FluidLevelFloodedness.Sample(&density.EvalContext{X: float64(x), Y: float64(y), Z: float64(z)})
	d := flood - clampMap(depth, 0, 1, -0.3, 0.8)
	e := flood - clampMap(depth, -1, 0, 0.3, 0.9)

	if e > 0 {
		return w.Fluid.DefaultLevel(y)
	}
	if d > 0 {
		return w.getNoiseBasedFluidLevel(x, y, z, surfaceEstimate)
	}
	return FluidLevel{Y: minHeightCell, Fluid: Water}
}

func clampMap(v, srcLo, srcHi, dstLo, dstHi float64) float64 {
	t := (v - srcLo) / (srcHi - srcLo)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return dstLo + t*(dstHi-dstLo)
}

// getNoiseBasedFluidLevel computes the noise-warped fluid ceiling described
// by the source: a coarse step function of fluid_level_spread, floored to a
// multiple of 3 and offset by the y/40 band, capped by the column's
// estimated surface.
func (w *WorldSampler) getNoiseBasedFluidLevel(x, y, z, surfaceEstimate int) FluidLevel {
	spread := w.Router.FluidLevelSpread.Sample(&density.EvalContext{
		X: float64(x) / 16, Y: float64(y) / 40, Z: float64(z) / 16,
	})
	step := math.Floor(spread*10.0/3.0)*3 + math.Floor(float64(y)/40)*40 + 20
	level := int(math.Min(float64(surfaceEstimate), step))

	fluid, ok := w.getFluidBlockState(x, y, z, level, Water)
	if !ok {
		fluid = Water
	}
	return FluidLevel{Y: level, Fluid: fluid}
}

// getFluidBlockState picks water vs lava for a resolved level: below y=-10
// with a non-lava default, the router's lava reference can still flip it to
// lava.
func (w *WorldSampler) getFluidBlockState(x, y, z, level int, defaultFluid FluidType) (FluidType, bool) {
	if y >= -10 || defaultFluid == Lava {
		return defaultFluid, true
	}
	s := w.Router.Lava.Sample(&density.EvalContext{
		X: float64(x) / 64, Y: float64(y) / 40, Z: float64(z) / 64,
	})
	if math.Abs(s) > 0.3 {
		return Lava, true
	}
	return defaultFluid, true
}
