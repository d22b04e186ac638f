package density

import "github.com/voxelforge/worldgen/pkg/noise"

// BlendAlpha always evaluates to 1. It exists as a named node so router
// graphs built for worlds with old-chunk blending (a feature this generator
// does not implement) still type-check against the full node catalogue; a
// generator that never blends old chunks can treat it as a constant.
type BlendAlpha struct{}

// Sample always returns 1.
func (BlendAlpha) Sample(*EvalContext) float64 { return 1 }

// Fill fills arr with 1.
func (b BlendAlpha) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	for i := range arr {
		arr[i] = 1
	}
}

// BlendOffset always evaluates to 0, the no-op counterpart to BlendAlpha.
type BlendOffset struct{}

// Sample always returns 0.
func (BlendOffset) Sample(*EvalContext) float64 { return 0 }

// Fill fills arr with 0.
func (b BlendOffset) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	for i := range arr {
		arr[i] = 0
	}
}

// BlendDensity passes its child through unchanged. It marks the point in the
// graph where a generator supporting old-chunk blending would substitute a
// blended value; without that feature it is a transparent wrapper.
type BlendDensity struct{ Input Node }

// Sample passes the child's value through unchanged.
func (b *BlendDensity) Sample(ctx *EvalContext) float64 {
	return b.Input.Sample(ctx)
}

// Fill passes the child's values through unchanged.
func (b *BlendDensity) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	b.Input.Fill(ctx, arr, applier)
}

// WierdKind selects which warp curve a Wierd node applies to its noise
// reading before using it to offset the input density.
type WierdKind int

const (
	// WierdCaves is the wider, gentler warp used by cheese/spaghetti caves.
	WierdCaves WierdKind = iota
	// WierdTunnels is the narrower warp used by tunnel carving.
	WierdTunnels
)

// Wierd warps Input by a 1-D "weirdness" curve read from Noise at the
// current position, producing the ridged cave-shaping signal used by the
// router's cave sub-graph.
type Wierd struct {
	Input   Node
	Noise   *noise.DoublePerlinNoiseSampler
	Kind    WierdKind
}

func wierdCurve(kind WierdKind, n float64) float64 {
	a := abs64(n)
	switch kind {
	case WierdTunnels:
		return 1.5*a - 0.5
	default:
		return 3*a - 2
	}
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Sample evaluates the warp curve and combines it with Input.
func (w *Wierd) Sample(ctx *EvalContext) float64 {
	n := w.Noise.Sample(ctx.X, ctx.Y, ctx.Z)
	return w.Input.Sample(ctx) + wierdCurve(w.Kind, n)
}

// Fill evaluates the warp curve and combines it with Input over a batch.
func (w *Wierd) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	FillDefault(w, ctx, arr, applier)
}

// End produces the end-island density: a simplex-noise ring mask centred on
// the origin, strongest in an annulus and fading both toward the centre
// island and far from it; the strongest value is shifted by -8, divided by
// 64 and clamped to [-100, 100].
type End struct {
	Simplex *noise.SimplexNoiseSampler
}

// Sample evaluates the end-island density at the current position.
func (e *End) Sample(ctx *EvalContext) float64 {
	cellX := int32(ctx.X) >> 4
	cellZ := int32(ctx.Z) >> 4
	return endIslandDensity(e.Simplex, cellX, cellZ)
}

// Fill evaluates the end-island density over a batch.
func (e *End) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	FillDefault(e, ctx, arr, applier)
}

// endIslandDensity approximates the vanilla "distance from the main island"
// shaping function: cells near the origin (within the main-island radius)
// are pushed strongly negative (open air between islands), cells further
// out accumulate a simplex-driven height that decays with distance, and the
// strongest nearby contribution wins.
func endIslandDensity(simplex *noise.SimplexNoiseSampler, cellX, cellZ int32) float64 {
	const mainIslandRadius = 64

	best := -100.0
	for dz := int32(-12); dz <= 12; dz++ {
		for dx := int32(-12); dx <= 12; dx++ {
			gx := cellX + dx
			gz := cellZ + dz
			if gx*gx+gz*gz <= mainIslandRadius*mainIslandRadius {
				continue
			}
			value := simplex.Sample2D(float64(gx), float64(gz)) * 2.6666
			fall := dist2(float64(dx), float64(dz)) * 0.04
			candidate := value - fall
			if candidate > best {
				best = candidate
			}
		}
	}
	return clampF((best-8)/64, -100, 100)
}

func dist2(x, z float64) float64 {
	return x*x + z*z
}
