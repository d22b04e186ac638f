package density

import "github.com/voxelforge/worldgen/pkg/noise"

// NoiseFn samples a DoublePerlinNoiseSampler at a scaled position.
type NoiseFn struct {
	Sampler *noise.DoublePerlinNoiseSampler
	XZScale float64
	YScale  float64
}

// Sample evaluates the underlying noise at the scaled position.
func (n *NoiseFn) Sample(ctx *EvalContext) float64 {
	return n.Sampler.Sample(ctx.X*n.XZScale, ctx.Y*n.YScale, ctx.Z*n.XZScale)
}

// Fill evaluates the underlying noise across a batch.
func (n *NoiseFn) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	FillDefault(n, ctx, arr, applier)
}

// ShiftedNoise samples a DoublePerlinNoiseSampler at a position offset by
// three child density functions (the 2-D "shift" graph).
type ShiftedNoise struct {
	ShiftX, ShiftY, ShiftZ Node
	Sampler                *noise.DoublePerlinNoiseSampler
	XZScale, YScale        float64
}

// Sample evaluates the shifted-noise node.
func (s *ShiftedNoise) Sample(ctx *EvalContext) float64 {
	x := ctx.X*s.XZScale + s.ShiftX.Sample(ctx)
	y := ctx.Y*s.YScale + s.ShiftY.Sample(ctx)
	z := ctx.Z*s.XZScale + s.ShiftZ.Sample(ctx)
	return s.Sampler.Sample(x, y, z)
}

// Fill evaluates the shifted-noise node across a batch.
func (s *ShiftedNoise) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	FillDefault(s, ctx, arr, applier)
}

// ShiftA offsets the X/Z plane using a noise sampler read at (x*0.25,0,z*0.25).
type ShiftA struct {
	Sampler *noise.DoublePerlinNoiseSampler
}

// Sample evaluates the 2-D X shift.
func (s *ShiftA) Sample(ctx *EvalContext) float64 {
	return s.Sampler.Sample(ctx.X*0.25, 0, ctx.Z*0.25)
}

// Fill evaluates the 2-D X shift across a batch.
func (s *ShiftA) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	FillDefault(s, ctx, arr, applier)
}

// ShiftB offsets the X/Z plane using a noise sampler read at (z*0.25,x*0.25,0),
// the axis-swapped companion to ShiftA.
type ShiftB struct {
	Sampler *noise.DoublePerlinNoiseSampler
}

// Sample evaluates the 2-D Z shift.
func (s *ShiftB) Sample(ctx *EvalContext) float64 {
	return s.Sampler.Sample(ctx.Z*0.25, ctx.X*0.25, 0)
}

// Fill evaluates the 2-D Z shift across a batch.
func (s *ShiftB) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	FillDefault(s, ctx, arr, applier)
}

// InterpolatedNoise samples its noise once at the position scaled by
// XZScale/XZFactor and YScale/YFactor, and multiplies the result by
// XZFactor. It does not interpolate between grid samples itself.
type InterpolatedNoise struct {
	Sampler        *noise.DoublePerlinNoiseSampler
	XZScale, YScale float64
	XZFactor, YFactor float64
}

// Sample evaluates the interpolated-noise node.
func (n *InterpolatedNoise) Sample(ctx *EvalContext) float64 {
	x := ctx.X * n.XZScale / n.XZFactor
	y := ctx.Y * n.YScale / n.YFactor
	z := ctx.Z * n.XZScale / n.XZFactor
	return n.Sampler.Sample(x, y, z) * n.XZFactor
}

// Fill evaluates the interpolated-noise node across a batch.
func (n *InterpolatedNoise) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	FillDefault(n, ctx, arr, applier)
}
