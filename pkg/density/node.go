// Package density implements the declarative density-function graph: a DAG
// of pure position→float64 nodes (noise, arithmetic, splines, wrappers,
// range/clamp helpers, warps) that the router assembles into named terrain
// outputs.
package density

// Pos is a world-space sample position. Density functions operate on plain
// float64 coordinates; callers are responsible for any block/biome-grid
// scaling before calling Sample.
type Pos struct {
	X, Y, Z float64
}

// Applier supplies the position to sample for index i of a Fill batch.
type Applier func(i int) Pos

// WrapperResolver lets a per-chunk evaluation context intercept Wrapper
// nodes and answer them from a cache instead of recomputing the child. It is
// implemented by worldgen.Generator; outside of chunk generation (one-shot
// sampling, tests) a nil resolver makes Wrapper fall through to its child.
type WrapperResolver interface {
	Resolve(w *Wrapper, ctx *EvalContext) float64
	FillResolve(w *Wrapper, ctx *EvalContext, arr []float64, applier Applier)
}

// EvalContext carries the current sample position and, during chunk
// generation, a resolver that backs Wrapper nodes with per-chunk cache
// state. The cache state itself lives in the resolver's own arena — never
// inside the immutable Node graph — so the same graph can be evaluated
// concurrently by independent chunk generators.
type EvalContext struct {
	X, Y, Z  float64
	Resolver WrapperResolver
}

// Pos returns the context's current position.
func (c *EvalContext) Pos() Pos { return Pos{c.X, c.Y, c.Z} }

// At returns a copy of the context repositioned to p.
func (c *EvalContext) At(p Pos) *EvalContext {
	return &EvalContext{X: p.X, Y: p.Y, Z: p.Z, Resolver: c.Resolver}
}

// Node is a density-function graph node: a pure, deterministic function of
// position. Sampling must never mutate shared state; any per-chunk caching
// goes through a Wrapper node's resolver.
type Node interface {
	Sample(ctx *EvalContext) float64
	Fill(ctx *EvalContext, arr []float64, applier Applier)
}

// FillDefault is the generic Fill behaviour shared by most leaf/combinator
// nodes: sample once per index via Sample. Wrapper and cache-aware nodes
// override this to batch more efficiently.
func FillDefault(n Node, ctx *EvalContext, arr []float64, applier Applier) {
	for i := range arr {
		p := applier(i)
		arr[i] = n.Sample(ctx.At(p))
	}
}

// Constant always returns the same value.
type Constant struct{ Value float64 }

// Sample returns the constant value.
func (c *Constant) Sample(*EvalContext) float64 { return c.Value }

// Fill fills arr with the constant value.
func (c *Constant) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	for i := range arr {
		arr[i] = c.Value
	}
}
