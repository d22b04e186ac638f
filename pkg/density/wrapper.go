package density

// WrapperKind tags a Wrapper node with the cache strategy it asks the
// resolver to apply. The node itself carries no cache state; only the
// strategy tag and the child to evaluate on a miss.
type WrapperKind int

const (
	// CacheOnce2D remembers one value per (X,Z) column for the duration of
	// the current context — used for surface-only density functions that
	// never vary with Y.
	CacheOnce2D WrapperKind = iota
	// CacheFlat remembers one value per column like CacheOnce2D but backs a
	// coarser horizontal grid (biome-resolution, not block-resolution).
	CacheFlat
	// CacheOnce remembers exactly one value for the entire Fill/Sample pass,
	// regardless of position; it is only valid when the caller guarantees
	// the wrapped child is position-independent over that pass (e.g. the
	// same cell corner reused across an interpolation pass).
	CacheOnce
	// CacheCell stores one value per evaluation cell for reuse across the
	// cell's interior samples.
	CacheCell
	// CacheInterpolated marks the child as a cell-corner function that the
	// resolver should evaluate only at the 8 corners of the current cell and
	// interpolate between for interior positions.
	CacheInterpolated
)

// Wrapper defers to ctx.Resolver for cached evaluation, falling back to
// sampling Input directly when no resolver is installed (one-shot sampling,
// tests). The resolver owns the cache arena; Wrapper itself is stateless and
// safe to share across concurrent chunk generators.
type Wrapper struct {
	Input Node
	Kind  WrapperKind
}

// Sample resolves through ctx.Resolver when present, otherwise samples Input
// directly.
func (w *Wrapper) Sample(ctx *EvalContext) float64 {
	if ctx.Resolver != nil {
		return ctx.Resolver.Resolve(w, ctx)
	}
	return w.Input.Sample(ctx)
}

// Fill resolves through ctx.Resolver when present, otherwise fills from
// Input directly.
func (w *Wrapper) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	if ctx.Resolver != nil {
		ctx.Resolver.FillResolve(w, ctx, arr, applier)
		return
	}
	w.Input.Fill(ctx, arr, applier)
}
