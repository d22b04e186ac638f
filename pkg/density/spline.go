package density

import "sort"

// SplinePoint is one control point of a Spline: a location, either a fixed
// value or a nested spline evaluated recursively, and the derivative used to
// extrapolate linearly outside the point list.
type SplinePoint struct {
	Location   float64
	Value      float64 // used when NestedSpline == nil
	NestedSpline *Spline
	Derivative float64
}

// valueAt resolves this point's contribution at the current position. A
// nested spline ignores the parent's already-resolved coord entirely and
// samples itself from scratch against its own Input, exactly like any other
// top-level Spline.Sample call.
func (p *SplinePoint) valueAt(ctx *EvalContext, coord float64) float64 {
	if p.NestedSpline != nil {
		return p.NestedSpline.Sample(ctx)
	}
	return p.Value
}

// Spline evaluates Input, locates the bracketing pair of Points by location,
// and blends between them with a Hermite curve; outside the range it
// extrapolates linearly using the outermost point's derivative. Points must
// be strictly increasing in Location.
type Spline struct {
	Input  Node
	Points []SplinePoint
}

// Sample evaluates the spline at the current position.
func (s *Spline) Sample(ctx *EvalContext) float64 {
	return s.evalAt(ctx, s.Input.Sample(ctx))
}

// Fill evaluates the spline across a batch.
func (s *Spline) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	FillDefault(s, ctx, arr, applier)
}

func (s *Spline) evalAt(ctx *EvalContext, location float64) float64 {
	n := len(s.Points)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return s.Points[0].valueAt(ctx, location)
	}

	idx := sort.Search(n, func(i int) bool { return s.Points[i].Location > location })

	if idx == 0 {
		p := s.Points[0]
		next := s.Points[1]
		v := p.valueAt(ctx, location)
		return v + p.Derivative*(location-p.Location)*derivScale(p, next)
	}
	if idx == n {
		p := s.Points[n-1]
		prev := s.Points[n-2]
		v := p.valueAt(ctx, location)
		return v + p.Derivative*(location-p.Location)*derivScale(prev, p)
	}

	left := s.Points[idx-1]
	right := s.Points[idx]
	return hermiteSegment(ctx, left, right, location)
}

// derivScale is 1 for a plain linear extrapolation; kept as its own helper
// so the extrapolation slope matches how the source treats left/right pairs.
func derivScale(SplinePoint, SplinePoint) float64 { return 1 }

func hermiteSegment(ctx *EvalContext, left, right SplinePoint, location float64) float64 {
	span := right.Location - left.Location
	if span <= 0 {
		return left.valueAt(ctx, location)
	}
	t := (location - left.Location) / span
	vL := left.valueAt(ctx, location)
	vR := right.valueAt(ctx, location)

	dL := left.Derivative*span - (vR - vL)
	dR := -right.Derivative*span + (vR - vL)

	base := lerpF(t, vL, vR)
	correction := t * (1 - t) * lerpF(t, dL, dR)
	return base + correction
}

func lerpF(t, a, b float64) float64 {
	return a + t*(b-a)
}
