package density

import "math"

// Clamp bounds its child's output to [Min, Max].
type Clamp struct {
	Input    Node
	Min, Max float64
}

// Sample clamps the child's sampled value.
func (c *Clamp) Sample(ctx *EvalContext) float64 {
	return clampF(c.Input.Sample(ctx), c.Min, c.Max)
}

// Fill fills arr with clamped child values.
func (c *Clamp) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	c.Input.Fill(ctx, arr, applier)
	for i := range arr {
		arr[i] = clampF(arr[i], c.Min, c.Max)
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// UnaryOp selects the shaping function applied by a Unary node.
type UnaryOp int

const (
	UnaryAbs UnaryOp = iota
	UnarySquare
	UnaryCube
	UnaryHalfNeg
	UnaryQuartNeg
	UnarySqueeze
)

// Unary applies a fixed shaping function to its child's output.
type Unary struct {
	Input Node
	Op    UnaryOp
}

func applyUnary(op UnaryOp, x float64) float64 {
	switch op {
	case UnaryAbs:
		return math.Abs(x)
	case UnarySquare:
		return x * x
	case UnaryCube:
		return x * x * x
	case UnaryHalfNeg:
		if x > 0 {
			return x
		}
		return x / 2
	case UnaryQuartNeg:
		if x > 0 {
			return x
		}
		return x / 4
	case UnarySqueeze:
		c := clampF(x, -1, 1)
		return c/2 - c*c*c/24
	default:
		return x
	}
}

// Sample applies the shaping function to the child's sampled value.
func (u *Unary) Sample(ctx *EvalContext) float64 {
	return applyUnary(u.Op, u.Input.Sample(ctx))
}

// Fill applies the shaping function across a batch.
func (u *Unary) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	u.Input.Fill(ctx, arr, applier)
	for i := range arr {
		arr[i] = applyUnary(u.Op, arr[i])
	}
}

// LinearOp selects whether a Linear node adds or multiplies its constant.
type LinearOp int

const (
	LinearAdd LinearOp = iota
	LinearMul
)

// Linear combines its child's output with a constant k via Op.
type Linear struct {
	Input Node
	Op    LinearOp
	K     float64
}

// Sample evaluates the linear combination.
func (l *Linear) Sample(ctx *EvalContext) float64 {
	v := l.Input.Sample(ctx)
	if l.Op == LinearAdd {
		return v + l.K
	}
	return v * l.K
}

// Fill evaluates the linear combination over a batch.
func (l *Linear) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	l.Input.Fill(ctx, arr, applier)
	if l.Op == LinearAdd {
		for i := range arr {
			arr[i] += l.K
		}
	} else {
		for i := range arr {
			arr[i] *= l.K
		}
	}
}

// BinaryOp selects how a Binary node combines its two children.
type BinaryOp int

const (
	BinaryAdd BinaryOp = iota
	BinaryMul
	BinaryMin
	BinaryMax
)

// Binary combines two child nodes element-wise.
type Binary struct {
	A, B Node
	Op   BinaryOp
}

func combine(op BinaryOp, a, b float64) float64 {
	switch op {
	case BinaryAdd:
		return a + b
	case BinaryMul:
		return a * b
	case BinaryMin:
		return math.Min(a, b)
	case BinaryMax:
		return math.Max(a, b)
	default:
		return a
	}
}

// Sample combines both children at the position.
func (b *Binary) Sample(ctx *EvalContext) float64 {
	return combine(b.Op, b.A.Sample(ctx), b.B.Sample(ctx))
}

// Fill combines both children over a batch.
func (b *Binary) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	tmp := make([]float64, len(arr))
	b.A.Fill(ctx, arr, applier)
	b.B.Fill(ctx, tmp, applier)
	for i := range arr {
		arr[i] = combine(b.Op, arr[i], tmp[i])
	}
}

// Range remaps values: inside [Min, Max) of Input's output it returns the
// In function's value, otherwise Out's value.
type Range struct {
	Input    Node
	Min, Max float64
	In, Out  Node
}

// Sample evaluates the range gate.
func (r *Range) Sample(ctx *EvalContext) float64 {
	v := r.Input.Sample(ctx)
	if v >= r.Min && v < r.Max {
		return r.In.Sample(ctx)
	}
	return r.Out.Sample(ctx)
}

// Fill evaluates the range gate over a batch.
func (r *Range) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	FillDefault(r, ctx, arr, applier)
}

// YClamped linearly interpolates between v0 (at y<=y0) and v1 (at y>=y1)
// based on the context's Y coordinate alone.
type YClamped struct {
	Y0, Y1 float64
	V0, V1 float64
}

// Sample evaluates the Y-based ramp.
func (yc *YClamped) Sample(ctx *EvalContext) float64 {
	if yc.Y1 == yc.Y0 {
		return yc.V0
	}
	t := clampF((ctx.Y-yc.Y0)/(yc.Y1-yc.Y0), 0, 1)
	return yc.V0 + t*(yc.V1-yc.V0)
}

// Fill evaluates the Y-based ramp over a batch.
func (yc *YClamped) Fill(ctx *EvalContext, arr []float64, applier Applier) {
	FillDefault(yc, ctx, arr, applier)
}
