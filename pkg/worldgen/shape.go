// Package worldgen turns the immutable density-function graph built by
// pkg/density/router into concrete per-chunk terrain: it owns the mutable
// cell/interpolation caches a chunk generation pass needs and implements
// density.WrapperResolver so Wrapper nodes in the shared graph resolve
// against those caches without ever storing cache state inside the graph
// itself.
package worldgen

// GenerationShape describes the vertical extent and cell resolution a
// generator evaluates at. HorizontalCellBlockCount and
// VerticalCellBlockCount must each be 4 or 8.
type GenerationShape struct {
	MinY                     int
	Height                   int
	HorizontalCellBlockCount int
	VerticalCellBlockCount   int
}

// HorizontalCellCount is the number of cells spanning one 16-block chunk
// edge.
func (s GenerationShape) HorizontalCellCount() int {
	return 16 / s.HorizontalCellBlockCount
}

// VerticalCellCount is the number of cells spanning the shape's height.
func (s GenerationShape) VerticalCellCount() int {
	return s.Height / s.VerticalCellBlockCount
}

// MaxY returns the exclusive top of the generated column.
func (s GenerationShape) MaxY() int {
	return s.MinY + s.Height
}
