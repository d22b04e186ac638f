package light

// ColumnSource is the block data a ChunkLightData initializes sky light
// from. The engine only distinguishes fully opaque from fully transparent
// blocks — it does not model partial attenuation, stained glass, or leaves
// with a reduced light cost.
type ColumnSource interface {
	// IsOpaque reports whether the block at world coordinates (x, y, z)
	// stops sky light from passing through it.
	IsOpaque(x, y, z int) bool
	// HighestOpaqueY returns the y of the highest opaque block in the
	// column at world (x, z), or MinY()-1 if the column holds no opaque
	// block at all.
	HighestOpaqueY(x, z int) int
	MinY() int
	MaxY() int
}
