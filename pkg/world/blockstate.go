package world

import "github.com/voxelforge/worldgen/pkg/worldgen"

// BlockState re-exports worldgen's interned block-state id so callers
// outside pkg/worldgen don't need to import it directly.
type BlockState = worldgen.BlockState

// The interned block-state table. It is a fixed set of ids built once at
// process startup and treated as read-only from then on; no chunk or
// generator mutates it.
const (
	Air        BlockState = worldgen.Air
	Stone      BlockState = 1
	Dirt       BlockState = 2
	Grass      BlockState = 3
	Sand       BlockState = 4
	Bedrock    BlockState = 5
	Water      BlockState = 6
	Lava       BlockState = 7
	CopperOre  BlockState = 8
	RawCopper  BlockState = 9
	IronOre    BlockState = 10
	RawIron    BlockState = 11
)
