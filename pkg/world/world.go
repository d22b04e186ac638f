package world

import (
	"sync"

	"github.com/voxelforge/worldgen/pkg/light"
)

// World owns the chunk cache and the block-level overrides players have
// made on top of generated terrain, guarded by a single RWMutex the way the
// source's chunk/override cache was.
type World struct {
	mu        sync.RWMutex
	cfg       WorldConfig
	gen       *Generator
	chunks    map[ChunkPos]*Chunk
	overrides map[BlockPos]BlockState

	// pending holds boundary light increases that tried to leak into a
	// chunk that wasn't generated yet; they're replayed once that chunk
	// is realized.
	pending map[ChunkPos][]pendingLight
}

type pendingLight struct {
	x, y, z int
	level   int
}

// NewWorld creates a World from cfg, building the density router and
// aquifer/ore-vein overlays once.
func NewWorld(cfg WorldConfig) *World {
	return &World{
		cfg:       cfg,
		gen:       NewGenerator(cfg),
		chunks:    make(map[ChunkPos]*Chunk),
		overrides: make(map[BlockPos]BlockState),
		pending:   make(map[ChunkPos][]pendingLight),
	}
}

// chunkNeighbours returns the four horizontal neighbours of cp that are
// already realized, nil for any that aren't loaded yet. Callers must hold
// w.mu.
func (w *World) chunkNeighbours(cp ChunkPos) [4]*Chunk {
	return [4]*Chunk{
		w.chunks[ChunkPos{X: cp.X, Z: cp.Z - 1}], // north
		w.chunks[ChunkPos{X: cp.X, Z: cp.Z + 1}], // south
		w.chunks[ChunkPos{X: cp.X - 1, Z: cp.Z}], // west
		w.chunks[ChunkPos{X: cp.X + 1, Z: cp.Z}], // east
	}
}

// GetOrGenerateChunk returns the realized Chunk at cp, generating and
// light-initializing it on first access.
func (w *World) GetOrGenerateChunk(cp ChunkPos) *Chunk {
	w.mu.RLock()
	if c, ok := w.chunks[cp]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	w.mu.Lock()
	defer w.mu.Unlock()
	if c, ok := w.chunks[cp]; ok {
		return c
	}

	blocks := w.gen.GenerateChunk(cp.X, cp.Z)
	c := &Chunk{Pos: cp, Blocks: blocks}
	w.applyOverridesLocked(c)
	w.chunks[cp] = c

	crossed := c.InitializeLight(w.chunkNeighbours(cp))
	w.queueBoundaries(cp, crossed)

	pending := w.pending[cp]
	delete(w.pending, cp)
	for _, p := range pending {
		w.applyPendingLocked(cp, c, p)
	}

	return c
}

// applyPendingLocked replays a boundary-light increase that arrived before
// cp was generated: it relaxes c's own light from the edge and forwards
// any further crossings the relaxation produces. Callers must hold w.mu.
func (w *World) applyPendingLocked(cp ChunkPos, c *Chunk, p pendingLight) {
	src := blockSource{c: c}
	crossed := c.Light.ApplyBoundary(src, light.ChunkBoundaryPropagation{
		X: p.x, Y: p.y, Z: p.z, Level: p.level,
	})
	w.queueBoundaries(cp, crossed)
}

// queueBoundaries routes each crossing increase to the neighbouring chunk it
// named, applying it immediately if that chunk is loaded or stashing it for
// later otherwise.
func (w *World) queueBoundaries(from ChunkPos, crossed []light.ChunkBoundaryPropagation) {
	for _, p := range crossed {
		target := ChunkPos{X: int32(floorDivInt(p.X, 16)), Z: int32(floorDivInt(p.Z, 16))}
		if nb, ok := w.chunks[target]; ok {
			src := blockSource{c: nb}
			nb.Light.ApplyBoundary(src, p)
			continue
		}
		w.pending[target] = append(w.pending[target], pendingLight{x: p.X, y: p.Y, z: p.Z, level: p.Level})
	}
}

func floorDivInt(a, b int) int {
	q := a / b
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		q--
	}
	return q
}

func (w *World) applyOverridesLocked(c *Chunk) {
	for pos, state := range w.overrides {
		if pos.Chunk() != c.Pos {
			continue
		}
		lx, ly, lz := pos.Local()
		if ly < int32(c.Blocks.MinY) || int(ly) >= c.Blocks.MinY+c.Blocks.Height {
			continue
		}
		c.Blocks.SetState(int(lx), int(ly), int(lz), state)
	}
}

// GetBlockState returns the block at pos, honoring any override a prior
// SetBlockState/BreakBlock made.
func (w *World) GetBlockState(pos BlockPos) BlockState {
	w.mu.RLock()
	if s, ok := w.overrides[pos]; ok {
		w.mu.RUnlock()
		return s
	}
	w.mu.RUnlock()

	c := w.GetOrGenerateChunk(pos.Chunk())
	lx, ly, lz := pos.Local()
	if int(ly) < c.Blocks.MinY || int(ly) >= c.Blocks.MinY+c.Blocks.Height {
		return Air
	}
	return c.Blocks.BlockAt(int(lx), int(ly), int(lz))
}

// SetBlockState records an override at pos and applies it to the realized
// chunk if one already exists.
func (w *World) SetBlockState(pos BlockPos, state BlockState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.overrides[pos] = state
	if c, ok := w.chunks[pos.Chunk()]; ok {
		lx, ly, lz := pos.Local()
		if int(ly) >= c.Blocks.MinY && int(ly) < c.Blocks.MinY+c.Blocks.Height {
			c.Blocks.SetState(int(lx), int(ly), int(lz), state)
		}
	}
}

// BreakBlock clears pos to air and returns the state that was there.
func (w *World) BreakBlock(pos BlockPos) BlockState {
	prev := w.GetBlockState(pos)
	w.SetBlockState(pos, Air)
	return prev
}

// GetLightLevel returns the sky-light level at pos, 0 if the owning chunk's
// light hasn't been initialized yet.
func (w *World) GetLightLevel(pos BlockPos) int {
	c := w.GetOrGenerateChunk(pos.Chunk())
	if !c.LightReady {
		return 0
	}
	lx, _, lz := pos.Local()
	return c.Light.GetLightLevel(int(lx), int(pos.Y), int(lz))
}

// Modifications returns a copy of every block override recorded so far.
func (w *World) Modifications() map[BlockPos]BlockState {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make(map[BlockPos]BlockState, len(w.overrides))
	for k, v := range w.overrides {
		out[k] = v
	}
	return out
}

// Config returns the WorldConfig this World was built from.
func (w *World) Config() WorldConfig { return w.cfg }
