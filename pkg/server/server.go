// Package server is the thin facade the rest of a voxel-world server would
// sit behind: it exposes exactly the operations spec.md names as the
// boundary between this repository and its external collaborators (TCP
// framing, player connection state, command dispatch, packet encoders,
// inventory mechanics) — get_block, break_block, set_block_state, and
// light.initialize. Everything on the other side of that boundary is out
// of scope here; see DESIGN.md for what was dropped and why.
package server

import (
	"github.com/sirupsen/logrus"

	"github.com/voxelforge/worldgen/pkg/light"
	"github.com/voxelforge/worldgen/pkg/world"
)

// Config is the minimal configuration a Server needs to stand up a World:
// a seed and, optionally, a path to a YAML WorldConfig overriding the
// overworld defaults.
type Config struct {
	Seed           int64
	WorldConfigPath string
}

// Server owns one World and logs through it the way the teacher's
// connection-handling Server logged through its world field, minus the
// network, player and inventory state that lived alongside it there.
type Server struct {
	world *world.World
	log   *logrus.Entry
}

// New builds a Server from cfg. A WorldConfigPath of "" uses
// world.DefaultWorldConfig(cfg.Seed).
func New(cfg Config) (*Server, error) {
	wcfg := world.DefaultWorldConfig(cfg.Seed)
	if cfg.WorldConfigPath != "" {
		loaded, err := world.LoadWorldConfig(cfg.WorldConfigPath)
		if err != nil {
			return nil, err
		}
		wcfg = loaded
	}
	log := logrus.WithFields(logrus.Fields{"component": "server", "seed": wcfg.Seed})
	log.Info("world config resolved")
	return &Server{
		world: world.NewWorld(wcfg),
		log:   log,
	}, nil
}

// GetBlock returns the block state at (x, y, z), generating the owning
// chunk on first access.
func (s *Server) GetBlock(x, y, z int32) world.BlockState {
	return s.world.GetBlockState(world.BlockPos{X: x, Y: y, Z: z})
}

// BreakBlock clears (x, y, z) to air, returning the block state that was
// there. Deciding what item that yields, whether the gamemode suppresses
// drops, and multi-block follow-up (doors, double plants) is the job of
// the external inventory/entity layer this facade does not implement.
func (s *Server) BreakBlock(x, y, z int32) world.BlockState {
	prev := s.world.BreakBlock(world.BlockPos{X: x, Y: y, Z: z})
	s.log.WithFields(logrus.Fields{"x": x, "y": y, "z": z}).Debug("block broken")
	return prev
}

// SetBlockState writes state at (x, y, z), recording it as a standing
// override against regeneration the way the teacher's world package kept
// a player-edit overlay on top of generated terrain.
func (s *Server) SetBlockState(x, y, z int32, state world.BlockState) {
	s.world.SetBlockState(world.BlockPos{X: x, Y: y, Z: z}, state)
}

// GetLightLevel returns the current sky-light level at (x, y, z),
// generating and light-initializing the owning chunk on first access.
func (s *Server) GetLightLevel(x, y, z int32) int {
	return s.world.GetLightLevel(world.BlockPos{X: x, Y: y, Z: z})
}

// LoadChunk forces generation and light-initialization of chunk (cx, cz)
// without reading a block from it, mirroring the teacher's spawn-chunk
// preload.
func (s *Server) LoadChunk(cx, cz int32) {
	s.world.GetOrGenerateChunk(world.ChunkPos{X: cx, Z: cz})
}

// LightPacket returns the wire-ready sky-light packet for chunk (cx, cz),
// generating and light-initializing it first if needed. The packet
// encoder itself — framing this into the game protocol's chunk-data
// packet — belongs to the external collaborator, not this facade.
func (s *Server) LightPacket(cx, cz int32) light.PacketData {
	c := s.world.GetOrGenerateChunk(world.ChunkPos{X: cx, Z: cz})
	return c.Light.PacketData()
}
