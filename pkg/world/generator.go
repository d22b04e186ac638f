package world

import (
	"github.com/sirupsen/logrus"

	"github.com/voxelforge/worldgen/pkg/aquifer"
	"github.com/voxelforge/worldgen/pkg/density"
	"github.com/voxelforge/worldgen/pkg/density/router"
	"github.com/voxelforge/worldgen/pkg/noise"
	"github.com/voxelforge/worldgen/pkg/orevein"
	"github.com/voxelforge/worldgen/pkg/worldgen"
)

// Generator wires the noise configuration, density router, and the
// aquifer/ore-vein overlays into one per-seed object a World generates
// chunks from.
type Generator struct {
	Seed  int64
	Shape worldgen.GenerationShape

	cfg    *noise.Config
	router *router.Router

	aquiferSampler aquifer.Sampler
	veinSampler    *orevein.Sampler
	useAquifer     bool
	useVeins       bool

	log *logrus.Entry
}

// NewGenerator builds a Generator from cfg, registering every named noise
// sampler and assembling the router once.
func NewGenerator(cfg WorldConfig) *Generator {
	shape := worldgen.GenerationShape{
		MinY:                     cfg.MinY,
		Height:                   cfg.Height,
		HorizontalCellBlockCount: cfg.HorizontalCellBlockCount,
		VerticalCellBlockCount:   cfg.VerticalCellBlockCount,
	}

	noiseCfg := noise.NewConfig(cfg.Seed, cfg.Legacy)
	variant := router.Overworld
	switch cfg.Variant {
	case "large_biomes":
		variant = router.LargeBiomes
	case "amplified":
		variant = router.Amplified
	}
	r := router.Build(noiseCfg, variant, cfg.MinY, cfg.Height)

	log := logrus.WithFields(logrus.Fields{
		"component": "generator",
		"seed":      cfg.Seed,
	})

	g := &Generator{
		Seed:       cfg.Seed,
		Shape:      shape,
		cfg:        noiseCfg,
		router:     r,
		useAquifer: cfg.Aquifers,
		useVeins:   cfg.OreVeins,
		log:        log,
	}

	fluid := aquifer.FluidLevelSampler{
		SeaLevel: cfg.SeaLevel, SeaState: Water,
		DeepLevel: cfg.DeepLevel, DeepState: Lava,
	}
	if cfg.Aquifers {
		barrier := noiseCfg.Sampler("aquifer_barrier")
		g.aquiferSampler = aquifer.NewWorldSampler(fluid, noiseCfg, barrier, aquifer.RouterRefs{
			FinalDensity:          r.FinalDensity,
			FluidLevelFloodedness: r.FluidLevelFloodedness,
			FluidLevelSpread:      r.FluidLevelSpread,
			Erosion:               r.Erosion,
			Depth:                 r.Depth,
			Lava:                  r.Lava,
		})
	} else {
		g.aquiferSampler = aquifer.SeaLevelSampler{Fluid: fluid}
	}

	if cfg.OreVeins {
		g.veinSampler = &orevein.Sampler{
			Config: noiseCfg,
			Router: orevein.RouterRefs{
				VeinToggle: r.VeinToggle,
				VeinRidged: r.VeinRidged,
				VeinGap:    r.VeinGap,
			},
			Copper: orevein.OreType{Ore: CopperOre, RawOre: RawCopper, Stone: Stone, MinY: 0, MaxY: 96},
			Iron:   orevein.OreType{Ore: IronOre, RawOre: RawIron, Stone: Stone, MinY: -24, MaxY: 56},
		}
	}

	log.Debug("generator assembled")
	return g
}

// stateSampler adapts the generator's aquifer + ore-vein chain into
// worldgen.StateSampler: a solid/fluid position first offers itself to the
// aquifer, then to the ore-vein overlay, and finally defaults to stone.
type stateSampler struct {
	g *Generator
}

func (s stateSampler) Sample(x, y, z int, finalDensity float64) (worldgen.BlockState, bool) {
	if state, ok := s.g.aquiferSampler.Apply(x, y, z, finalDensity); ok {
		return state, true
	}
	if s.g.veinSampler != nil {
		if state, ok := s.g.veinSampler.Sample(x, y, z); ok {
			return state, true
		}
	}
	return Stone, true
}

// GenerateChunk produces the block data for chunk (cx, cz).
func (g *Generator) GenerateChunk(cx, cz int32) *worldgen.ChunkBlocks {
	g.log.WithFields(logrus.Fields{"cx": cx, "cz": cz}).Debug("generating chunk")
	return worldgen.GenerateChunkBlocks(g.Shape, int(cx), int(cz), g.router.FinalDensity, stateSampler{g: g})
}

// Router exposes the assembled density router for callers that need to
// sample named references directly.
func (g *Generator) Router() *router.Router { return g.router }

// SampleFinalDensity samples the router's final_density at one position
// without building a whole chunk.
func (g *Generator) SampleFinalDensity(x, y, z float64) float64 {
	return g.router.FinalDensity.Sample(&density.EvalContext{X: x, Y: y, Z: z})
}
