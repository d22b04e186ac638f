package light

// ChunkBoundaryPropagation is a light increase that crossed out of the
// chunk it was computed in. The caller is expected to look up the
// neighbouring ChunkLightData named by Direction and feed it back in
// through ApplyBoundary, once that neighbour is loaded.
type ChunkBoundaryPropagation struct {
	Direction  Direction
	X, Y, Z    int
	Level      int
}

type queueItem struct {
	x, y, z int
	level   int
}

// NeighbourSlot indexes the four horizontal neighbours passed to Initialize.
type NeighbourSlot int

const (
	NeighbourNorth NeighbourSlot = iota // -Z
	NeighbourSouth                     // +Z
	NeighbourWest                      // -X
	NeighbourEast                      // +X
)

// Initialize seeds this chunk's sky light from column heights, relaxes it
// with a breadth-first increase pass, pulls in any brighter light sitting
// just across the four loaded horizontal neighbours, and relaxes again.
// Neighbours not yet loaded are passed as nil and simply skipped — the
// caller is expected to re-run the edge exchange once they load.
//
// It returns every increase that tried to cross out of this chunk, so the
// caller can apply it to whichever chunk lies in that direction.
func (c *ChunkLightData) Initialize(blocks ColumnSource, neighbours [4]*ChunkLightData) []ChunkBoundaryPropagation {
	maxY := blocks.MaxY()

	var seed []queueItem
	for lz := 0; lz < 16; lz++ {
		for lx := 0; lx < 16; lx++ {
			wx := int(c.ChunkX)*16 + lx
			wz := int(c.ChunkZ)*16 + lz
			top := blocks.HighestOpaqueY(wx, wz)

			for y := maxY; y > top; y-- {
				c.SetLightLevel(lx, y, lz, FullBright)
			}

			if top < maxY {
				seed = append(seed, queueItem{x: wx, y: top + 1, z: wz, level: FullBright})
			}
		}
	}

	results := c.propagateIncrease(blocks, seed)

	for slot, nb := range neighbours {
		if nb == nil {
			continue
		}
		pulled := c.exchangeEdge(blocks, nb, NeighbourSlot(slot))
		results = append(results, c.propagateIncrease(blocks, pulled)...)
	}

	return results
}

// exchangeEdge pulls light across the shared edge with neighbour nb,
// one step dimmer than whatever nb already holds there. The subtraction
// saturates at zero before the comparison runs, so a neighbour edge sitting
// at level 0 still produces a (harmless) zero-level candidate instead of
// underflowing — the comparison below then discards it as a no-op.
func (c *ChunkLightData) exchangeEdge(blocks ColumnSource, nb *ChunkLightData, slot NeighbourSlot) []queueItem {
	minY, maxY := blocks.MinY(), blocks.MaxY()
	var out []queueItem

	for i := 0; i < 16; i++ {
		var ownLX, ownLZ, nbLX, nbLZ int
		switch slot {
		case NeighbourNorth:
			ownLX, ownLZ, nbLX, nbLZ = i, 0, i, 15
		case NeighbourSouth:
			ownLX, ownLZ, nbLX, nbLZ = i, 15, i, 0
		case NeighbourWest:
			ownLX, ownLZ, nbLX, nbLZ = 0, i, 15, i
		case NeighbourEast:
			ownLX, ownLZ, nbLX, nbLZ = 15, i, 0, i
		}

		for y := minY; y <= maxY; y++ {
			nbLevel := nb.GetLightLevel(nbLX, y, nbLZ)
			candidate := saturatingSub(nbLevel, 1)
			current := c.GetLightLevel(ownLX, y, ownLZ)
			if candidate <= current {
				continue
			}
			wx := int(c.ChunkX)*16 + ownLX
			wz := int(c.ChunkZ)*16 + ownLZ
			if blocks.IsOpaque(wx, y, wz) {
				continue
			}
			c.SetLightLevel(ownLX, y, ownLZ, candidate)
			out = append(out, queueItem{x: wx, y: y, z: wz, level: candidate})
		}
	}
	return out
}

func saturatingSub(a, b int) int {
	v := a - b
	if v < 0 {
		return 0
	}
	return v
}

// propagateIncrease relaxes a FIFO queue of light increases outward in the
// fixed direction order +X,-X,+Y,-Y,+Z,-Z. Any increase whose target cell
// falls outside this chunk's own 16x16 footprint is not applied here — it
// is reported back to the caller as a ChunkBoundaryPropagation instead.
func (c *ChunkLightData) propagateIncrease(blocks ColumnSource, queue []queueItem) []ChunkBoundaryPropagation {
	minY, maxY := blocks.MinY(), blocks.MaxY()
	var crossed []ChunkBoundaryPropagation

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		target := item.level - 1
		if target <= 0 {
			continue
		}

		for dir := Direction(0); dir < 6; dir++ {
			dx, dy, dz := dir.offset()
			nx, ny, nz := item.x+dx, item.y+dy, item.z+dz

			if ny < minY || ny > maxY {
				continue
			}

			localX := floorMod(nx, 16)
			localZ := floorMod(nz, 16)
			chunkX := floorDiv(nx, 16)
			chunkZ := floorDiv(nz, 16)
			if int32(chunkX) != c.ChunkX || int32(chunkZ) != c.ChunkZ {
				crossed = append(crossed, ChunkBoundaryPropagation{
					Direction: dir, X: nx, Y: ny, Z: nz, Level: target,
				})
				continue
			}

			if blocks.IsOpaque(nx, ny, nz) {
				continue
			}
			if c.GetLightLevel(localX, ny, localZ) >= target {
				continue
			}
			c.SetLightLevel(localX, ny, localZ, target)
			queue = append(queue, queueItem{x: nx, y: ny, z: nz, level: target})
		}
	}
	return crossed
}

// ApplyBoundary applies a propagation record handed back from a
// neighbouring chunk's Initialize/propagateIncrease pass, relaxing it
// further within this chunk.
func (c *ChunkLightData) ApplyBoundary(blocks ColumnSource, p ChunkBoundaryPropagation) []ChunkBoundaryPropagation {
	localX := floorMod(p.X, 16)
	localZ := floorMod(p.Z, 16)
	if blocks.IsOpaque(p.X, p.Y, p.Z) {
		return nil
	}
	if c.GetLightLevel(localX, p.Y, localZ) >= p.Level {
		return nil
	}
	c.SetLightLevel(localX, p.Y, localZ, p.Level)
	return c.propagateIncrease(blocks, []queueItem{{x: p.X, y: p.Y, z: p.Z, level: p.Level}})
}
