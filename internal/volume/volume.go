package volume

import (
	"VoxelTerrain/internal/logger"

	"go.uber.org/zap"
)

// Pager fills chunks with content when they are first accessed and is told
// before a chunk is dropped from memory.
type Pager interface {
	// PageIn populates every voxel of chunk for the given world-space
	// region. Voxels are written at chunk-local coordinates
	// (world coordinate minus region.Lower).
	PageIn(region Region, chunk *Chunk)

	// PageOut is called before the chunk is evicted. After it returns the
	// chunk memory must not be touched again.
	PageOut(region Region, chunk *Chunk)
}

// DefaultMaxResidentChunks bounds the working set when the caller does not
// choose a limit. 256 chunks of 32^3 voxels is 16 MiB of voxel data.
const DefaultMaxResidentChunks = 256

// PagedVolume is a sparse, lazily populated voxel container. Chunks are
// materialized through the Pager on first access and evicted
// least-recently-used once the resident limit is exceeded.
//
// A volume is not safe for concurrent use; the caller serializes access.
type PagedVolume struct {
	pager     Pager
	chunks    map[Vector3i]*Chunk
	maxChunks int
	stamp     uint64
}

// NewPagedVolume creates an empty volume backed by the given pager. The
// pager becomes owned by the volume. maxResidentChunks bounds the working
// set; pass 0 for the default.
func NewPagedVolume(pager Pager, maxResidentChunks int) *PagedVolume {
	logger.Init()
	if maxResidentChunks <= 0 {
		maxResidentChunks = DefaultMaxResidentChunks
	}
	return &PagedVolume{
		pager:     pager,
		chunks:    make(map[Vector3i]*Chunk),
		maxChunks: maxResidentChunks,
	}
}

// chunkCoord maps a world voxel coordinate to its chunk coordinate.
// Arithmetic shift keeps this correct for negative coordinates.
func chunkCoord(p Vector3i) Vector3i {
	return Vector3i{p.X >> chunkSideBits, p.Y >> chunkSideBits, p.Z >> chunkSideBits}
}

// chunkRegion is the world-space region a chunk coordinate covers.
func chunkRegion(cc Vector3i) Region {
	lower := Vector3i{cc.X * ChunkSide, cc.Y * ChunkSide, cc.Z * ChunkSide}
	return Region{
		Lower: lower,
		Upper: Vector3i{lower.X + chunkSideMask, lower.Y + chunkSideMask, lower.Z + chunkSideMask},
	}
}

// chunkFor returns the resident chunk for a chunk coordinate, paging it in
// if needed. PageIn runs exactly once per materialized chunk.
func (pv *PagedVolume) chunkFor(cc Vector3i) *Chunk {
	pv.stamp++
	if c, ok := pv.chunks[cc]; ok {
		c.lastAccess = pv.stamp
		return c
	}

	region := chunkRegion(cc)
	c := NewChunk(region)
	pv.pager.PageIn(region, c)
	c.lastAccess = pv.stamp
	pv.chunks[cc] = c
	logger.Log.Debug("Paged in chunk", zap.String("region", region.String()))

	if len(pv.chunks) > pv.maxChunks {
		pv.evictOldest()
	}
	return c
}

// evictOldest drops the least-recently-used chunk through the page-out hook.
func (pv *PagedVolume) evictOldest() {
	var oldestKey Vector3i
	var oldest *Chunk
	for key, c := range pv.chunks {
		if oldest == nil || c.lastAccess < oldest.lastAccess {
			oldestKey, oldest = key, c
		}
	}
	if oldest == nil {
		return
	}
	pv.pager.PageOut(oldest.region, oldest)
	delete(pv.chunks, oldestKey)
	logger.Log.Debug("Evicted chunk", zap.String("region", oldest.region.String()))
}

// Voxel reads the voxel at a world coordinate, materializing its chunk if
// necessary.
func (pv *PagedVolume) Voxel(x, y, z int32) Voxel {
	p := Vector3i{x, y, z}
	c := pv.chunkFor(chunkCoord(p))
	local := p.Sub(c.region.Lower)
	return c.Voxel(local.X, local.Y, local.Z)
}

// SetVoxel writes the voxel at a world coordinate, materializing its chunk
// if necessary.
func (pv *PagedVolume) SetVoxel(x, y, z int32, v Voxel) {
	p := Vector3i{x, y, z}
	c := pv.chunkFor(chunkCoord(p))
	local := p.Sub(c.region.Lower)
	c.SetVoxel(local.X, local.Y, local.Z, v)
}

// Prefetch materializes every chunk overlapping the region so a following
// extraction pass does not interleave generation with sampling.
func (pv *PagedVolume) Prefetch(region Region) {
	lower := chunkCoord(region.Lower)
	upper := chunkCoord(region.Upper)
	for cz := lower.Z; cz <= upper.Z; cz++ {
		for cy := lower.Y; cy <= upper.Y; cy++ {
			for cx := lower.X; cx <= upper.X; cx++ {
				pv.chunkFor(Vector3i{cx, cy, cz})
			}
		}
	}
}

// Flush evicts every resident chunk, invoking the page-out hook for each.
func (pv *PagedVolume) Flush() {
	for key, c := range pv.chunks {
		pv.pager.PageOut(c.region, c)
		delete(pv.chunks, key)
	}
}

// FlushRegion evicts resident chunks that overlap the region.
func (pv *PagedVolume) FlushRegion(region Region) {
	lower := chunkCoord(region.Lower)
	upper := chunkCoord(region.Upper)
	for key, c := range pv.chunks {
		if key.X >= lower.X && key.X <= upper.X &&
			key.Y >= lower.Y && key.Y <= upper.Y &&
			key.Z >= lower.Z && key.Z <= upper.Z {
			pv.pager.PageOut(c.region, c)
			delete(pv.chunks, key)
		}
	}
}

// ChunkCount reports how many chunks are currently resident.
func (pv *PagedVolume) ChunkCount() int {
	return len(pv.chunks)
}
