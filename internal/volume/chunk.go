package volume

// Chunks are cubes of ChunkSide voxels per edge. The side is a power of two
// so world-to-chunk translation reduces to shifts and masks.
const (
	chunkSideBits       = 5
	ChunkSide     int32 = 1 << chunkSideBits
	chunkSideMask int32 = ChunkSide - 1
)

// Chunk is a dense block of voxels, the unit of paging. A chunk is owned by
// the volume that created it; voxels are addressed by chunk-local
// coordinates in [0, ChunkSide).
type Chunk struct {
	region     Region
	voxels     []Voxel
	lastAccess uint64
}

// NewChunk allocates an all-air chunk covering the given region.
func NewChunk(region Region) *Chunk {
	return &Chunk{
		region: region,
		voxels: make([]Voxel, region.Width()*region.Height()*region.Depth()),
	}
}

// Region returns the world-space region this chunk covers.
func (c *Chunk) Region() Region { return c.region }

func (c *Chunk) index(x, y, z int32) int32 {
	// x fastest, then y, then z.
	return x + y*c.region.Width() + z*c.region.Width()*c.region.Height()
}

// Voxel reads the voxel at chunk-local coordinates.
func (c *Chunk) Voxel(x, y, z int32) Voxel {
	return c.voxels[c.index(x, y, z)]
}

// SetVoxel writes the voxel at chunk-local coordinates.
func (c *Chunk) SetVoxel(x, y, z int32, v Voxel) {
	c.voxels[c.index(x, y, z)] = v
}
