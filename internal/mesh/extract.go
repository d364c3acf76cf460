package mesh

import (
	"VoxelTerrain/internal/volume"

	"github.com/go-gl/mathgl/mgl32"
)

// VoxelSource is anything extraction can sample voxels from. A
// *volume.PagedVolume satisfies it; tests use small fixed grids.
type VoxelSource interface {
	Voxel(x, y, z int32) volume.Voxel
}

// ExtractedVertex is one mesh vertex tagged with the material of the solid
// voxel it belongs to. Positions are in voxel-grid units relative to the
// extraction region's lower corner.
type ExtractedVertex struct {
	Position mgl32.Vec3
	Material volume.Material
}

// ExtractedMesh is the intermediate indexed mesh produced by extraction,
// consumed by BuildSections and then discarded.
type ExtractedMesh struct {
	Vertices []ExtractedVertex
	Indices  []uint32
}

// TriangleCount returns the number of index triples.
func (m ExtractedMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

type vertexKey struct {
	x, y, z  int32
	material volume.Material
}

// quad corner offsets per face, wound counter-clockwise seen from outside
// the cube, with the face's outward direction. Triangles are emitted as
// (0,1,2) and (0,2,3).
var cubeFaces = [6]struct {
	dx, dy, dz int32
	corners    [4][3]int32
}{
	{+1, 0, 0, [4][3]int32{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
	{-1, 0, 0, [4][3]int32{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}},
	{0, +1, 0, [4][3]int32{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}},
	{0, -1, 0, [4][3]int32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{0, 0, +1, [4][3]int32{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},
	{0, 0, -1, [4][3]int32{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}},
}

// ExtractCubic walks the region and emits a blocky iso-surface: one unit
// quad for every face where a solid voxel meets a non-solid one. Quad
// vertices carry the solid voxel's material and are shared between faces of
// the same material. Neighbors just outside the region are sampled from the
// source so border faces are decided by real volume content.
func ExtractCubic(src VoxelSource, region volume.Region) ExtractedMesh {
	var out ExtractedMesh
	seen := make(map[vertexKey]uint32)

	vertexIndex := func(x, y, z int32, m volume.Material) uint32 {
		key := vertexKey{x, y, z, m}
		if idx, ok := seen[key]; ok {
			return idx
		}
		idx := uint32(len(out.Vertices))
		out.Vertices = append(out.Vertices, ExtractedVertex{
			Position: mgl32.Vec3{float32(x), float32(y), float32(z)},
			Material: m,
		})
		seen[key] = idx
		return idx
	}

	for z := region.Lower.Z; z <= region.Upper.Z; z++ {
		for y := region.Lower.Y; y <= region.Upper.Y; y++ {
			for x := region.Lower.X; x <= region.Upper.X; x++ {
				v := src.Voxel(x, y, z)
				if !v.IsSolid() {
					continue
				}
				// Region-local cube origin.
				lx, ly, lz := x-region.Lower.X, y-region.Lower.Y, z-region.Lower.Z

				for _, face := range cubeFaces {
					if src.Voxel(x+face.dx, y+face.dy, z+face.dz).IsSolid() {
						continue
					}
					var quad [4]uint32
					for i, c := range face.corners {
						quad[i] = vertexIndex(lx+c[0], ly+c[1], lz+c[2], v.Material)
					}
					out.Indices = append(out.Indices,
						quad[0], quad[1], quad[2],
						quad[0], quad[2], quad[3])
				}
			}
		}
	}
	return out
}
