package mesh

import (
	"VoxelTerrain/internal/logger"
	"VoxelTerrain/internal/volume"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// WorldScale converts voxel-grid units to world distance units when
// vertices are emitted.
const WorldScale float32 = 100.0

// Section is the renderable geometry for one material: positions, indices,
// flat normals and tangents. UVs and Colors are always empty; they exist so
// the host's mesh-section call has every buffer it expects.
type Section struct {
	MaterialIndex int

	Vertices []mgl32.Vec3
	Indices  []int32
	Normals  []mgl32.Vec3
	Tangents []mgl32.Vec3
	UVs      []mgl32.Vec2
	Colors   [][4]uint8
}

// TriangleCount returns the number of triangles in the section.
func (s Section) TriangleCount() int {
	return len(s.Indices) / 3
}

// BuildSections partitions the extracted mesh into one section per material
// index in [0, materialCount). Material ids are 1-indexed against the
// section list because air (material 0) never renders. Every triangle lands
// in exactly one section; materials without triangles still get an empty
// section so index-based material bindings stay valid.
//
// The whole mesh is walked once and triangles are bucketed by their
// provoking vertex's material.
func BuildSections(m ExtractedMesh, materialCount int, policy WindingPolicy) []Section {
	if policy == nil {
		policy = ReverseWinding
	}

	sections := make([]Section, materialCount)
	for i := range sections {
		sections[i].MaterialIndex = i
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		p0, p1, p2 := policy(m.Indices[i], m.Indices[i+1], m.Indices[i+2])

		material := m.Vertices[p0].Material
		sectionIdx := int(material) - 1
		if sectionIdx < 0 || sectionIdx >= materialCount {
			continue
		}
		s := &sections[sectionIdx]

		for _, idx := range [3]uint32{p0, p1, p2} {
			s.Indices = append(s.Indices, int32(len(s.Vertices)))
			s.Vertices = append(s.Vertices, m.Vertices[idx].Position.Mul(WorldScale))
		}

		// Flat shading: one normal and tangent per triangle, computed from
		// the unscaled triangle edges and copied to all three vertices.
		v0 := m.Vertices[m.Indices[i]].Position
		v1 := m.Vertices[m.Indices[i+1]].Position
		v2 := m.Vertices[m.Indices[i+2]].Position
		edge01 := v1.Sub(v0)
		edge02 := v2.Sub(v0)
		tangent := edge01.Normalize()
		normal := edge01.Cross(edge02).Normalize()
		for j := 0; j < 3; j++ {
			s.Normals = append(s.Normals, normal)
			s.Tangents = append(s.Tangents, tangent)
		}
	}

	if logger.Log != nil {
		for i := range sections {
			logger.Log.Debug("Assembled mesh section",
				zap.Int("material", i),
				zap.Int("triangles", sections[i].TriangleCount()))
		}
	}
	return sections
}

// ExtractSections pages in the region, extracts the cubic surface and
// builds per-material sections in one call. This is the whole pipeline a
// terrain host needs.
func ExtractSections(vol *volume.PagedVolume, region volume.Region) []Section {
	vol.Prefetch(region)
	extracted := ExtractCubic(vol, region)
	return BuildSections(extracted, volume.MaterialCount, ReverseWinding)
}
