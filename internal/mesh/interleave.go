package mesh

// Interleaved flattens the section into the renderer-friendly layout used
// by GPU vertex buffers: position (3), texture coordinates (2) and normal
// (3) per vertex, eight floats in total. Texture coordinates are zero since
// sections carry no UVs.
func (s Section) Interleaved() []float32 {
	data := make([]float32, 0, len(s.Vertices)*8)
	for i, v := range s.Vertices {
		data = append(data, v.X(), v.Y(), v.Z())
		data = append(data, 0.0, 0.0)
		n := s.Normals[i]
		data = append(data, n.X(), n.Y(), n.Z())
	}
	return data
}

// FlatPositions flattens vertex positions into a plain float32 array, three
// components per vertex.
func (s Section) FlatPositions() []float32 {
	flat := make([]float32, 0, len(s.Vertices)*3)
	for _, v := range s.Vertices {
		flat = append(flat, v.X(), v.Y(), v.Z())
	}
	return flat
}
