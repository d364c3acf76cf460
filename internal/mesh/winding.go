package mesh

// WindingPolicy decides the order in which a triangle's three indices are
// visited during assembly. The first visited index is the provoking vertex,
// whose material classifies the whole triangle.
type WindingPolicy func(i0, i1, i2 uint32) (uint32, uint32, uint32)

// ReverseWinding visits each triangle back to front. The extractor's
// coordinate convention leaves triangles facing the host's wrong way;
// reversing the walk corrects that. This is the policy production code uses.
func ReverseWinding(i0, i1, i2 uint32) (uint32, uint32, uint32) {
	return i2, i1, i0
}

// IdentityWinding keeps the extraction order, for hosts whose handedness
// matches the extractor's.
func IdentityWinding(i0, i1, i2 uint32) (uint32, uint32, uint32) {
	return i0, i1, i2
}
