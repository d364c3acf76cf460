package volume

import "testing"

// patternPager fills chunks with a deterministic coordinate-derived pattern
// and records paging activity.
type patternPager struct {
	pageIns  int
	pageOuts int
}

func (p *patternPager) PageIn(region Region, chunk *Chunk) {
	p.pageIns++
	for z := region.Lower.Z; z <= region.Upper.Z; z++ {
		for y := region.Lower.Y; y <= region.Upper.Y; y++ {
			for x := region.Lower.X; x <= region.Upper.X; x++ {
				v := EmptyVoxel()
				if (x+y+z)%2 == 0 {
					v = SolidVoxel(MaterialStone)
				}
				chunk.SetVoxel(x-region.Lower.X, y-region.Lower.Y, z-region.Lower.Z, v)
			}
		}
	}
}

func (p *patternPager) PageOut(region Region, chunk *Chunk) {
	p.pageOuts++
}

func TestVoxelReadPagesInOnce(t *testing.T) {
	pager := &patternPager{}
	pv := NewPagedVolume(pager, 0)

	// Many reads inside one chunk must trigger exactly one page-in.
	for i := int32(0); i < ChunkSide; i++ {
		pv.Voxel(i, 0, 0)
	}
	if pager.pageIns != 1 {
		t.Errorf("Expected 1 page-in, got %d", pager.pageIns)
	}
	if pv.ChunkCount() != 1 {
		t.Errorf("Expected 1 resident chunk, got %d", pv.ChunkCount())
	}

	// Crossing a chunk boundary pages in the neighbor.
	pv.Voxel(ChunkSide, 0, 0)
	if pager.pageIns != 2 {
		t.Errorf("Expected 2 page-ins after crossing boundary, got %d", pager.pageIns)
	}
}

func TestVoxelLocalTranslation(t *testing.T) {
	pv := NewPagedVolume(&patternPager{}, 0)

	// The pattern is defined in world coordinates, so reads across chunk
	// boundaries only agree with it if the chunk-local translation is right.
	coords := [][3]int32{{0, 0, 0}, {31, 31, 31}, {32, 0, 0}, {63, 40, 33}, {-1, -1, -1}, {-32, 5, 70}}
	for _, c := range coords {
		got := pv.Voxel(c[0], c[1], c[2]).IsSolid()
		want := (c[0]+c[1]+c[2])%2 == 0
		if got != want {
			t.Errorf("Voxel(%d,%d,%d) solid=%v, expected %v", c[0], c[1], c[2], got, want)
		}
	}
}

func TestSetVoxelRoundTrip(t *testing.T) {
	pv := NewPagedVolume(&patternPager{}, 0)

	pv.SetVoxel(10, 20, 30, SolidVoxel(MaterialOre))
	v := pv.Voxel(10, 20, 30)
	if v.Material != MaterialOre || !v.IsSolid() {
		t.Errorf("Expected solid ore back, got %+v", v)
	}
}

func TestEvictionCallsPageOut(t *testing.T) {
	pager := &patternPager{}
	pv := NewPagedVolume(pager, 2)

	pv.Voxel(0, 0, 0)
	pv.Voxel(ChunkSide, 0, 0)
	pv.Voxel(2*ChunkSide, 0, 0) // exceeds the limit of 2

	if pager.pageOuts != 1 {
		t.Errorf("Expected 1 page-out, got %d", pager.pageOuts)
	}
	if pv.ChunkCount() != 2 {
		t.Errorf("Expected 2 resident chunks, got %d", pv.ChunkCount())
	}
}

func TestEvictionDropsLeastRecentlyUsed(t *testing.T) {
	pager := &patternPager{}
	pv := NewPagedVolume(pager, 2)

	pv.Voxel(0, 0, 0)           // chunk A
	pv.Voxel(ChunkSide, 0, 0)   // chunk B
	pv.Voxel(0, 0, 0)           // touch A again, B is now oldest
	pv.Voxel(2*ChunkSide, 0, 0) // chunk C, evicts B

	ins := pager.pageIns
	pv.Voxel(0, 0, 0) // A must still be resident
	if pager.pageIns != ins {
		t.Error("Recently used chunk was evicted")
	}
	pv.Voxel(ChunkSide, 0, 0) // B must have been dropped
	if pager.pageIns != ins+1 {
		t.Error("Least recently used chunk was not evicted")
	}
}

func TestRegenerationIsIdentical(t *testing.T) {
	pager := &patternPager{}
	pv := NewPagedVolume(pager, 0)

	before := make([]Voxel, 0, 64)
	for i := int32(0); i < 64; i++ {
		before = append(before, pv.Voxel(i%ChunkSide, i/8, i%8))
	}

	pv.Flush()
	if pv.ChunkCount() != 0 {
		t.Fatalf("Expected empty volume after flush, got %d chunks", pv.ChunkCount())
	}

	for i := int32(0); i < 64; i++ {
		after := pv.Voxel(i%ChunkSide, i/8, i%8)
		if after != before[i] {
			t.Fatalf("Regenerated voxel %d differs: %+v vs %+v", i, after, before[i])
		}
	}
}

func TestPrefetchMaterializesRegion(t *testing.T) {
	pager := &patternPager{}
	pv := NewPagedVolume(pager, 0)

	pv.Prefetch(NewRegion(0, 0, 0, 127, 127, 63))
	// 128/32 = 4 chunks on x and y, 64/32 = 2 on z.
	if pager.pageIns != 4*4*2 {
		t.Errorf("Expected 32 page-ins, got %d", pager.pageIns)
	}

	ins := pager.pageIns
	pv.Voxel(100, 100, 50)
	if pager.pageIns != ins {
		t.Error("Prefetched chunk was paged in again on read")
	}
}

func TestFlushRegion(t *testing.T) {
	pager := &patternPager{}
	pv := NewPagedVolume(pager, 0)

	pv.Voxel(0, 0, 0)
	pv.Voxel(4*ChunkSide, 0, 0)

	pv.FlushRegion(NewRegion(0, 0, 0, ChunkSide-1, ChunkSide-1, ChunkSide-1))
	if pv.ChunkCount() != 1 {
		t.Errorf("Expected 1 chunk left, got %d", pv.ChunkCount())
	}
	if pager.pageOuts != 1 {
		t.Errorf("Expected 1 page-out, got %d", pager.pageOuts)
	}
}

func TestChunkCoordNegative(t *testing.T) {
	cases := []struct {
		in   Vector3i
		want Vector3i
	}{
		{Vector3i{0, 0, 0}, Vector3i{0, 0, 0}},
		{Vector3i{31, 31, 31}, Vector3i{0, 0, 0}},
		{Vector3i{32, 0, 0}, Vector3i{1, 0, 0}},
		{Vector3i{-1, -1, -1}, Vector3i{-1, -1, -1}},
		{Vector3i{-32, 0, 0}, Vector3i{-1, 0, 0}},
		{Vector3i{-33, 0, 0}, Vector3i{-2, 0, 0}},
	}
	for _, c := range cases {
		if got := chunkCoord(c.in); got != c.want {
			t.Errorf("chunkCoord(%v) = %v, expected %v", c.in, got, c.want)
		}
	}
}

func TestRegionHelpers(t *testing.T) {
	r := NewRegion(0, 0, 0, 127, 127, 63)
	if r.Width() != 128 || r.Height() != 128 || r.Depth() != 64 {
		t.Errorf("Unexpected extents: %dx%dx%d", r.Width(), r.Height(), r.Depth())
	}
	if !r.Contains(Vector3i{127, 127, 63}) {
		t.Error("Upper bound should be inclusive")
	}
	if r.Contains(Vector3i{128, 0, 0}) {
		t.Error("Point past upper bound should be outside")
	}
	if !r.Valid() {
		t.Error("Region should be valid")
	}
	if (Region{Lower: Vector3i{1, 0, 0}, Upper: Vector3i{0, 0, 0}}).Valid() {
		t.Error("Inverted region should be invalid")
	}
}
