package volume

import "fmt"

// Vector3i is an integer position in voxel space.
type Vector3i struct {
	X, Y, Z int32
}

// Add returns the component-wise sum.
func (v Vector3i) Add(o Vector3i) Vector3i {
	return Vector3i{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference.
func (v Vector3i) Sub(o Vector3i) Vector3i {
	return Vector3i{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3i) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// Region is an axis-aligned box of voxels with inclusive bounds on every
// axis. Lower must be <= Upper component-wise.
type Region struct {
	Lower Vector3i
	Upper Vector3i
}

// NewRegion builds a region from two inclusive corner coordinates.
func NewRegion(lowerX, lowerY, lowerZ, upperX, upperY, upperZ int32) Region {
	return Region{
		Lower: Vector3i{lowerX, lowerY, lowerZ},
		Upper: Vector3i{upperX, upperY, upperZ},
	}
}

// Contains reports whether the point lies inside the region.
func (r Region) Contains(p Vector3i) bool {
	return p.X >= r.Lower.X && p.X <= r.Upper.X &&
		p.Y >= r.Lower.Y && p.Y <= r.Upper.Y &&
		p.Z >= r.Lower.Z && p.Z <= r.Upper.Z
}

// Width is the voxel extent along x (inclusive bounds).
func (r Region) Width() int32 { return r.Upper.X - r.Lower.X + 1 }

// Height is the voxel extent along y (inclusive bounds).
func (r Region) Height() int32 { return r.Upper.Y - r.Lower.Y + 1 }

// Depth is the voxel extent along z (inclusive bounds).
func (r Region) Depth() int32 { return r.Upper.Z - r.Lower.Z + 1 }

// Valid reports whether Lower <= Upper on every axis.
func (r Region) Valid() bool {
	return r.Lower.X <= r.Upper.X && r.Lower.Y <= r.Upper.Y && r.Lower.Z <= r.Upper.Z
}

func (r Region) String() string {
	return fmt.Sprintf("[%v..%v]", r.Lower, r.Upper)
}
