package volume

// Material identifies what a voxel is made of. Material 0 is always air;
// renderable materials start at 1.
type Material uint8

const (
	MaterialAir Material = iota
	MaterialStone
	MaterialDirt
	MaterialGrass
	MaterialOre
)

// MaterialCount is the number of renderable materials (air excluded).
const MaterialCount = 4

func (m Material) String() string {
	switch m {
	case MaterialAir:
		return "Air"
	case MaterialStone:
		return "Stone"
	case MaterialDirt:
		return "Dirt"
	case MaterialGrass:
		return "Grass"
	case MaterialOre:
		return "Ore"
	}
	return "Unknown"
}

// Density values are binary in this design: a voxel is either fully solid
// or empty, there is no sub-voxel gradation.
const (
	DensityEmpty uint8 = 0
	DensitySolid uint8 = 255

	// SolidThreshold separates solid from empty. Density above it always
	// coincides with a non-air material.
	SolidThreshold uint8 = 127
)

// Voxel is one cell of the volume: a coarse solidity signal plus a material.
type Voxel struct {
	Density  uint8
	Material Material
}

// IsSolid reports whether the voxel is above the solidity threshold.
func (v Voxel) IsSolid() bool {
	return v.Density > SolidThreshold
}

// SolidVoxel builds a solid voxel of the given material.
func SolidVoxel(m Material) Voxel {
	return Voxel{Density: DensitySolid, Material: m}
}

// EmptyVoxel builds an air voxel.
func EmptyVoxel() Voxel {
	return Voxel{Density: DensityEmpty, Material: MaterialAir}
}
