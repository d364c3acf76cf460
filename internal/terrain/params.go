package terrain

import "fmt"

// Params holds the generation parameters for one terrain volume. They are
// fixed at construction and shared read-only by the pager and its noise
// fields for the volume's whole lifetime.
type Params struct {
	Seed          int64
	Octaves       int
	Frequency     float64
	Scale         float64
	Offset        float64
	TerrainHeight float64
}

// DefaultParams mirrors the reference terrain: rolling hills 64 voxels tall.
func DefaultParams() Params {
	return Params{
		Seed:          123,
		Octaves:       3,
		Frequency:     0.01,
		Scale:         32,
		Offset:        0,
		TerrainHeight: 64,
	}
}

// Validate rejects parameter combinations the generator cannot work with.
// A failed validation is fatal to volume construction.
func (p Params) Validate() error {
	if p.Octaves < 1 {
		return fmt.Errorf("terrain: octaves must be >= 1, got %d", p.Octaves)
	}
	if p.Frequency <= 0 {
		return fmt.Errorf("terrain: frequency must be > 0, got %g", p.Frequency)
	}
	if p.TerrainHeight <= 0 {
		return fmt.Errorf("terrain: terrainHeight must be > 0, got %g", p.TerrainHeight)
	}
	return nil
}
