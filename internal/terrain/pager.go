package terrain

import (
	"math"

	"VoxelTerrain/internal/logger"
	"VoxelTerrain/internal/noise"
	"VoxelTerrain/internal/volume"

	"go.uber.org/zap"
)

// solidCutoff is the select threshold separating ground from air on the
// perturbed vertical gradient.
const solidCutoff = 0.5

// Ore pocket tuning: the ore field is a sparser, higher-frequency fractal
// than the terrain itself.
const (
	oreOctaves    = 2
	oreFreqFactor = 5.0
	oreCutoff     = 1.95
)

// dirtThickness is how many voxels of dirt sit under the grass surface.
const dirtThickness = 3

// Pager generates terrain voxels on demand for a paged volume. The noise
// field graph is built once from the generation parameters and reused for
// every chunk fill, so paging the same region twice produces identical
// voxels.
type Pager struct {
	params Params

	// heightmap displaces the ground plane vertically; it is a 2D field,
	// the z axis contributes nothing.
	heightmap noise.Field
	// groundSelect is 1 below the unperturbed ground plane and 0 above.
	groundSelect noise.Field
	// ore decides stone versus ore among deep solid voxels.
	ore noise.Field

	rules []MaterialRule
}

// NewPager validates the parameters and precomputes the noise fields.
func NewPager(params Params) (*Pager, error) {
	logger.Init()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	height := noise.Constant(params.TerrainHeight)
	gradient := noise.Divide(
		noise.Clamp(noise.Subtract(height, noise.CoordZ()), 0, params.TerrainHeight),
		height,
	)

	p := &Pager{
		params: params,
		heightmap: noise.ZeroZ(noise.ScaleOffset(
			noise.FBM(params.Seed, params.Octaves, params.Frequency),
			params.Scale, params.Offset,
		)),
		groundSelect: noise.Select(noise.Constant(0), noise.Constant(1), gradient, solidCutoff),
		ore:          noise.RidgedMultifractal(params.Seed, oreOctaves, oreFreqFactor*params.Frequency),
	}
	p.rules = defaultRules(p)

	logger.Log.Info("Terrain pager ready",
		zap.Int64("seed", params.Seed),
		zap.Int("octaves", params.Octaves),
		zap.Float64("frequency", params.Frequency),
		zap.Float64("terrainHeight", params.TerrainHeight))
	return p, nil
}

// Params returns the generation parameters the pager was built with.
func (p *Pager) Params() Params { return p.params }

// GrassLevel is the z at and above which solid voxels at (x, y) become
// grass: terrainHeight/2 minus the heightmap, floored.
func (p *Pager) GrassLevel(x, y int32) int32 {
	h := p.heightmap(float64(x), float64(y), 0)
	return int32(math.Floor(p.params.TerrainHeight/2 - h))
}

// solidAt classifies a voxel coordinate as ground or air. The ground plane
// select is sampled at z displaced by the heightmap; coordinates outside
// [0, terrainHeight] are never solid, which pins the terrain between a hard
// floor and ceiling.
func (p *Pager) solidAt(x, y, z int32, heightmap float64) bool {
	if z < 0 || float64(z) > p.params.TerrainHeight {
		return false
	}
	return p.groundSelect(float64(x), float64(y), float64(z)+heightmap) > solidCutoff
}

// PageIn fills every voxel of the region, writing at chunk-local
// coordinates. It cannot fail for any region.
func (p *Pager) PageIn(region volume.Region, chunk *volume.Chunk) {
	for x := region.Lower.X; x <= region.Upper.X; x++ {
		for y := region.Lower.Y; y <= region.Upper.Y; y++ {
			// The heightmap and grass level only depend on (x, y), so
			// evaluate them once per column.
			h := p.heightmap(float64(x), float64(y), 0)
			grassZ := int32(math.Floor(p.params.TerrainHeight/2 - h))

			for z := region.Lower.Z; z <= region.Upper.Z; z++ {
				var v volume.Voxel
				if p.solidAt(x, y, z, h) {
					v = volume.SolidVoxel(p.classify(x, y, z, grassZ))
				} else {
					v = volume.EmptyVoxel()
				}
				chunk.SetVoxel(x-region.Lower.X, y-region.Lower.Y, z-region.Lower.Z, v)
			}
		}
	}
}

// PageOut is a no-op: generated terrain is fully reproducible from the
// parameters, so there is nothing to persist when a chunk is dropped.
func (p *Pager) PageOut(region volume.Region, chunk *volume.Chunk) {
}
