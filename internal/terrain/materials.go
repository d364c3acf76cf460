package terrain

import "VoxelTerrain/internal/volume"

// RuleContext carries everything a material rule may look at when
// classifying one solid voxel.
type RuleContext struct {
	X, Y, Z int32
	// GrassZ is the grass surface level of this voxel's column.
	GrassZ int32

	pager    *Pager
	oreValue float64
	oreDone  bool
}

// OreValue samples the ore fractal at the voxel, memoized so stacked rules
// do not pay for it twice.
func (c *RuleContext) OreValue() float64 {
	if !c.oreDone {
		c.oreValue = c.pager.ore(float64(c.X), float64(c.Y), float64(c.Z))
		c.oreDone = true
	}
	return c.oreValue
}

// MaterialRule maps a predicate to a material. Rules are evaluated in
// order; the first match wins.
type MaterialRule struct {
	Name     string
	Applies  func(ctx *RuleContext) bool
	Material volume.Material
}

// defaultRules is the stock band classification: grass on the surface, a
// dirt band under it, then stone with scattered ore pockets. New bands
// (sand, snow, ...) slot in without touching the paging loop.
func defaultRules(p *Pager) []MaterialRule {
	return []MaterialRule{
		{
			Name: "grass",
			Applies: func(ctx *RuleContext) bool {
				return ctx.Z >= ctx.GrassZ
			},
			Material: volume.MaterialGrass,
		},
		{
			Name: "dirt",
			Applies: func(ctx *RuleContext) bool {
				dirtZ := ctx.GrassZ - 1
				return ctx.Z <= dirtZ && ctx.Z > dirtZ-dirtThickness
			},
			Material: volume.MaterialDirt,
		},
		{
			Name: "ore",
			Applies: func(ctx *RuleContext) bool {
				return ctx.OreValue() > oreCutoff
			},
			Material: volume.MaterialOre,
		},
		{
			Name:     "stone",
			Applies:  func(ctx *RuleContext) bool { return true },
			Material: volume.MaterialStone,
		},
	}
}

// classify picks the material for a solid voxel by running the rule list in
// priority order. Air never reaches this point.
func (p *Pager) classify(x, y, z, grassZ int32) volume.Material {
	ctx := RuleContext{X: x, Y: y, Z: z, GrassZ: grassZ, pager: p}
	for i := range p.rules {
		if p.rules[i].Applies(&ctx) {
			return p.rules[i].Material
		}
	}
	return volume.MaterialStone
}
