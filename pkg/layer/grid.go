// Package layer implements the biome layer pipeline: a tree (with one join)
// of stateful transformer nodes, each mapping a padded child rectangle of
// biome codes to a parent rectangle. Every operation here is total once a
// layer's world seed has been initialized — argument validation lives at
// the region driver boundary, not in the layer core.
package layer

import "github.com/StoreStation/biomegen/pkg/biome"

// Grid is a rectangular (width, depth) array of biome codes, addressed as
// grid.At(x, z) with x in [0,width) and z in [0,depth). Grids are always
// freshly allocated by a GetArea call; layers never share mutable grids.
type Grid struct {
	Width, Depth int
	values       []biome.Code
}

// NewGrid allocates a grid filled with OCEAN, matching the reference
// platform's default-initialized biome_values arrays.
func NewGrid(width, depth int) *Grid {
	values := make([]biome.Code, width*depth)
	for i := range values {
		values[i] = biome.Ocean
	}
	return &Grid{Width: width, Depth: depth, values: values}
}

func (g *Grid) index(x, z int) int {
	return x + z*g.Width
}

// At returns the code at (x, z).
func (g *Grid) At(x, z int) biome.Code {
	return g.values[g.index(x, z)]
}

// Set stores the code at (x, z).
func (g *Grid) Set(x, z int, v biome.Code) {
	g.values[g.index(x, z)] = v
}

// Values returns the grid's backing storage in row-major (z-outer,
// x-inner) order: index x + z*Width. Callers must treat it as read-only.
func (g *Grid) Values() []biome.Code {
	return g.values
}
