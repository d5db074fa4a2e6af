package layer

import "github.com/StoreStation/biomegen/pkg/biome"

// fakeLayer is a fixed-output stand-in child layer for exercising a single
// layer's stencil logic in isolation, independent of pipeline wiring.
type fakeLayer struct {
	grid      *Grid
	initSeeds []int64
}

func (f *fakeLayer) GetArea(x, z, width, depth int) *Grid {
	return f.grid
}

func (f *fakeLayer) InitWorldSeed(worldSeed int64) {
	f.initSeeds = append(f.initSeeds, worldSeed)
}

func newFakeGrid(width, depth int, fill biome.Code, set map[[2]int]biome.Code) *Grid {
	g := NewGrid(width, depth)
	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			g.Set(cx, cz, fill)
		}
	}
	for pos, v := range set {
		g.Set(pos[0], pos[1], v)
	}
	return g
}
