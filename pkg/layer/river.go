package layer

import (
	"github.com/StoreStation/biomegen/pkg/biome"
	"github.com/StoreStation/biomegen/pkg/seededhash"
)

// RiverInit relabels every non-OCEAN cell as one of two marker codes
// (DESERT or HILLS_EXTREME), used purely to trace river boundaries
// downstream; the actual biome identity is irrelevant past this point.
type RiverInit struct {
	Base
}

func NewRiverInit(seedConstant int64, child Layer) *RiverInit {
	return &RiverInit{Base: NewBase(seedConstant, child)}
}

func (l *RiverInit) GetArea(x, z, width, depth int) *Grid {
	g := NewGrid(width, depth)
	child := l.Child.GetArea(x, z, width, depth)

	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			l.InitChunkSeed(int64(x+cx), int64(z+cz))
			if child.At(cx, cz) != biome.Ocean {
				marker := l.nextInt(2)
				if marker < 0 {
					marker += 2 // a negative draw selects HILLS_EXTREME
				}
				g.Set(cx, cz, biome.Desert+biome.Code(marker))
			} else {
				g.Set(cx, cz, biome.Ocean)
			}
		}
	}

	l.emit("RiverInit", x, z, width, depth, g.values)
	return g
}

// River traces marker boundaries: a cell whose plus-stencil neighborhood
// is uniformly the same non-OCEAN marker is interior (NONE); any
// disagreement, or any OCEAN in the stencil, marks a river.
type River struct {
	Base
}

func NewRiver(seedConstant int64, child Layer) *River {
	return &River{Base: NewBase(seedConstant, child)}
}

func (l *River) GetArea(x, z, width, depth int) *Grid {
	g := NewGrid(width, depth)
	child := l.Child.GetArea(x-1, z-1, width+2, depth+2)

	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			center := child.At(cx+1, cz+1)
			stencil := [5]biome.Code{
				child.At(cx+1, cz+0), // TC
				child.At(cx+2, cz+1), // MR
				child.At(cx+0, cz+1), // ML
				child.At(cx+1, cz+2), // BC
				center,
			}

			uniform := true
			for _, v := range stencil {
				if v == biome.Ocean || v != center {
					uniform = false
					break
				}
			}

			if uniform {
				g.Set(cx, cz, biome.NONE)
			} else {
				g.Set(cx, cz, biome.River)
			}
		}
	}

	l.emit("River", x, z, width, depth, g.values)
	return g
}

// SwampRiver reads a single diagonal-offset cell (pad=1 used only for
// coordinate alignment) and erodes it to RIVER: one time in six for
// SWAMP, one time in eight for JUNGLE/HILLS_JUNGLE, never otherwise.
type SwampRiver struct {
	Base
}

func NewSwampRiver(seedConstant int64, child Layer) *SwampRiver {
	return &SwampRiver{Base: NewBase(seedConstant, child)}
}

func (l *SwampRiver) GetArea(x, z, width, depth int) *Grid {
	g := NewGrid(width, depth)
	child := l.Child.GetArea(x-1, z-1, width+2, depth+2)

	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			l.InitChunkSeed(int64(x+cx), int64(z+cz))
			adj := child.At(cx+1, cz+1)

			keep := true
			switch {
			case adj == biome.Swamp:
				keep = l.nextInt(6) != 0
			case adj == biome.Jungle || adj == biome.HillsJungle:
				keep = l.nextInt(8) != 0
			}

			if keep {
				g.Set(cx, cz, adj)
			} else {
				g.Set(cx, cz, biome.River)
			}
		}
	}

	l.emit("SwampRiver", x, z, width, depth, g.values)
	return g
}

// RiverMixer joins the land branch and the river branch: OCEAN always
// wins, a traced river overrides land (adapted for ice and mushroom
// biomes), and everywhere else the land value passes through untouched.
type RiverMixer struct {
	Base
	RiverChild Layer
}

func NewRiverMixer(seedConstant int64, land, river Layer) *RiverMixer {
	return &RiverMixer{Base: NewBase(seedConstant, land), RiverChild: river}
}

// InitWorldSeed initializes both children before self, matching the
// reference platform's join-layer order (introspection-only; each
// subtree's output is independent of the other).
func (l *RiverMixer) InitWorldSeed(worldSeed int64) {
	l.Child.InitWorldSeed(worldSeed)
	l.RiverChild.InitWorldSeed(worldSeed)
	l.WorldSeed = seededhash.InitWorldSeed(worldSeed, l.LayerSeed)
}

func (l *RiverMixer) GetArea(x, z, width, depth int) *Grid {
	g := NewGrid(width, depth)
	land := l.Child.GetArea(x, z, width, depth)
	river := l.RiverChild.GetArea(x, z, width, depth)

	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			b := land.At(cx, cz)
			r := river.At(cx, cz)

			switch {
			case b == biome.Ocean:
				g.Set(cx, cz, b)
			case r != biome.NONE:
				switch {
				case b == biome.PlainsIce:
					g.Set(cx, cz, biome.RiverFrozen)
				case b == biome.MushroomIsland || b == biome.MushroomBeach:
					g.Set(cx, cz, biome.MushroomBeach)
				default:
					g.Set(cx, cz, r)
				}
			default:
				g.Set(cx, cz, b)
			}
		}
	}

	l.emit("RiverMixer", x, z, width, depth, g.values)
	return g
}
