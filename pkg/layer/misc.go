package layer

import "github.com/StoreStation/biomegen/pkg/biome"

// AddSnow overwrites every non-OCEAN center with PLAINS_ICE one time in
// five, else PLAINS, discarding whatever variation the island branch had
// already produced there.
type AddSnow struct {
	Base
}

func NewAddSnow(seedConstant int64, child Layer) *AddSnow {
	return &AddSnow{Base: NewBase(seedConstant, child)}
}

func (l *AddSnow) GetArea(x, z, width, depth int) *Grid {
	g := NewGrid(width, depth)
	child := l.Child.GetArea(x-1, z-1, width+2, depth+2)

	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			l.InitChunkSeed(int64(x+cx), int64(z+cz))
			v := child.At(cx+1, cz+1)
			if v != biome.Ocean {
				if l.nextInt(5) == 0 {
					v = biome.PlainsIce
				} else {
					v = biome.Plains
				}
			}
			g.Set(cx, cz, v)
		}
	}

	l.emit("AddSnow", x, z, width, depth, g.values)
	return g
}

var defaultAllowedBiomes = []biome.Code{
	biome.Desert, biome.Forest, biome.HillsExtreme, biome.Swamp, biome.Plains, biome.Taiga, biome.Jungle,
}

var default11AllowedBiomes = []biome.Code{
	biome.Desert, biome.Forest, biome.HillsExtreme, biome.Swamp, biome.Plains, biome.Taiga,
}

// BiomeInit assigns a climate biome to every PLAINS cell produced by the
// island branch, drawn from a fixed allowed-biomes table (JUNGLE excluded
// under DEFAULT_1_1). Non-PLAINS, non-OCEAN, non-MUSHROOM_ISLAND cells
// still consume a probing draw even though its result is only used to
// decide between TAIGA and PLAINS_ICE — that draw is load-bearing for
// downstream determinism.
type BiomeInit struct {
	Base
	allowed []biome.Code
}

func NewBiomeInit(seedConstant int64, child Layer, worldType biome.WorldType) *BiomeInit {
	allowed := defaultAllowedBiomes
	if worldType == biome.Default11 {
		allowed = default11AllowedBiomes
	}
	return &BiomeInit{Base: NewBase(seedConstant, child), allowed: allowed}
}

func (l *BiomeInit) GetArea(x, z, width, depth int) *Grid {
	g := NewGrid(width, depth)
	child := l.Child.GetArea(x, z, width, depth)

	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			l.InitChunkSeed(int64(x+cx), int64(z+cz))
			v := child.At(cx, cz)

			switch {
			case v == biome.Ocean || v == biome.MushroomIsland:
				// preserved as-is
			case v == biome.Plains:
				v = l.pick()
			case l.pick() == biome.Taiga:
				v = biome.Taiga
			default:
				v = biome.PlainsIce
			}
			g.Set(cx, cz, v)
		}
	}

	l.emit("BiomeInit", x, z, width, depth, g.values)
	return g
}

// pick draws one entry of the allowed-biomes table. A negative draw (nextInt
// keeps the sign of the chunk seed) counts back from the end of the table.
func (l *BiomeInit) pick() biome.Code {
	n := int32(len(l.allowed))
	i := l.nextInt(n)
	if i < 0 {
		i += n
	}
	return l.allowed[i]
}

var hillsPromotion = map[biome.Code]biome.Code{
	biome.Desert:    biome.HillsDesert,
	biome.Forest:    biome.HillsForest,
	biome.Taiga:     biome.HillsTaiga,
	biome.Plains:    biome.Forest,
	biome.PlainsIce: biome.HillsExtremeIce,
	biome.Jungle:    biome.HillsJungle,
}

// Hills promotes a 1-in-3 cell to its hill variant, but only when all four
// edge neighbors equal the cell's own pre-promotion value.
type Hills struct {
	Base
}

func NewHills(seedConstant int64, child Layer) *Hills {
	return &Hills{Base: NewBase(seedConstant, child)}
}

func (l *Hills) GetArea(x, z, width, depth int) *Grid {
	g := NewGrid(width, depth)
	child := l.Child.GetArea(x-1, z-1, width+2, depth+2)

	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			l.InitChunkSeed(int64(x+cx), int64(z+cz))
			center := child.At(cx+1, cz+1)

			if l.nextInt(3) == 0 {
				hillValue, promotable := hillsPromotion[center]
				if !promotable {
					g.Set(cx, cz, center)
					continue
				}
				edges := [4]biome.Code{
					child.At(cx+1, cz+0), // TC
					child.At(cx+2, cz+1),
					child.At(cx+0, cz+1),
					child.At(cx+1, cz+2), // BC
				}
				allMatch := true
				for _, e := range edges {
					if e != center {
						allMatch = false
						break
					}
				}
				if allMatch {
					g.Set(cx, cz, hillValue)
				} else {
					g.Set(cx, cz, center)
				}
			} else {
				g.Set(cx, cz, center)
			}
		}
	}

	l.emit("Hills", x, z, width, depth, g.values)
	return g
}

// Smooth resolves a 2x2-plus neighborhood down to a single value, and only
// draws an RNG coin toss when both the horizontal and vertical pairs each
// independently agree; the asymmetric branches below consume no draw.
type Smooth struct {
	Base
}

func NewSmooth(seedConstant int64, child Layer) *Smooth {
	return &Smooth{Base: NewBase(seedConstant, child)}
}

func (l *Smooth) GetArea(x, z, width, depth int) *Grid {
	g := NewGrid(width, depth)
	child := l.Child.GetArea(x-1, z-1, width+2, depth+2)

	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			ml := child.At(cx+0, cz+1)
			mr := child.At(cx+2, cz+1)
			tc := child.At(cx+1, cz+0)
			bc := child.At(cx+1, cz+2)
			mc := child.At(cx+1, cz+1)

			switch {
			case ml == mr && tc == bc:
				l.InitChunkSeed(int64(x+cx), int64(z+cz))
				if l.nextInt(2) == 0 {
					mc = ml
				} else {
					mc = tc
				}
			case ml == mr:
				mc = ml
			case tc == bc:
				mc = tc
			}

			g.Set(cx, cz, mc)
		}
	}

	l.emit("Smooth", x, z, width, depth, g.values)
	return g
}
