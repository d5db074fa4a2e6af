package layer

import "github.com/StoreStation/biomegen/pkg/biome"

// Island is the leaf of the land branch: a 1-in-10 chance of PLAINS per
// cell, with a mandatory PLAINS stamped at world origin whenever the
// requested rectangle covers it, seeding every world with a spawn island.
type Island struct {
	Base
}

func NewIsland(seedConstant int64) *Island {
	return &Island{Base: NewBase(seedConstant, nil)}
}

func (l *Island) GetArea(x, z, width, depth int) *Grid {
	g := NewGrid(width, depth)
	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			l.InitChunkSeed(int64(x+cx), int64(z+cz))
			if l.nextInt(10) == 0 {
				g.Set(cx, cz, biome.Plains)
			} else {
				g.Set(cx, cz, biome.Ocean)
			}
		}
	}

	if x > -width && x <= 0 && z > -depth && z <= 0 {
		g.Set(-x, -z, biome.Plains)
	}

	l.emit("Island", x, z, width, depth, g.values)
	return g
}

// AddIsland grows new islands from a non-OCEAN corner next to an OCEAN
// center, and erodes thin peninsulas the opposite way.
type AddIsland struct {
	Base
}

func NewAddIsland(seedConstant int64, child Layer) *AddIsland {
	return &AddIsland{Base: NewBase(seedConstant, child)}
}

func (l *AddIsland) GetArea(x, z, width, depth int) *Grid {
	g := NewGrid(width, depth)
	child := l.Child.GetArea(x-1, z-1, width+2, depth+2)

	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			l.InitChunkSeed(int64(x+cx), int64(z+cz))

			center := child.At(cx+1, cz+1)
			corners := [4]biome.Code{
				child.At(cx+0, cz+0), // TL
				child.At(cx+2, cz+0), // TR
				child.At(cx+0, cz+2), // BL
				child.At(cx+2, cz+2), // BR
			}

			anyNonOcean := false
			hasOcean := false
			for _, c := range corners {
				if c != biome.Ocean {
					anyNonOcean = true
				} else {
					hasOcean = true
				}
			}

			switch {
			case center == biome.Ocean && anyNonOcean:
				cornerProbability := int32(1)
				next := biome.Plains
				for _, c := range corners {
					if c != biome.Ocean {
						if l.nextInt(cornerProbability) == 0 {
							next = c
						}
						cornerProbability++
					}
				}
				switch {
				case l.nextInt(3) == 0:
					g.Set(cx, cz, next)
				case next == biome.PlainsIce:
					g.Set(cx, cz, biome.OceanFrozen)
				default:
					g.Set(cx, cz, biome.Ocean)
				}

			case center != biome.Ocean && hasOcean:
				if l.nextInt(5) == 0 {
					if center == biome.PlainsIce {
						g.Set(cx, cz, biome.OceanFrozen)
					} else {
						g.Set(cx, cz, biome.Ocean)
					}
				} else {
					g.Set(cx, cz, center)
				}

			default:
				g.Set(cx, cz, center)
			}
		}
	}

	l.emit("AddIsland", x, z, width, depth, g.values)
	return g
}

// AddMushroomIsland stamps a rare MUSHROOM_ISLAND onto a cell whose center
// and four diagonal corners are all OCEAN.
type AddMushroomIsland struct {
	Base
}

func NewAddMushroomIsland(seedConstant int64, child Layer) *AddMushroomIsland {
	return &AddMushroomIsland{Base: NewBase(seedConstant, child)}
}

func (l *AddMushroomIsland) GetArea(x, z, width, depth int) *Grid {
	g := NewGrid(width, depth)
	child := l.Child.GetArea(x-1, z-1, width+2, depth+2)

	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			l.InitChunkSeed(int64(x+cx), int64(z+cz))

			center := child.At(cx+1, cz+1)
			allOcean := center == biome.Ocean &&
				child.At(cx+0, cz+0) == biome.Ocean &&
				child.At(cx+2, cz+0) == biome.Ocean &&
				child.At(cx+0, cz+2) == biome.Ocean &&
				child.At(cx+2, cz+2) == biome.Ocean

			if allOcean && l.nextInt(100) == 0 {
				g.Set(cx, cz, biome.MushroomIsland)
			} else {
				g.Set(cx, cz, center)
			}
		}
	}

	l.emit("AddMushroomIsland", x, z, width, depth, g.values)
	return g
}

// Shore turns exposed mushroom/extreme-hills/land edges into beaches,
// mushroom beaches, and hills-extreme edges.
type Shore struct {
	Base
}

func NewShore(seedConstant int64, child Layer) *Shore {
	return &Shore{Base: NewBase(seedConstant, child)}
}

func (l *Shore) GetArea(x, z, width, depth int) *Grid {
	g := NewGrid(width, depth)
	child := l.Child.GetArea(x-1, z-1, width+2, depth+2)

	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			l.InitChunkSeed(int64(x+cx), int64(z+cz))

			center := child.At(cx+1, cz+1)
			edges := [4]biome.Code{
				child.At(cx+1, cz+0), // TC
				child.At(cx+2, cz+1),
				child.At(cx+0, cz+1),
				child.At(cx+1, cz+2), // BC
			}
			edgeHasOcean := false
			edgeAllExtreme := true
			for _, e := range edges {
				if e == biome.Ocean {
					edgeHasOcean = true
				}
				if e != biome.HillsExtreme {
					edgeAllExtreme = false
				}
			}

			switch {
			case center == biome.MushroomIsland:
				if edgeHasOcean {
					g.Set(cx, cz, biome.MushroomBeach)
				} else {
					g.Set(cx, cz, center)
				}

			case center != biome.Ocean && center != biome.River &&
				center != biome.Swamp && center != biome.HillsExtreme:
				if edgeHasOcean {
					g.Set(cx, cz, biome.Beach)
				} else {
					g.Set(cx, cz, center)
				}

			case center == biome.HillsExtreme:
				if edgeAllExtreme {
					g.Set(cx, cz, center)
				} else {
					g.Set(cx, cz, biome.HillsExtremeEdge)
				}

			default:
				g.Set(cx, cz, center)
			}
		}
	}

	l.emit("Shore", x, z, width, depth, g.values)
	return g
}
