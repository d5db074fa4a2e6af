package layer

import "github.com/StoreStation/biomegen/pkg/biome"

// zoomCore implements the shared 1:2 zoom mechanics: stretch a padded
// child rectangle across twice its resolution, filling TL/BL/TR directly
// and the diagonal BR cell via diagonalFunc, then crop back to the requested
// origin parity.
type zoomCore struct {
	Base
	diagonalFunc func(l *zoomCore, tl, tr, bl, br biome.Code) biome.Code
}

func (l *zoomCore) zoomArea(name string, x, z, width, depth int) *Grid {
	childX := x >> 1
	childZ := z >> 1
	childWidth := (width >> 1) + 3
	childDepth := (depth >> 1) + 3
	zoomDepth := childDepth << 1

	child := l.Child.GetArea(childX, childZ, childWidth, childDepth)
	zoomed := NewGrid(childWidth<<1, zoomDepth)

	for cz := 0; cz < childDepth-1; cz++ {
		z2 := cz << 1
		topAccl := child.At(0, cz+0)
		botAccl := child.At(0, cz+1)

		for cx := 0; cx < childWidth-1; cx++ {
			l.InitChunkSeed(int64(childX+cx)<<1, int64(childZ+cz)<<1)

			topNext := child.At(cx+1, cz+0)
			botNext := child.At(cx+1, cz+1)
			x2 := cx << 1

			zoomed.Set(x2+0, z2+0, topAccl)
			zoomed.Set(x2+0, z2+1, l.choose(topAccl, botAccl))
			zoomed.Set(x2+1, z2+0, l.choose(topAccl, topNext))
			zoomed.Set(x2+1, z2+1, l.diagonalFunc(l, topAccl, topNext, botAccl, botNext))

			topAccl = topNext
			botAccl = botNext
		}
	}

	out := NewGrid(width, depth)
	xOffset := x & 1
	zOffset := z & 1
	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			out.Set(cx, cz, zoomed.At(cx+xOffset, cz+zOffset))
		}
	}

	l.emit(name, x, z, width, depth, out.values)
	return out
}

func (l *zoomCore) choose(a, b biome.Code) biome.Code {
	if l.nextInt(2) == 0 {
		return a
	}
	return b
}

func (l *zoomCore) choose4(a, b, c, d biome.Code) biome.Code {
	n := l.nextInt(4)
	if n < 0 {
		n += 4 // a negative draw counts back from d, keeping the choice uniform
	}
	switch n {
	case 0:
		return a
	case 1:
		return b
	case 2:
		return c
	default:
		return d
	}
}

// FuzzyZoom is the 1:2 zoom used only at the base of the island branch; its
// diagonal cell picks uniformly among all four corners.
type FuzzyZoom struct {
	zoomCore
}

func NewFuzzyZoom(seedConstant int64, child Layer) *FuzzyZoom {
	l := &FuzzyZoom{zoomCore{Base: NewBase(seedConstant, child)}}
	l.diagonalFunc = func(l *zoomCore, tl, tr, bl, br biome.Code) biome.Code {
		return l.choose4(tl, tr, bl, br)
	}
	return l
}

func (l *FuzzyZoom) GetArea(x, z, width, depth int) *Grid {
	return l.zoomArea("FuzzyZoom", x, z, width, depth)
}

// Zoom is the general-purpose 1:2 zoom used throughout the pipeline; its
// diagonal cell applies the reference platform's majority-rule cascade.
type Zoom struct {
	zoomCore
}

func NewZoom(seedConstant int64, child Layer) *Zoom {
	l := &Zoom{zoomCore{Base: NewBase(seedConstant, child)}}
	l.diagonalFunc = zoomDiagonal
	return l
}

func (l *Zoom) GetArea(x, z, width, depth int) *Grid {
	return l.zoomArea("Zoom", x, z, width, depth)
}

// ZoomStack builds a stack of count Zoom layers with seeds
// seed, seed+1, ..., seed+count-1, the child-most layer using seed first.
func ZoomStack(seedConstant int64, child Layer, count int) Layer {
	layer := child
	for i := 0; i < count; i++ {
		layer = NewZoom(seedConstant+int64(i), layer)
	}
	return layer
}

// zoomDiagonal is the exact 16-branch cascade: three-of-four majority,
// then single matching pair, falling through to a uniform choice among
// all four corners when no pair matches or when the corners form two
// distinct matching pairs.
func zoomDiagonal(l *zoomCore, tl, tr, bl, br biome.Code) biome.Code {
	switch {
	case tr == bl && bl == br:
		return tr
	case tl == tr && tl == bl:
		return tl
	case tl == tr && tl == br:
		return tl
	case tl == bl && tl == br:
		return tl
	case tl == tr && bl != br:
		return tl
	case tl == bl && tr != br:
		return tl
	case tl == br && tr != bl:
		return tl
	case tr == tl && bl != br:
		return tr
	case tr == bl && tl != br:
		return tr
	case tr == br && tl != bl:
		return tr
	case bl == tl && tr != br:
		return bl
	case bl == tr && tl != br:
		return bl
	case bl == br && tl != tr:
		return bl
	case br == tl && tr != bl:
		return bl
	case br == tr && tl != bl:
		return bl
	case br == bl && tl != tr:
		return bl
	default:
		return l.choose4(tl, tr, bl, br)
	}
}

// corner is a single jittered Voronoi seed point in child-cell-local units.
type corner struct {
	x, z float64
}

// VoronoiZoom is the final 1:4 zoom: it jitters one seed point per corner
// of each 4x4 child cell and stamps every sub-cell with its nearest
// corner's biome value, ties falling through to BR.
type VoronoiZoom struct {
	Base
}

func NewVoronoiZoom(seedConstant int64, child Layer) *VoronoiZoom {
	return &VoronoiZoom{Base: NewBase(seedConstant, child)}
}

func (l *VoronoiZoom) GetArea(x, z, width, depth int) *Grid {
	x -= 2
	z -= 2
	childX := x >> 2
	childZ := z >> 2
	childWidth := (width >> 2) + 3
	childDepth := (depth >> 2) + 3
	zoomDepth := childDepth << 2

	child := l.Child.GetArea(childX, childZ, childWidth, childDepth)
	zoomed := NewGrid(childWidth<<2, zoomDepth)

	for cz := 0; cz < childDepth-1; cz++ {
		z2 := cz << 2
		topAccl := child.At(0, cz+0)
		botAccl := child.At(0, cz+1)

		for cx := 0; cx < childWidth-1; cx++ {
			l.InitChunkSeed(int64(childX+cx+0)<<2, int64(childZ+cz+0)<<2)
			tl := corner{l.nextDoubleUnit() * 3.6, l.nextDoubleUnit() * 3.6}

			l.InitChunkSeed(int64(childX+cx+1)<<2, int64(childZ+cz+0)<<2)
			tr := corner{l.nextDoubleUnit()*3.6 + 4.0, l.nextDoubleUnit() * 3.6}

			l.InitChunkSeed(int64(childX+cx+0)<<2, int64(childZ+cz+1)<<2)
			bl := corner{l.nextDoubleUnit() * 3.6, l.nextDoubleUnit()*3.6 + 4.0}

			l.InitChunkSeed(int64(childX+cx+1)<<2, int64(childZ+cz+1)<<2)
			br := corner{l.nextDoubleUnit()*3.6 + 4.0, l.nextDoubleUnit()*3.6 + 4.0}

			topNext := child.At(cx+1, cz+0)
			botNext := child.At(cx+1, cz+1)
			x2 := cx << 2

			for sz := 0; sz < 4; sz++ {
				for sx := 0; sx < 4; sx++ {
					dTL := sqDist(float64(sz), float64(sx), tl)
					dTR := sqDist(float64(sz), float64(sx), tr)
					dBL := sqDist(float64(sz), float64(sx), bl)
					dBR := sqDist(float64(sz), float64(sx), br)

					var v biome.Code
					switch {
					case dTL < dTR && dTL < dBL && dTL < dBR:
						v = topAccl
					case dTR < dTL && dTR < dBL && dTR < dBR:
						v = topNext
					case dBL < dTL && dBL < dTR && dBL < dBR:
						v = botAccl
					default:
						v = botNext
					}
					zoomed.Set(x2+sx, z2+sz, v)
				}
			}

			topAccl = topNext
			botAccl = botNext
		}
	}

	out := NewGrid(width, depth)
	xOffset := x & 3
	zOffset := z & 3
	for cz := 0; cz < depth; cz++ {
		for cx := 0; cx < width; cx++ {
			out.Set(cx, cz, zoomed.At(cx+xOffset, cz+zOffset))
		}
	}

	l.emit("VoronoiZoom", x, z, width, depth, out.values)
	return out
}

func sqDist(cellZ, cellX float64, c corner) float64 {
	dz := cellZ - c.z
	dx := cellX - c.x
	return dz*dz + dx*dx
}
