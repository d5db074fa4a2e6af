// Package region drives the layer pipeline over a caller-requested
// rectangle: it rounds the request to whole 16x16 chunks, tiles them in
// z-outer/x-inner order, pastes each chunk's biome codes into a single
// output buffer, and converts the result to a packed RGB image.
package region

import (
	"errors"
	"fmt"

	"github.com/StoreStation/biomegen/pkg/biome"
	"github.com/StoreStation/biomegen/pkg/layer"
	"github.com/StoreStation/biomegen/pkg/pipeline"
)

const chunkSize = 16

// ErrInvalidArgument reports a zero width or depth; every int64 seed is
// accepted.
var ErrInvalidArgument = errors.New("region: invalid argument")

// Request describes one region generation call.
type Request struct {
	Seed          int64
	WorldType     biome.WorldType
	OriginX       int32
	OriginZ       int32
	Width         uint32
	Depth         uint32
	UseIndexLayer bool
}

// Image is a packed RGB buffer plus the biome-code grid it was derived
// from, in row-major (z outer, x inner) order.
type Image struct {
	Width, Depth int
	Codes        []biome.Code
	RGB          []byte
}

// Generate builds a pipeline for req.Seed/req.WorldType, tiles the
// requested rectangle into whole chunks, and renders the result.
func Generate(req Request) (*Image, error) {
	if req.Width == 0 || req.Depth == 0 {
		return nil, fmt.Errorf("%w: width and depth must be positive", ErrInvalidArgument)
	}

	x0 := floorToChunk(req.OriginX)
	z0 := floorToChunk(req.OriginZ)
	x1 := ceilToChunk(req.OriginX + int32(req.Width))
	z1 := ceilToChunk(req.OriginZ + int32(req.Depth))
	width := int(x1 - x0)
	depth := int(z1 - z0)

	blockBiome, indexBiome := pipeline.Build(req.Seed, req.WorldType)
	var root layer.Layer = blockBiome
	if req.UseIndexLayer {
		root = indexBiome
	}

	codes := make([]biome.Code, width*depth)
	for cz := z0; cz < z1; cz += chunkSize {
		for cx := x0; cx < x1; cx += chunkSize {
			chunk := root.GetArea(int(cx), int(cz), chunkSize, chunkSize)
			pasteChunk(codes, width, int(cx-x0), int(cz-z0), chunk)
		}
	}

	rgb := make([]byte, 0, width*depth*3)
	for _, c := range codes {
		meta, ok := biome.Lookup(c)
		if !ok {
			meta = biome.Meta{Color: biome.RGB{R: 0, G: 0, B: 0}}
		}
		rgb = append(rgb, meta.Color.R, meta.Color.G, meta.Color.B)
	}

	return &Image{Width: width, Depth: depth, Codes: codes, RGB: rgb}, nil
}

func pasteChunk(dst []biome.Code, dstWidth, offsetX, offsetZ int, chunk *layer.Grid) {
	for z := 0; z < chunk.Depth; z++ {
		for x := 0; x < chunk.Width; x++ {
			dst[(offsetX+x)+(offsetZ+z)*dstWidth] = chunk.At(x, z)
		}
	}
}

func floorToChunk(v int32) int32 {
	if v >= 0 {
		return v - v%chunkSize
	}
	rem := -v % chunkSize
	if rem == 0 {
		return v
	}
	return v - (chunkSize - rem)
}

func ceilToChunk(v int32) int32 {
	if v%chunkSize == 0 {
		return v
	}
	return floorToChunk(v) + chunkSize
}
