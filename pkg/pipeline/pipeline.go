// Package pipeline assembles the fixed biome-layer DAG: an island/ocean
// branch, a river branch traced over it, a climate/hills land branch, and
// a join layer fusing land and river, topped by a coarser Voronoi zoom.
package pipeline

import (
	"github.com/StoreStation/biomegen/pkg/biome"
	"github.com/StoreStation/biomegen/pkg/layer"
)

// largeBiomeBaseZoom and defaultBaseZoom select how many extra zoom-out
// passes the land and river branches apply; LARGE_BIOME worlds use two
// more than every other world type.
const (
	defaultBaseZoom    = 4
	largeBiomeBaseZoom = 6
)

func baseZoom(worldType biome.WorldType) int {
	if worldType == biome.LargeBiome {
		return largeBiomeBaseZoom
	}
	return defaultBaseZoom
}

// buildIslandLayer is the fixed construction order for the shared island/ocean
// branch, shared verbatim by both the block-biome tree and the
// index-biome tree (each gets its own independently constructed instance).
func buildIslandLayer() layer.Layer {
	var l layer.Layer
	l = layer.NewIsland(1)
	l = layer.NewFuzzyZoom(2000, l)
	l = layer.NewAddIsland(1, l)
	l = layer.NewZoom(2001, l)
	l = layer.NewAddIsland(2, l)
	l = layer.NewAddSnow(2, l)
	l = layer.NewZoom(2002, l)
	l = layer.NewAddIsland(3, l)
	l = layer.NewZoom(2003, l)
	l = layer.NewAddIsland(4, l)
	l = layer.NewAddMushroomIsland(5, l)
	return l
}

// buildBlockBiome assembles one complete river+land+mixer tree rooted at a
// freshly built island branch. Called twice by Build — once for the
// block-biome output, once beneath the index-biome's VoronoiZoom — in
// place of a deep structural clone, per the documented "build twice"
// strategy for avoiding a shared mutable subtree.
func buildBlockBiome(worldType biome.WorldType) layer.Layer {
	islandLayer := buildIslandLayer()
	zoom := baseZoom(worldType)

	riverInit := layer.ZoomStack(1000, layer.NewRiverInit(100, islandLayer), zoom+2)
	river := layer.NewSmooth(1000, layer.NewRiver(1, riverInit))

	var land layer.Layer = layer.NewHills(1000, layer.ZoomStack(1000, layer.NewBiomeInit(200, islandLayer, worldType), 2))
	for z := 0; z < zoom; z++ {
		land = layer.NewZoom(1000+int64(z), land)
		if z == 0 {
			land = layer.NewAddIsland(3, land)
		}
		if z == 1 {
			land = layer.NewShore(1000, land)
			land = layer.NewSwampRiver(1000, land)
		}
	}

	return layer.NewRiverMixer(100, layer.NewSmooth(1000, land), river)
}

// Build assembles the pipeline for worldType and initializes both roots
// with worldSeed, returning the pair the region driver consumes:
// blockBiome for per-world-block color maps, indexBiome for the coarser
// climate/temperature view.
func Build(worldSeed int64, worldType biome.WorldType) (blockBiome, indexBiome layer.Layer) {
	blockBiome = buildBlockBiome(worldType)
	indexBiome = layer.NewVoronoiZoom(10, buildBlockBiome(worldType))

	blockBiome.InitWorldSeed(worldSeed)
	indexBiome.InitWorldSeed(worldSeed)
	return blockBiome, indexBiome
}
