// Package biome defines the fixed biome code palette: the signed integer
// identifiers produced by the layer pipeline, their RGB render colors, and
// the world-type selector that gates pipeline assembly.
package biome

import "fmt"

// Code is a biome identifier produced by the layer pipeline. NONE is the
// internal "no river here" sentinel and must never reach a final grid.
type Code int32

const (
	NONE Code = -1

	Ocean             Code = 0
	Plains            Code = 1
	Desert            Code = 2
	HillsExtreme      Code = 3
	Forest            Code = 4
	Taiga             Code = 5
	Swamp             Code = 6
	River             Code = 7
	Hell              Code = 8
	Sky               Code = 9
	OceanFrozen       Code = 10
	RiverFrozen       Code = 11
	PlainsIce         Code = 12
	HillsExtremeIce   Code = 13
	MushroomIsland    Code = 14
	MushroomBeach     Code = 15
	Beach             Code = 16
	HillsDesert       Code = 17
	HillsForest       Code = 18
	HillsTaiga        Code = 19
	HillsExtremeEdge  Code = 20
	Jungle            Code = 21
	HillsJungle       Code = 22
)

// Block ids used by Meta.TopBlock/FillBlock, reproduced from the
// reference platform's block enumeration only as far as this palette needs.
const (
	BlockGrass     = 2
	BlockDirt      = 3
	BlockSand      = 12
	BlockMycelium  = 110
)

// RGB is a 24-bit render color.
type RGB struct {
	R, G, B uint8
}

// Meta is the immutable metadata attached to every non-sentinel code.
type Meta struct {
	Name        string
	MinHeight   float64
	MaxHeight   float64
	Temperature float64
	Rainfall    float64
	Color       RGB
	TopBlock    int
	FillBlock   int
}

var palette = map[Code]Meta{
	Ocean:            {"OCEAN", -1.0, 0.4, 0.5, 0.5, RGB{0, 0, 112}, BlockGrass, BlockDirt},
	Plains:           {"PLAINS", 0.1, 0.3, 0.8, 0.4, RGB{141, 179, 96}, BlockGrass, BlockDirt},
	Desert:           {"DESERT", 0.1, 0.2, 2.0, 0.0, RGB{250, 148, 24}, BlockSand, BlockSand},
	HillsExtreme:     {"HILLS_EXTREME", 0.3, 1.5, 0.2, 0.3, RGB{96, 96, 96}, BlockGrass, BlockDirt},
	Forest:           {"FOREST", 0.1, 0.3, 0.7, 0.8, RGB{5, 102, 33}, BlockGrass, BlockDirt},
	Taiga:            {"TAIGA", 0.1, 0.4, 0.05, 0.8, RGB{11, 102, 89}, BlockGrass, BlockDirt},
	Swamp:            {"SWAMP", -0.2, 0.1, 0.8, 0.9, RGB{7, 249, 178}, BlockGrass, BlockDirt},
	River:            {"RIVER", -0.5, 0.0, 0.5, 0.5, RGB{0, 0, 255}, BlockGrass, BlockDirt},
	Hell:             {"HELL", 0.1, 0.3, 2.0, 0.0, RGB{255, 0, 0}, BlockGrass, BlockDirt},
	Sky:              {"SKY", 0.1, 0.3, 0.5, 0.5, RGB{128, 128, 255}, BlockGrass, BlockDirt},
	OceanFrozen:      {"OCEAN_FROZEN", -1.0, 0.5, 0.0, 0.5, RGB{144, 144, 160}, BlockGrass, BlockDirt},
	RiverFrozen:      {"RIVER_FROZEN", -0.5, 0.0, 0.0, 0.5, RGB{160, 160, 255}, BlockGrass, BlockDirt},
	PlainsIce:        {"PLAINS_ICE", 0.1, 0.3, 0.0, 0.5, RGB{255, 255, 255}, BlockGrass, BlockDirt},
	HillsExtremeIce:  {"HILLS_EXTREME_ICE", 0.3, 1.3, 0.0, 0.5, RGB{160, 160, 160}, BlockGrass, BlockDirt},
	MushroomIsland:   {"MUSHROOM_ISLAND", 0.2, 1.0, 0.9, 1.0, RGB{255, 0, 255}, BlockMycelium, BlockDirt},
	MushroomBeach:    {"MUSHROOM_BEACH", -1.0, 0.1, 0.9, 1.0, RGB{160, 0, 255}, BlockMycelium, BlockDirt},
	Beach:            {"BEACH", 0.0, 0.1, 0.8, 0.4, RGB{250, 222, 85}, BlockSand, BlockSand},
	HillsDesert:      {"HILLS_DESERT", 0.3, 0.8, 2.0, 0.0, RGB{210, 95, 18}, BlockSand, BlockSand},
	HillsForest:      {"HILLS_FOREST", 0.3, 0.7, 0.7, 0.8, RGB{34, 85, 28}, BlockGrass, BlockDirt},
	HillsTaiga:       {"HILLS_TAIGA", 0.3, 0.8, 0.05, 0.8, RGB{22, 57, 51}, BlockGrass, BlockDirt},
	HillsExtremeEdge: {"HILLS_EXTREME_EDGE", 0.2, 0.8, 0.2, 0.3, RGB{114, 120, 154}, BlockGrass, BlockDirt},
	Jungle:           {"JUNGLE", 0.2, 0.4, 1.2, 0.9, RGB{83, 123, 9}, BlockGrass, BlockDirt},
	HillsJungle:      {"HILLS_JUNGLE", 1.8, 0.5, 1.2, 0.9, RGB{44, 66, 5}, BlockGrass, BlockDirt},
}

// Lookup returns the metadata for a code. ok is false for NONE and for any
// code outside the fixed palette.
func Lookup(c Code) (Meta, bool) {
	m, ok := palette[c]
	return m, ok
}

// String renders the code's palette name, or a numeric fallback for NONE
// and any value outside the palette.
func (c Code) String() string {
	if m, ok := palette[c]; ok {
		return m.Name
	}
	return fmt.Sprintf("Code(%d)", int32(c))
}
