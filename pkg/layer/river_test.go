package layer

import (
	"testing"

	"github.com/StoreStation/biomegen/pkg/biome"
)

func TestRiverInitLeavesOceanAlone(t *testing.T) {
	child := &fakeLayer{grid: newFakeGrid(1, 1, biome.Ocean, nil)}
	l := NewRiverInit(1, child)
	l.WorldSeed = 4

	g := l.GetArea(0, 0, 1, 1)
	if got := g.At(0, 0); got != biome.Ocean {
		t.Fatalf("RiverInit must leave OCEAN untouched, got %v", got)
	}
}

func TestRiverInitMarksNonOceanAsDesertOrExtreme(t *testing.T) {
	child := &fakeLayer{grid: newFakeGrid(1, 1, biome.Plains, nil)}
	l := NewRiverInit(1, child)

	for seed := int64(1); seed < 30; seed++ {
		l.WorldSeed = seed
		g := l.GetArea(0, 0, 1, 1)
		got := g.At(0, 0)
		if got != biome.Desert && got != biome.HillsExtreme {
			t.Fatalf("RiverInit must mark non-OCEAN as DESERT or HILLS_EXTREME, got %v", got)
		}
	}
}

func TestRiverInteriorWhenStencilUniformNonOcean(t *testing.T) {
	child := &fakeLayer{grid: newFakeGrid(3, 3, biome.Desert, nil)}
	l := NewRiver(1, child)

	g := l.GetArea(0, 0, 1, 1)
	if got := g.At(0, 0); got != biome.NONE {
		t.Fatalf("a uniform non-OCEAN stencil must be interior (NONE), got %v", got)
	}
}

func TestRiverBoundaryWhenStencilDisagrees(t *testing.T) {
	grid := newFakeGrid(3, 3, biome.Desert, map[[2]int]biome.Code{{1, 0}: biome.HillsExtreme})
	child := &fakeLayer{grid: grid}
	l := NewRiver(1, child)

	g := l.GetArea(0, 0, 1, 1)
	if got := g.At(0, 0); got != biome.River {
		t.Fatalf("a disagreeing stencil must mark RIVER, got %v", got)
	}
}

func TestRiverOceanInStencilForcesRiver(t *testing.T) {
	grid := newFakeGrid(3, 3, biome.Ocean, nil)
	child := &fakeLayer{grid: grid}
	l := NewRiver(1, child)

	g := l.GetArea(0, 0, 1, 1)
	if got := g.At(0, 0); got != biome.River {
		t.Fatalf("an all-OCEAN stencil must never be interior, even though it is uniform, got %v", got)
	}
}

func TestSwampRiverNonSwampNonJungleNeverErodes(t *testing.T) {
	grid := newFakeGrid(3, 3, biome.Plains, nil)
	child := &fakeLayer{grid: grid}
	l := NewSwampRiver(1, child)

	for seed := int64(1); seed < 30; seed++ {
		l.WorldSeed = seed
		g := l.GetArea(0, 0, 1, 1)
		if got := g.At(0, 0); got != biome.Plains {
			t.Fatalf("SwampRiver must never erode a non-SWAMP non-JUNGLE cell, got %v", got)
		}
	}
}

func TestSwampRiverCanErodeSwamp(t *testing.T) {
	grid := newFakeGrid(3, 3, biome.Swamp, nil)
	child := &fakeLayer{grid: grid}
	l := NewSwampRiver(1, child)

	sawRiver := false
	sawSwamp := false
	for seed := int64(1); seed < 100; seed++ {
		l.WorldSeed = seed
		g := l.GetArea(0, 0, 1, 1)
		switch g.At(0, 0) {
		case biome.River:
			sawRiver = true
		case biome.Swamp:
			sawSwamp = true
		default:
			t.Fatalf("unexpected biome %v from SwampRiver over uniform SWAMP", g.At(0, 0))
		}
	}
	if !sawRiver || !sawSwamp {
		t.Fatalf("expected both RIVER and SWAMP outcomes across seeds, got river=%v swamp=%v", sawRiver, sawSwamp)
	}
}

func TestRiverMixerOceanWins(t *testing.T) {
	land := &fakeLayer{grid: newFakeGrid(1, 1, biome.Ocean, nil)}
	river := &fakeLayer{grid: newFakeGrid(1, 1, biome.River, nil)}
	l := NewRiverMixer(1, land, river)

	g := l.GetArea(0, 0, 1, 1)
	if got := g.At(0, 0); got != biome.Ocean {
		t.Fatalf("RiverMixer must prefer OCEAN over a traced river, got %v", got)
	}
}

func TestRiverMixerFreezesRiverOverIce(t *testing.T) {
	land := &fakeLayer{grid: newFakeGrid(1, 1, biome.PlainsIce, nil)}
	river := &fakeLayer{grid: newFakeGrid(1, 1, biome.River, nil)}
	l := NewRiverMixer(1, land, river)

	g := l.GetArea(0, 0, 1, 1)
	if got := g.At(0, 0); got != biome.RiverFrozen {
		t.Fatalf("RiverMixer must turn a river over PLAINS_ICE into RIVER_FROZEN, got %v", got)
	}
}

func TestRiverMixerMushroomBeachOverMushroomIsland(t *testing.T) {
	land := &fakeLayer{grid: newFakeGrid(1, 1, biome.MushroomIsland, nil)}
	river := &fakeLayer{grid: newFakeGrid(1, 1, biome.River, nil)}
	l := NewRiverMixer(1, land, river)

	g := l.GetArea(0, 0, 1, 1)
	if got := g.At(0, 0); got != biome.MushroomBeach {
		t.Fatalf("RiverMixer must turn a river over MUSHROOM_ISLAND into MUSHROOM_BEACH, got %v", got)
	}
}

func TestRiverMixerNoRiverPassesLandThrough(t *testing.T) {
	land := &fakeLayer{grid: newFakeGrid(1, 1, biome.Forest, nil)}
	river := &fakeLayer{grid: newFakeGrid(1, 1, biome.NONE, nil)}
	l := NewRiverMixer(1, land, river)

	g := l.GetArea(0, 0, 1, 1)
	if got := g.At(0, 0); got != biome.Forest {
		t.Fatalf("RiverMixer with no traced river must pass land through, got %v", got)
	}
}

func TestRiverMixerInitWorldSeedInitializesBothChildren(t *testing.T) {
	land := &fakeLayer{grid: newFakeGrid(1, 1, biome.Forest, nil)}
	river := &fakeLayer{grid: newFakeGrid(1, 1, biome.NONE, nil)}
	l := NewRiverMixer(1, land, river)

	// fakeLayer records every InitWorldSeed call, so both children must
	// have received the pipeline world seed exactly once.
	l.InitWorldSeed(123)
	if len(land.initSeeds) != 1 || land.initSeeds[0] != 123 {
		t.Fatalf("RiverMixer must initialize its land child with the world seed, got calls %v", land.initSeeds)
	}
	if len(river.initSeeds) != 1 || river.initSeeds[0] != 123 {
		t.Fatalf("RiverMixer must initialize its river child with the world seed, got calls %v", river.initSeeds)
	}
	if l.WorldSeed == 0 {
		t.Fatalf("RiverMixer's own world seed must be set after InitWorldSeed")
	}
}
