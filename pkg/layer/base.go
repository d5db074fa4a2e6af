package layer

import (
	"github.com/StoreStation/biomegen/pkg/biome"
	"github.com/StoreStation/biomegen/pkg/seededhash"
)

// Layer is a stateful transformer node producing a rectangular biome grid
// from zero, one, or two child layers. GetArea is a pure function of
// (world_seed, layer_seed, x, z, width, depth) plus any children's
// contracts; it never fails once InitWorldSeed has run.
type Layer interface {
	GetArea(x, z, width, depth int) *Grid
	InitWorldSeed(worldSeed int64)
}

// Sink receives a debug trace for every GetArea call, mirroring the
// reference platform's SAX-style layer dump. Attaching a sink is the
// explicit testability surface named in the spec's testable properties.
type Sink interface {
	Emit(name string, x, z, width, depth int, worldSeed, layerSeed, chunkSeed int64, values []biome.Code)
}

// Base is embedded by every concrete layer. It owns the layer's permanent
// seed, its world seed (set once per pipeline build), and its transient
// chunk seed (rewritten once per output cell).
type Base struct {
	LayerSeed int64
	WorldSeed int64
	ChunkSeed int64
	Child     Layer
	Sink      Sink
}

// NewBase computes the layer seed from its construction constant and
// stores the child reference. Used by every concrete layer constructor.
func NewBase(seedConstant int64, child Layer) Base {
	return Base{LayerSeed: seededhash.ComputeLayerSeed(seedConstant), Child: child}
}

// InitWorldSeed initializes the child first (if any), then self, matching
// the reference platform's recursive top-down-then-self order.
func (b *Base) InitWorldSeed(worldSeed int64) {
	if b.Child != nil {
		b.Child.InitWorldSeed(worldSeed)
	}
	b.WorldSeed = seededhash.InitWorldSeed(worldSeed, b.LayerSeed)
}

// InitChunkSeed rewrites the transient chunk seed ahead of a cell's draws.
func (b *Base) InitChunkSeed(x, z int64) {
	b.ChunkSeed = seededhash.InitChunkSeed(b.WorldSeed, x, z)
}

// nextInt draws a bounded value from the layer's own chunk/world seed pair.
// bound is always a small compile-time-fixed constant in every call site in
// this package, so a SeededHash error here denotes a programming mistake,
// not a runtime condition the layer core is specified to handle.
func (b *Base) nextInt(bound int32) int32 {
	v, err := seededhash.NextInt(&b.ChunkSeed, b.WorldSeed, bound)
	if err != nil {
		panic(err)
	}
	return v
}

// nextDoubleUnit draws a jitter value in (-1.5, 0.5) at fixed precision
// 1024 (see seededhash.NextDoubleUnit), used only by VoronoiZoom.
func (b *Base) nextDoubleUnit() float64 {
	v, err := seededhash.NextDoubleUnit(&b.ChunkSeed, b.WorldSeed)
	if err != nil {
		panic(err)
	}
	return v
}

func (b *Base) emit(name string, x, z, width, depth int, values []biome.Code) {
	if b.Sink == nil {
		return
	}
	b.Sink.Emit(name, x, z, width, depth, b.WorldSeed, b.LayerSeed, b.ChunkSeed, values)
}
