// Package seededhash implements the layer-seed mixing function used by
// every biome layer to derive its permanent identity, its per-world seed,
// and its transient per-cell chunk seed. It is distinct from javarandom:
// layers never touch the 48-bit LCG directly.
package seededhash

import "errors"

// ErrInvalidArgument is returned when a bound argument is not strictly positive.
var ErrInvalidArgument = errors.New("seededhash: bound must be positive")

const (
	mixMultiplier   = 6364136223846793005
	mixAddend       = 1442695040888963407
	doublePrecision = 1024
)

// Mix is the one primitive every other operation in this package composes:
// state*(state*mixMultiplier+mixAddend) + addend, all wrapping 64-bit
// signed arithmetic.
func Mix(state, addend int64) int64 {
	return state*(state*mixMultiplier+mixAddend) + addend
}

// ComputeLayerSeed derives a layer's permanent seed from its construction
// constant: three stirs of Mix, each reusing the constant as the addend.
func ComputeLayerSeed(constant int64) int64 {
	seed := constant
	seed = Mix(seed, constant)
	seed = Mix(seed, constant)
	seed = Mix(seed, constant)
	return seed
}

// InitWorldSeed derives a layer's world seed from the pipeline's world seed
// and the layer's own layer seed: three stirs of Mix, addend = layerSeed.
func InitWorldSeed(worldSeed, layerSeed int64) int64 {
	ws := worldSeed
	ws = Mix(ws, layerSeed)
	ws = Mix(ws, layerSeed)
	ws = Mix(ws, layerSeed)
	return ws
}

// InitChunkSeed derives the transient per-cell chunk seed from a layer's
// world seed and the requested cell coordinates: x, z, x, z in that order.
func InitChunkSeed(worldSeed, x, z int64) int64 {
	cs := worldSeed
	cs = Mix(cs, x)
	cs = Mix(cs, z)
	cs = Mix(cs, x)
	cs = Mix(cs, z)
	return cs
}

// NextInt draws a bounded value from *chunkSeed and advances *chunkSeed
// exactly once, using the pre-read chunk seed. The result takes the sign
// of (chunkSeed >> 24), matching the reference platform's truncated
// modulo, not a Euclidean one.
func NextInt(chunkSeed *int64, worldSeed int64, bound int32) (int32, error) {
	if bound <= 0 {
		return 0, ErrInvalidArgument
	}
	shifted := *chunkSeed >> 24
	v := int32(shifted % int64(bound))
	*chunkSeed = Mix(*chunkSeed, worldSeed)
	return v, nil
}

// NextDoubleUnit returns NextInt(..., 1024)/1024 - 0.5, used only by the
// voronoi-zoom layer's jitter. Because NextInt keeps the sign of the chunk
// seed, the result lies in (-1.5, 0.5): a non-negative draw gives a value in
// [-0.5, 0.5), a negative draw one in (-1.5, -0.5).
func NextDoubleUnit(chunkSeed *int64, worldSeed int64) (float64, error) {
	v, err := NextInt(chunkSeed, worldSeed, doublePrecision)
	if err != nil {
		return 0, err
	}
	return float64(v)/doublePrecision - 0.5, nil
}
