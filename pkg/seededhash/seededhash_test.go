package seededhash

import "testing"

func TestMixIsDeterministic(t *testing.T) {
	a := Mix(42, 7)
	b := Mix(42, 7)
	if a != b {
		t.Fatalf("Mix(42, 7) is not deterministic: %d != %d", a, b)
	}
}

func TestMixWrapsOnOverflow(t *testing.T) {
	// A state near the int64 boundary must wrap via two's-complement
	// arithmetic rather than panic or saturate.
	var state, addend int64 = 9223372036854775807, 1
	got := Mix(state, addend)
	want := state*(state*mixMultiplier+mixAddend) + addend
	if got != want {
		t.Fatalf("Mix did not wrap as expected: got %d want %d", got, want)
	}
}

func TestComputeLayerSeedIsThreeStirs(t *testing.T) {
	const constant int64 = 2001
	want := constant
	want = Mix(want, constant)
	want = Mix(want, constant)
	want = Mix(want, constant)
	if got := ComputeLayerSeed(constant); got != want {
		t.Fatalf("ComputeLayerSeed(%d) = %d, want %d", constant, got, want)
	}
}

func TestInitWorldSeedIsThreeStirs(t *testing.T) {
	worldSeed := int64(123456789)
	layerSeed := ComputeLayerSeed(2001)
	want := worldSeed
	want = Mix(want, layerSeed)
	want = Mix(want, layerSeed)
	want = Mix(want, layerSeed)
	if got := InitWorldSeed(worldSeed, layerSeed); got != want {
		t.Fatalf("InitWorldSeed = %d, want %d", got, want)
	}
}

func TestInitChunkSeedOrderIsXZXZ(t *testing.T) {
	worldSeed := int64(123456789)
	x, z := int64(5), int64(-3)
	want := worldSeed
	want = Mix(want, x)
	want = Mix(want, z)
	want = Mix(want, x)
	want = Mix(want, z)
	if got := InitChunkSeed(worldSeed, x, z); got != want {
		t.Fatalf("InitChunkSeed order mismatch: got %d want %d", got, want)
	}
}

func TestNextIntAdvancesExactlyOnceUsingPreReadSeed(t *testing.T) {
	worldSeed := int64(987654321)
	chunkSeed := InitChunkSeed(worldSeed, 1, 1)
	preRead := chunkSeed

	v, err := NextInt(&chunkSeed, worldSeed, 10)
	if err != nil {
		t.Fatalf("NextInt: %v", err)
	}

	wantV := int32((preRead >> 24) % 10)
	if v != wantV {
		t.Fatalf("NextInt value = %d, want %d", v, wantV)
	}
	if chunkSeed != Mix(preRead, worldSeed) {
		t.Fatalf("NextInt did not advance chunk seed from the pre-read value")
	}
}

func TestNextIntSignFollowsDividend(t *testing.T) {
	worldSeed := int64(0)
	// Choose a chunk seed whose top bits, once shifted, are negative.
	chunkSeed := int64(-1)
	v, err := NextInt(&chunkSeed, worldSeed, 7)
	if err != nil {
		t.Fatalf("NextInt: %v", err)
	}
	if v > 0 {
		t.Fatalf("NextInt(-1 >> 24, 7) = %d, want <= 0 (sign of dividend)", v)
	}
}

func TestNextIntRejectsNonPositiveBound(t *testing.T) {
	cs := int64(1)
	if _, err := NextInt(&cs, 0, 0); err != ErrInvalidArgument {
		t.Fatalf("NextInt(bound=0) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := NextInt(&cs, 0, -3); err != ErrInvalidArgument {
		t.Fatalf("NextInt(bound=-3) error = %v, want ErrInvalidArgument", err)
	}
}

func TestNextDoubleUnitRange(t *testing.T) {
	worldSeed := int64(42)
	chunkSeed := InitChunkSeed(worldSeed, 10, 20)
	for i := 0; i < 100; i++ {
		v, err := NextDoubleUnit(&chunkSeed, worldSeed)
		if err != nil {
			t.Fatalf("NextDoubleUnit: %v", err)
		}
		if v <= -1.5 || v >= 0.5 {
			t.Fatalf("NextDoubleUnit() = %v, want in (-1.5, 0.5)", v)
		}
	}
}
