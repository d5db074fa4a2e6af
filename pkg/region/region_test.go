package region

import (
	"testing"

	"github.com/StoreStation/biomegen/pkg/biome"
)

func TestGenerateRejectsZeroSize(t *testing.T) {
	_, err := Generate(Request{Seed: 1, Width: 0, Depth: 16})
	if err == nil {
		t.Fatalf("expected an error for zero width")
	}
}

func TestGenerateRoundsToChunkMultiples(t *testing.T) {
	img, err := Generate(Request{Seed: 1, OriginX: 3, OriginZ: 3, Width: 10, Depth: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// [3, 13) rounds out to the enclosing chunk span [0, 16).
	if img.Width != 16 || img.Depth != 16 {
		t.Fatalf("expected rounding to a 16x16 span, got %dx%d", img.Width, img.Depth)
	}
	if len(img.RGB) != img.Width*img.Depth*3 {
		t.Fatalf("RGB buffer length mismatch: got %d, want %d", len(img.RGB), img.Width*img.Depth*3)
	}
}

func TestGenerateIsPure(t *testing.T) {
	req := Request{Seed: 555, OriginX: -40, OriginZ: 20, Width: 48, Depth: 48}
	img1, err := Generate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img2, err := Generate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range img1.Codes {
		if img1.Codes[i] != img2.Codes[i] {
			t.Fatalf("two identical requests diverged at cell %d", i)
		}
	}
}

func TestGenerateNeverLeaksSentinel(t *testing.T) {
	img, err := Generate(Request{Seed: 77, OriginX: 0, OriginZ: 0, Width: 64, Depth: 64})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range img.Codes {
		if c == biome.NONE {
			t.Fatalf("output grid leaked the NONE sentinel")
		}
	}
}

func TestGenerateUsesIndexLayerWhenRequested(t *testing.T) {
	base := Request{Seed: 13, OriginX: 0, OriginZ: 0, Width: 32, Depth: 32}
	block, err := Generate(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	indexed := base
	indexed.UseIndexLayer = true
	index, err := Generate(indexed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The two layers are built differently (VoronoiZoom vs RiverMixer
	// directly), so they need not be identical; just confirm both paths
	// produce valid, equally-shaped output through the same driver code.
	if block.Width != index.Width || block.Depth != index.Depth {
		t.Fatalf("block and index images have mismatched shapes: %dx%d vs %dx%d", block.Width, block.Depth, index.Width, index.Depth)
	}
}

func TestTranslationChunkStability(t *testing.T) {
	// The contents of a chunk-aligned 16x16 region must depend only on
	// (seed, world_type, x, z): requesting it alone must match requesting
	// it as part of a larger tiled rectangle.
	whole, err := Generate(Request{Seed: 31, OriginX: 0, OriginZ: 0, Width: 32, Depth: 32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chunk, err := Generate(Request{Seed: 31, OriginX: 16, OriginZ: 16, Width: 16, Depth: 16})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			want := whole.Codes[(16+x)+(16+z)*whole.Width]
			got := chunk.Codes[x+z*chunk.Width]
			if want != got {
				t.Fatalf("chunk (1,1) diverged between whole-region and single-chunk requests at (%d,%d): got %v, want %v", x, z, got, want)
			}
		}
	}
}
