package biome

import "testing"

func TestPaletteTotality(t *testing.T) {
	// Every non-sentinel code named in the spec's palette table must
	// resolve, and its color must be the documented RGB triple.
	cases := []struct {
		code Code
		rgb  RGB
	}{
		{Ocean, RGB{0, 0, 112}},
		{Plains, RGB{141, 179, 96}},
		{Desert, RGB{250, 148, 24}},
		{HillsExtreme, RGB{96, 96, 96}},
		{Forest, RGB{5, 102, 33}},
		{Taiga, RGB{11, 102, 89}},
		{Swamp, RGB{7, 249, 178}},
		{River, RGB{0, 0, 255}},
		{Hell, RGB{255, 0, 0}},
		{Sky, RGB{128, 128, 255}},
		{OceanFrozen, RGB{144, 144, 160}},
		{RiverFrozen, RGB{160, 160, 255}},
		{PlainsIce, RGB{255, 255, 255}},
		{HillsExtremeIce, RGB{160, 160, 160}},
		{MushroomIsland, RGB{255, 0, 255}},
		{MushroomBeach, RGB{160, 0, 255}},
		{Beach, RGB{250, 222, 85}},
		{HillsDesert, RGB{210, 95, 18}},
		{HillsForest, RGB{34, 85, 28}},
		{HillsTaiga, RGB{22, 57, 51}},
		{HillsExtremeEdge, RGB{114, 120, 154}},
		{Jungle, RGB{83, 123, 9}},
		{HillsJungle, RGB{44, 66, 5}},
	}
	if len(cases) != 23 {
		t.Fatalf("test table itself should list all 23 codes, has %d", len(cases))
	}
	for _, c := range cases {
		m, ok := Lookup(c.code)
		if !ok {
			t.Fatalf("Lookup(%d) missing from palette", c.code)
		}
		if m.Color != c.rgb {
			t.Fatalf("Lookup(%d).Color = %+v, want %+v", c.code, m.Color, c.rgb)
		}
	}
}

func TestNoneIsNotInPalette(t *testing.T) {
	if _, ok := Lookup(NONE); ok {
		t.Fatalf("NONE must never resolve to a palette entry")
	}
}

func TestUnknownCodeNotInPalette(t *testing.T) {
	if _, ok := Lookup(Code(999)); ok {
		t.Fatalf("an out-of-range code must not resolve to a palette entry")
	}
}

func TestWorldTypeRoundTrip(t *testing.T) {
	for _, w := range []WorldType{Default, Flat, LargeBiome, Default11} {
		got, ok := ParseWorldType(w.String())
		if !ok {
			t.Fatalf("ParseWorldType(%q) not found", w.String())
		}
		if got != w {
			t.Fatalf("ParseWorldType(%q) = %v, want %v", w.String(), got, w)
		}
	}
}

func TestParseWorldTypeUnknown(t *testing.T) {
	if _, ok := ParseWorldType("NOT_A_WORLD_TYPE"); ok {
		t.Fatalf("ParseWorldType should reject unknown names")
	}
}
