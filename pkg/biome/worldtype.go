package biome

import "fmt"

// WorldType selects pipeline assembly variants: zoom counts and the
// initial biome palette available to BiomeInit.
type WorldType int

const (
	Default WorldType = iota
	Flat
	LargeBiome
	Default11
)

var worldTypeNames = map[WorldType]string{
	Default:    "DEFAULT",
	Flat:       "FLAT",
	LargeBiome: "LARGE_BIOME",
	Default11:  "DEFAULT_1_1",
}

func (w WorldType) String() string {
	if name, ok := worldTypeNames[w]; ok {
		return name
	}
	return fmt.Sprintf("WorldType(%d)", int(w))
}

// ParseWorldType resolves a world-type name to its enum value. Matching is
// case-sensitive against the spec's canonical uppercase names.
func ParseWorldType(name string) (WorldType, bool) {
	for w, n := range worldTypeNames {
		if n == name {
			return w, true
		}
	}
	return 0, false
}
