// Package seed parses the caller-facing seed and world-type inputs into
// the values the pipeline needs: a signed 64-bit world seed and a
// biome.WorldType.
package seed

import (
	"errors"
	"strconv"
	"strings"

	"github.com/StoreStation/biomegen/pkg/biome"
)

// ErrInvalidWorldType is returned by ParseWorldType for an unrecognized
// world-type name.
var ErrInvalidWorldType = errors.New("seed: unrecognized world type")

// Parse accepts either a base-10 signed 64-bit integer or a free-form
// string. When the input does not parse as an integer, it falls back to
// the reference platform's string hash.
func Parse(raw string) int64 {
	if v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
		return v
	}
	return StringHash(raw)
}

// StringHash reproduces the reference platform's string hash: a 32-bit
// signed-wrapping polynomial accumulator, sign-extended to 64 bits.
func StringHash(s string) int64 {
	var h int32
	for _, c := range s {
		h = 31*h + int32(c)
	}
	return int64(h)
}

// ParseWorldType resolves a world-type name (case-insensitive) to its
// biome.WorldType, or ErrInvalidWorldType if unrecognized.
func ParseWorldType(name string) (biome.WorldType, error) {
	wt, ok := biome.ParseWorldType(strings.ToUpper(name))
	if !ok {
		return 0, ErrInvalidWorldType
	}
	return wt, nil
}
