// Package cache stores rendered region responses on disk, keyed by the
// full set of inputs that determine a region's contents, so that the
// same (seed, world type, rectangle) request never has to re-run the
// pipeline. This mirrors the reference platform's on-disk
// world_cache/<version>/<world_type>/<seed>/... layout (spec.md §6), but
// collapses it to a single LevelDB keyspace instead of one file per
// chunk hash.
package cache

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/df-mc/goleveldb/leveldb"

	"github.com/StoreStation/biomegen/pkg/biome"
	"github.com/StoreStation/biomegen/pkg/region"
)

// Store is a LevelDB-backed store of rendered region responses. A nil
// *Store is valid and behaves as an always-miss cache, so callers that
// run without a configured cache directory don't need to special-case
// every call site.
type Store struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) a LevelDB database at dir.
func Open(dir string) (*Store, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle. Safe to call on a nil
// *Store.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Key derives the cache key for one region request from every input that
// affects its output, so that distinct requests never collide and
// identical requests always hit.
func Key(seed int64, worldType string, x0, z0 int32, width, depth uint32, useIndex bool) uint64 {
	var buf [29]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(seed))
	binary.BigEndian.PutUint32(buf[8:12], uint32(x0))
	binary.BigEndian.PutUint32(buf[12:16], uint32(z0))
	binary.BigEndian.PutUint32(buf[16:20], width)
	binary.BigEndian.PutUint32(buf[20:24], depth)
	if useIndex {
		buf[24] = 1
	}
	h := xxhash.New()
	h.Write(buf[:])
	h.Write([]byte(worldType))
	return h.Sum64()
}

// GetOrGenerate returns the cached region for key if present, otherwise
// calls fn, stores its result, and returns it. The layer pipeline itself
// is never cached: pipelines are cheap to rebuild and are not safe to
// share across requests, so only the rendered output is persisted. A nil
// *Store always calls fn and discards the result.
func (s *Store) GetOrGenerate(key uint64, fn func() (*region.Image, error)) (*region.Image, error) {
	if s != nil {
		if raw, err := s.db.Get(keyBytes(key), nil); err == nil {
			img, decErr := decodeImage(raw)
			if decErr == nil {
				return img, nil
			}
		} else if !errors.Is(err, leveldb.ErrNotFound) {
			return nil, fmt.Errorf("cache: get: %w", err)
		}
	}

	img, err := fn()
	if err != nil {
		return nil, err
	}

	if s != nil {
		if raw, encErr := encodeImage(img); encErr == nil {
			_ = s.db.Put(keyBytes(key), raw, nil)
		}
	}
	return img, nil
}

func keyBytes(key uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], key)
	return b[:]
}

// gobImage is the on-disk shape: the packed RGB buffer plus its
// dimensions, plus the biome codes it was derived from (needed to
// reconstruct the JSON "values" response without re-running the
// pipeline).
type gobImage struct {
	Width, Depth int
	Codes        []int32
	RGB          []byte
}

func encodeImage(img *region.Image) ([]byte, error) {
	codes := make([]int32, len(img.Codes))
	for i, c := range img.Codes {
		codes[i] = int32(c)
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(gobImage{Width: img.Width, Depth: img.Depth, Codes: codes, RGB: img.RGB}); err != nil {
		return nil, fmt.Errorf("cache: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeImage(raw []byte) (*region.Image, error) {
	var g gobImage
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&g); err != nil {
		return nil, fmt.Errorf("cache: decode: %w", err)
	}
	codes := make([]biome.Code, len(g.Codes))
	for i, c := range g.Codes {
		codes[i] = biome.Code(c)
	}
	return &region.Image{Width: g.Width, Depth: g.Depth, Codes: codes, RGB: g.RGB}, nil
}
