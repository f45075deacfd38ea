// Package vars implements the global variable store: a deduplicated,
// append-only registry of normalized style values keyed by short opaque ids.
// Two structurally equal values always share one id, so repeated styles in a
// large document collapse to a single entry referenced from every node that
// uses them.
//
// A Store is not safe for concurrent writers. One traversal owns one Store;
// parallel extraction of independent subtrees must use separate Stores and
// merge afterwards.
package vars

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"
)

// StyleID is an opaque reference to a store entry, of the form
// "<prefix>_<6 random chars>". Within one Store no two StyleIDs map to
// structurally equal values.
type StyleID string

// Prefix returns the type prefix portion of the id ("fill" for "fill_A1B2C3"),
// or the empty string when the id has no underscore.
func (id StyleID) Prefix() string {
	if i := strings.LastIndex(string(id), "_"); i > 0 {
		return string(id)[:i]
	}
	return ""
}

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	idLength   = 6
)

// Store canonicalizes and deduplicates style values. Entries are only ever
// appended during a traversal session; Clear resets the store between
// independent sessions.
type Store struct {
	styles   map[StyleID]any
	bySerial map[string]StyleID
	serials  map[StyleID]string

	duplicateHits int
	rng           *rand.Rand
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		styles:   make(map[StyleID]any),
		bySerial: make(map[string]StyleID),
		serials:  make(map[StyleID]string),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// FindOrCreate returns the id of an existing entry structurally equal to value,
// or inserts value under a fresh id with the given type prefix. Equality is
// deep value equality over the canonical serialization, never reference
// identity, so two nodes carrying visually identical styles converge to one
// entry no matter how often they are extracted.
func (s *Store) FindOrCreate(value any, typePrefix string) StyleID {
	serial := canonicalSerial(value)

	if id, ok := s.bySerial[serial]; ok {
		s.duplicateHits++
		return id
	}

	id := s.newID(typePrefix)
	s.styles[id] = value
	s.bySerial[serial] = id
	s.serials[id] = serial
	return id
}

// newID generates a fresh id under the prefix, retrying on the (unlikely)
// collision with an existing key rather than overwriting it.
func (s *Store) newID(prefix string) StyleID {
	for {
		suffix := make([]byte, idLength)
		for i := range suffix {
			suffix[i] = idAlphabet[s.rng.Intn(len(idAlphabet))]
		}
		id := StyleID(prefix + "_" + string(suffix))
		if _, exists := s.styles[id]; !exists {
			return id
		}
	}
}

// Get returns the value stored under id.
func (s *Store) Get(id StyleID) (any, bool) {
	v, ok := s.styles[id]
	return v, ok
}

// GetByType returns all entries whose id carries the given type prefix.
func (s *Store) GetByType(typePrefix string) map[StyleID]any {
	out := make(map[StyleID]any)
	for id, v := range s.styles {
		if id.Prefix() == typePrefix {
			out[id] = v
		}
	}
	return out
}

// Len returns the number of distinct entries.
func (s *Store) Len() int {
	return len(s.styles)
}

// All returns every entry. The returned map is a copy; mutating it does not
// affect the store.
func (s *Store) All() map[StyleID]any {
	out := make(map[StyleID]any, len(s.styles))
	for id, v := range s.styles {
		out[id] = v
	}
	return out
}

// IDs returns every id in lexical order, for deterministic iteration.
func (s *Store) IDs() []StyleID {
	ids := make([]StyleID, 0, len(s.styles))
	for id := range s.styles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clear removes every entry, resetting the store for a new session.
func (s *Store) Clear() {
	s.styles = make(map[StyleID]any)
	s.bySerial = make(map[string]StyleID)
	s.serials = make(map[StyleID]string)
	s.duplicateHits = 0
}

// Statistics summarizes store usage.
type Statistics struct {
	Count         int            `json:"count"`
	ByType        map[string]int `json:"byType"`
	DuplicateHits int            `json:"duplicateHits"`
	ApproxBytes   int            `json:"approxBytes"`
}

// Statistics reports the entry count, per-prefix breakdown, how many
// FindOrCreate calls were served by an existing entry, and an approximate
// memory footprint based on serialized sizes.
func (s *Store) Statistics() Statistics {
	stats := Statistics{
		Count:         len(s.styles),
		ByType:        make(map[string]int),
		DuplicateHits: s.duplicateHits,
	}
	for id, serial := range s.serials {
		stats.ByType[id.Prefix()]++
		stats.ApproxBytes += len(id) + len(serial)
	}
	return stats
}

// MarshalJSON serializes the store as {"styles": {id: value}}.
func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Styles map[StyleID]any `json:"styles"`
	}{Styles: s.styles})
}

// canonicalSerial produces a deterministic serialization for structural
// comparison. Store values are structs and slices with stable field order, so
// JSON is canonical for them; values that cannot marshal fall back to the Go
// literal form rather than failing the traversal.
func canonicalSerial(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%#v", value)
	}
	return string(data)
}
