// Released under an MIT license. See LICENSE.

// Package hash provides vau's symbol to value mapping type.
package hash

import (
	"sort"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/reference"
	"github.com/michaelmacinnis/vau/internal/common/struct/slot"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
)

// T (hash) maps symbols to values. Symbols are interned so the map is
// keyed by identity.
type T struct {
	m map[*sym.T]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[*sym.T]reference.I{}}
}

// Copy creates a new hash with a copy of every reference.
func (h *hash) Copy() *hash {
	if h == nil {
		return nil
	}

	fresh := New()
	for k, v := range h.m {
		fresh.m[k] = v.Copy()
	}

	return fresh
}

// Del frees the symbol k from any association in the hash h.
func (h *hash) Del(k *sym.T) bool {
	if h == nil {
		return false
	}

	_, ok := h.m[k]
	if !ok {
		return false
	}

	delete(h.m, k)

	return true
}

// Get retrieves the reference associated with the symbol k in the hash h.
func (h *hash) Get(k *sym.T) reference.I {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Keys returns the symbols in the hash h ordered by namespace and name.
func (h *hash) Keys() []*sym.T {
	keys := make([]*sym.T, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Namespace() != keys[j].Namespace() {
			return keys[i].Namespace() < keys[j].Namespace()
		}

		return keys[i].String() < keys[j].String()
	})

	return keys
}

// Set associates the symbol k with the cell v in the hash h.
// An existing reference is updated in place.
func (h *hash) Set(k *sym.T, v cell.I) {
	if r, ok := h.m[k]; ok {
		r.Set(v)

		return
	}

	h.m[k] = slot.New(v)
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	return len(h.m)
}
