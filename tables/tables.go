// Package tables holds pre-generated quarter-wave sine tables for package trig.
// The arrays live in the data segment and are never written to; regenerate them
// with go generate after changing tables.yaml.
package tables

//go:generate go run ../cmd/lutrig gen --config tables.yaml

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/lutrig/trig"
)

// Entry describes one embedded table. Exactly one of F32 and F64 is set.
type Entry struct {
	Name string
	F32  []float32
	F64  []float64
}

// Size returns the number of samples in the table.
func (e Entry) Size() int {
	if e.F32 != nil {
		return len(e.F32)
	}
	return len(e.F64)
}

// Bits returns 32 or 64.
func (e Entry) Bits() int {
	if e.F32 != nil {
		return 32
	}
	return 64
}

var registry = orderedmap.NewOrderedMap[string, Entry]()

func init() {
	register(Entry{Name: "Sin1000F32", F32: Sin1000F32[:]})
	register(Entry{Name: "Sin1000F64", F64: Sin1000F64[:]})
}

func register(e Entry) {
	registry.Set(e.Name, e)
}

// All returns every embedded table in registration order.
func All() []Entry {
	entries := make([]Entry, 0, registry.Len())
	for el := registry.Front(); el != nil; el = el.Next() {
		entries = append(entries, el.Value)
	}
	return entries
}

// Lookup returns the table registered under name.
func Lookup(name string) (Entry, bool) {
	return registry.Get(name)
}

// Default32 returns a trig.Table32 over Sin1000F32.
func Default32() trig.Table32 {
	return trig.New32(Sin1000F32[:])
}

// Default64 returns a trig.Table64 over Sin1000F64.
func Default64() trig.Table64 {
	return trig.New64(Sin1000F64[:])
}
