// Package catalog renders the op.Code catalogue for tooling consumption:
// a naturally-sorted text listing and a JSON document, the latter built
// incrementally with sjson and optionally narrowed by a gjson-parsed
// filter document.
package catalog

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-symop/internal/op"
)

// Entry is one row of the rendered catalogue.
type Entry struct {
	Name        string
	Arity       int
	Commutative bool
	F00IsZero   bool
	F0xIsZero   bool
	Fx0IsZero   bool
	Example     string
}

// All returns every catalogued op, naturally sorted by name (so "ACOS"
// sorts before "ADD" the way a human would expect, and numeric suffixes,
// were the catalogue ever to grow them, would sort in numeric rather
// than lexicographic order).
func All() []Entry {
	entries := make([]Entry, 0, op.NumBuiltInOps)
	for c := op.Code(0); c < op.NumBuiltInOps; c++ {
		entries = append(entries, entryFor(c))
	}
	sort.Slice(entries, func(i, j int) bool {
		return natural.Less(entries[i].Name, entries[j].Name)
	})
	return entries
}

func entryFor(c op.Code) Entry {
	d := op.DescriptorOf(c)
	xRepr, yRepr := "x", "y"
	return Entry{
		Name:        c.String(),
		Arity:       d.Arity,
		Commutative: d.Commutative,
		F00IsZero:   d.F00IsZero,
		F0xIsZero:   d.F0xIsZero,
		Fx0IsZero:   d.Fx0IsZero,
		Example:     op.Render(c, xRepr, yRepr),
	}
}

// Filter narrows a catalogue listing to the op names present in a JSON
// document shaped like {"include": ["ADD", "SUB", ...]}. An empty or
// unparsable document (no "include" array) matches everything.
func Filter(entries []Entry, filterDoc string) []Entry {
	if filterDoc == "" {
		return entries
	}
	include := gjson.Get(filterDoc, "include")
	if !include.IsArray() {
		return entries
	}
	want := make(map[string]bool)
	for _, v := range include.Array() {
		want[v.String()] = true
	}
	if len(want) == 0 {
		return entries
	}

	out := entries[:0:0]
	for _, e := range entries {
		if want[e.Name] {
			out = append(out, e)
		}
	}
	return out
}

// ToJSON renders entries as a JSON array, built incrementally with sjson
// path-set calls rather than a struct-tagged json.Marshal.
func ToJSON(entries []Entry) (string, error) {
	doc := "[]"
	var err error
	for i, e := range entries {
		prefix := fmt.Sprintf("%d.", i)
		if doc, err = sjson.Set(doc, prefix+"name", e.Name); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, prefix+"arity", e.Arity); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, prefix+"commutative", e.Commutative); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, prefix+"f00_is_zero", e.F00IsZero); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, prefix+"f0x_is_zero", e.F0xIsZero); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, prefix+"fx0_is_zero", e.Fx0IsZero); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, prefix+"example", e.Example); err != nil {
			return "", err
		}
	}
	return doc, nil
}
