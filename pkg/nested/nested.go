// Package nested locates values bound to a key name anywhere inside a
// decoded JSON value tree, however deeply or irregularly it is nested.
package nested

import (
	"slices"
)

// Lookup walks tree depth-first and collects every value held under an
// object member named key, at any depth. Matched subtrees are still
// descended into, so a key occurring inside an already matched value is
// reported again. The input tree is never modified.
//
// Tree is expected to be the result of encoding/json decoding into any:
// map[string]any, []any and scalars. Scalars and nils are skipped.
// Object members are visited in sorted key order, which keeps the result
// order deterministic (Go maps do not preserve JSON document order).
func Lookup(tree any, key string) []any {
	var found []any
	lookup(tree, key, &found)
	return found
}

func lookup(node any, key string, found *[]any) {
	switch v := node.(type) {
	case map[string]any:
		if match, ok := v[key]; ok {
			*found = append(*found, match)
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lookup(v[k], key, found)
		}
	case []any:
		for _, item := range v {
			lookup(item, key, found)
		}
	}
}
