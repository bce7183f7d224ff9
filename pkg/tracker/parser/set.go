package parser

import "sort"

// StringSet collects distinct values during a single pass.
type StringSet map[string]struct{}

// Add inserts v.
func (s StringSet) Add(v string) {
	s[v] = struct{}{}
}

// Sorted returns the members in ascending byte order. The result is never nil.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
