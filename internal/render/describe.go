// Package render turns a search path into the external action/utterance
// stream (spec.md §4.5-§4.6).
package render

import (
	"strings"

	"shrdlite/internal/world"
)

// field is one projection of an Object used to build a description tuple:
// get extracts the corresponding value. The order of fields in a tuple is
// the word order used when rendering.
type field struct {
	get func(world.Object) string
}

func formField() field { return field{get: func(o world.Object) string { return string(o.Form) }} }
func colorField() field { return field{get: func(o world.Object) string { return o.Color }} }
func sizeField() field { return field{get: func(o world.Object) string { return string(o.Size) }} }

// ShortestDescription picks the shortest property tuple that uniquely
// identifies target among present, trying [form], [color,form], [size,form]
// in order and falling back to [size,color,form] when none of those three
// is unique (spec.md §4.6).
func ShortestDescription(objects map[string]world.Object, present []string, target string) string {
	if _, ok := objects[target]; !ok {
		return target
	}

	tuples := [][]field{
		{formField()},
		{colorField(), formField()},
		{sizeField(), formField()},
	}
	for _, tuple := range tuples {
		if unique(objects, present, target, tuple) {
			return render(objects[target], tuple)
		}
	}
	return render(objects[target], []field{sizeField(), colorField(), formField()})
}

// unique reports whether no other present object has the same values as
// target on every field of tuple.
func unique(objects map[string]world.Object, present []string, target string, tuple []field) bool {
	want := values(objects[target], tuple)
	for _, id := range present {
		if id == target {
			continue
		}
		other, ok := objects[id]
		if !ok {
			continue
		}
		if values(other, tuple) == want {
			return false
		}
	}
	return true
}

func values(obj world.Object, tuple []field) string {
	parts := make([]string, len(tuple))
	for i, f := range tuple {
		parts[i] = f.get(obj)
	}
	return strings.Join(parts, "\x00")
}

func render(obj world.Object, tuple []field) string {
	var parts []string
	for _, f := range tuple {
		if v := f.get(obj); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
