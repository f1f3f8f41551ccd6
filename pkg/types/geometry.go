// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// GeometryTree is the nested mapping decoded from design/geometry.yaml,
// keyed component -> subcomponent -> attribute (e.g. legs.segments.thigh.length_mm).
type GeometryTree map[string]any

// KeyPath is an ordered chain of mapping keys from the geometry root.
type KeyPath []string

// ParseKeyPath splits a dotted path ("feet.ft_sensor.height_mm") into keys.
// Empty segments are dropped.
func ParseKeyPath(s string) KeyPath {
	var p KeyPath
	for _, part := range strings.Split(s, ".") {
		part = strings.TrimSpace(part)
		if part != "" {
			p = append(p, part)
		}
	}
	return p
}

// String joins the keys with dots.
func (p KeyPath) String() string {
	return strings.Join(p, ".")
}

// Lookup resolves path key by key from the root of the tree. It reports
// false as soon as a key is absent or an intermediate value is not a
// mapping. A key that is present with a null value resolves successfully.
func (g GeometryTree) Lookup(path KeyPath) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	var cursor any = map[string]any(g)
	for _, key := range path {
		m, ok := asMap(cursor)
		if !ok {
			return nil, false
		}
		v, ok := m[key]
		if !ok {
			return nil, false
		}
		cursor = v
	}
	return cursor, true
}

// asMap accepts both the map shapes a YAML decoder can produce.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case GeometryTree:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// Document is the text of one rendered document, identified by its file name.
// The text is scanned line by line and never parsed.
type Document struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}
