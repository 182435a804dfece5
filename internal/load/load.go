// Package load normalizes a parsed document tree into a typed Record.
// Shape is inferred from key presence: a unit key makes a unit field, an
// alternatives key an enum field, and so on. The transform is pure; a
// document either loads completely or not at all.
package load

import (
	"fmt"

	"github.com/neuroforge/probemeta/pkg/types"
)

// shapeKeys are the mapping keys that mark a leaf field. A mapping whose
// key set stays inside this set is a leaf; any other key makes it a
// composite of nested fields.
var shapeKeys = map[string]bool{
	"value":        true,
	"unit":         true,
	"alternatives": true,
	"definition":   true,
}

// Load builds an immutable record from a parsed document tree.
// Returns ErrMalformedField when a mapping field has no value key and no
// nested sub-fields, and ErrUnknownShape when a field's key set matches no
// recognized shape. Both abort the load.
func Load(doc *types.Doc) (*types.Record, error) {
	return loadRecord(doc, "")
}

func loadRecord(doc *types.Doc, prefix string) (*types.Record, error) {
	rec := types.NewRecord()
	for _, name := range doc.Keys() {
		raw, _ := doc.Get(name)
		path := fieldPath(prefix, name)

		field, err := loadField(raw, path)
		if err != nil {
			return nil, err
		}
		if err := rec.Append(name, field); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func loadField(raw any, path string) (types.Field, error) {
	switch v := raw.(type) {
	case *types.Doc:
		if isLeaf(v) {
			return loadLeaf(v, path)
		}
		sub, err := loadRecord(v, path)
		if err != nil {
			return nil, err
		}
		return &types.CompositeField{Record: sub}, nil
	case []any:
		return &types.ArrayField{Value: v}, nil
	default:
		// Bare scalar, e.g. identifier or a top-level definition.
		return &types.ScalarField{Value: v}, nil
	}
}

// isLeaf reports whether a mapping is a leaf field rather than a composite
// of nested fields. An empty mapping is a leaf; it fails later for having
// no value key.
func isLeaf(doc *types.Doc) bool {
	for _, k := range doc.Keys() {
		if !shapeKeys[k] {
			return false
		}
	}
	return true
}

// loadLeaf builds a Scalar, Unit, Enum, or Array field from a leaf mapping.
func loadLeaf(doc *types.Doc, path string) (types.Field, error) {
	if !doc.Has("value") {
		return nil, fmt.Errorf("%w: field %q has no value key and no sub-fields", types.ErrMalformedField, path)
	}
	value, _ := doc.Get("value")
	definition := stringKey(doc, "definition")

	hasUnit := doc.Has("unit")
	hasAlternatives := doc.Has("alternatives")
	if hasUnit && hasAlternatives {
		return nil, fmt.Errorf("%w: field %q declares both unit and alternatives", types.ErrUnknownShape, path)
	}

	switch {
	case hasAlternatives:
		rawAlt, _ := doc.Get("alternatives")
		allowed, descriptions, err := normalizeAlternatives(rawAlt, path)
		if err != nil {
			return nil, err
		}
		return &types.EnumField{
			Value:        value,
			Allowed:      allowed,
			Descriptions: descriptions,
			Definition:   definition,
		}, nil
	case hasUnit:
		return &types.UnitField{
			Unit:       stringKey(doc, "unit"),
			Value:      value,
			Definition: definition,
		}, nil
	default:
		if seq, ok := value.([]any); ok {
			return &types.ArrayField{Value: seq, Definition: definition, Wrapped: true}, nil
		}
		return &types.ScalarField{Value: value, Definition: definition, Wrapped: true}, nil
	}
}

// normalizeAlternatives reduces both serialized forms of alternatives to an
// ordered allowed list. The mapping form additionally yields descriptions so
// the validator has a single code path over allowed.
func normalizeAlternatives(raw any, path string) (allowed []string, descriptions map[string]string, err error) {
	switch alt := raw.(type) {
	case []any:
		allowed = make([]string, 0, len(alt))
		for _, e := range alt {
			s, ok := e.(string)
			if !ok {
				return nil, nil, fmt.Errorf("%w: field %q alternatives contain non-string %v", types.ErrUnknownShape, path, e)
			}
			allowed = append(allowed, s)
		}
		return allowed, nil, nil
	case *types.Doc:
		allowed = make([]string, 0, alt.Len())
		descriptions = make(map[string]string, alt.Len())
		for _, code := range alt.Keys() {
			v, _ := alt.Get(code)
			s, ok := v.(string)
			if !ok {
				return nil, nil, fmt.Errorf("%w: field %q alternative %q has non-string description %v", types.ErrUnknownShape, path, code, v)
			}
			allowed = append(allowed, code)
			descriptions[code] = s
		}
		return allowed, descriptions, nil
	default:
		return nil, nil, fmt.Errorf("%w: field %q alternatives are neither a sequence nor a mapping", types.ErrUnknownShape, path)
	}
}

// stringKey returns the string value under key, or "" when absent or not a
// string.
func stringKey(doc *types.Doc, key string) string {
	v, ok := doc.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func fieldPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
