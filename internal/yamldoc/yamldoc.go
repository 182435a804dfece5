// Package yamldoc converts between YAML documents and the ordered tree the
// loader consumes. It works on yaml.Node rather than plain maps so the
// document's key order survives decoding; nothing outside this package
// knows the records came from YAML.
package yamldoc

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/neuroforge/probemeta/pkg/types"
)

// Decode parses a YAML document into an ordered tree. The top level must be
// a mapping.
func Decode(data []byte) (*types.Doc, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	top, err := decodeNode(root.Content[0])
	if err != nil {
		return nil, err
	}
	doc, ok := top.(*types.Doc)
	if !ok {
		return nil, fmt.Errorf("top level of document is not a mapping")
	}
	return doc, nil
}

func decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		doc := types.NewDoc()
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("decode mapping key: %w", err)
			}
			val, err := decodeNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			doc.Set(key, val)
		}
		return doc, nil
	case yaml.SequenceNode:
		seq := make([]any, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := decodeNode(c)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	case yaml.AliasNode:
		return decodeNode(node.Alias)
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode scalar: %w", err)
		}
		return v, nil
	}
}

// Encode serializes a loaded record back to YAML, preserving field order
// and each field's serialized form: bare scalars stay bare, wrapped fields
// keep their mapping, and enum alternatives keep their sequence or mapping
// form.
func Encode(rec *types.Record) ([]byte, error) {
	node, err := recordNode(rec)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return out, nil
}

func recordNode(rec *types.Record) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range rec.Names() {
		field, _ := rec.Field(name)
		valNode, err := fieldNode(field)
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", name, err)
		}
		node.Content = append(node.Content, scalarNode(name), valNode)
	}
	return node, nil
}

func fieldNode(field types.Field) (*yaml.Node, error) {
	switch f := field.(type) {
	case *types.ScalarField:
		if !f.Wrapped && f.Definition == "" {
			return valueNode(f.Value)
		}
		return mappingNode(
			member{"definition", f.Definition, f.Definition != ""},
			member{"value", f.Value, true},
		)
	case *types.UnitField:
		return mappingNode(
			member{"definition", f.Definition, f.Definition != ""},
			member{"unit", f.Unit, true},
			member{"value", f.Value, true},
		)
	case *types.EnumField:
		alt, err := alternativesNode(f)
		if err != nil {
			return nil, err
		}
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		node.Content = append(node.Content, scalarNode("alternatives"), alt)
		if f.Definition != "" {
			dn, err := valueNode(f.Definition)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("definition"), dn)
		}
		vn, err := valueNode(f.Value)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, scalarNode("value"), vn)
		return node, nil
	case *types.ArrayField:
		if !f.Wrapped && f.Definition == "" {
			return valueNode(f.Value)
		}
		return mappingNode(
			member{"definition", f.Definition, f.Definition != ""},
			member{"value", f.Value, true},
		)
	case *types.CompositeField:
		return recordNode(f.Record)
	default:
		return nil, fmt.Errorf("unsupported field kind %q", field.Kind())
	}
}

// alternativesNode re-emits alternatives in their original form: a mapping
// when descriptions were declared, otherwise a sequence.
func alternativesNode(f *types.EnumField) (*yaml.Node, error) {
	if f.Descriptions == nil {
		return valueNode(f.Allowed)
	}
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, code := range f.Allowed {
		node.Content = append(node.Content, scalarNode(code), scalarNode(f.Descriptions[code]))
	}
	return node, nil
}

// member is one optional key of a field mapping, emitted in argument order.
type member struct {
	key     string
	value   any
	present bool
}

func mappingNode(members ...member) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, m := range members {
		if !m.present {
			continue
		}
		vn, err := valueNode(m.value)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, scalarNode(m.key), vn)
	}
	return node, nil
}

func valueNode(v any) (*yaml.Node, error) {
	if v == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("encode value %v: %w", v, err)
	}
	return node, nil
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
