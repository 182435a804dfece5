// Package schema declares the fixed catalog of recognized implant-record
// fields and their expected shapes, and checks loaded records against it.
package schema

import (
	"fmt"

	"github.com/neuroforge/probemeta/pkg/types"
)

// Top-level field names of an implantation record.
const (
	FieldAngle             = "angle"
	FieldDefinition        = "definition"
	FieldDescription       = "description"
	FieldElectrophysiology = "electrophysiology"
	FieldHemisphere        = "hemisphere"
	FieldIdentifier        = "identifier"
	FieldLocation          = "location"
	FieldName              = "name"
	FieldNotes             = "notes"
	FieldPosition          = "position"
	FieldPositionReference = "position_reference"
)

// Sub-fields of the electrophysiology block.
const (
	FieldChannelGroups        = "channel_groups"
	FieldRefElectrodeLocation = "ref_electrode_location"
	FieldSubtype              = "subtype"
	FieldType                 = "type"
)

// FieldSpec describes one catalog entry: the field name, its expected shape
// kind, whether a non-empty value is required, and sub-field specs for
// composite shapes.
type FieldSpec struct {
	Name     string      `json:"name"`
	Shape    string      `json:"shape"`
	Required bool        `json:"required,omitempty"`
	Children []FieldSpec `json:"children,omitempty"`
}

// catalog is the implant-record schema in field-declaration order. Built
// once; never mutated.
var catalog = []FieldSpec{
	{Name: FieldAngle, Shape: types.KindUnit},
	{Name: FieldDefinition, Shape: types.KindScalar},
	{Name: FieldDescription, Shape: types.KindScalar},
	{Name: FieldElectrophysiology, Shape: types.KindComposite, Children: []FieldSpec{
		{Name: FieldChannelGroups, Shape: types.KindArray},
		{Name: FieldDefinition, Shape: types.KindScalar},
		{Name: FieldRefElectrodeLocation, Shape: types.KindEnum},
		{Name: FieldSubtype, Shape: types.KindEnum},
		{Name: FieldType, Shape: types.KindEnum},
	}},
	{Name: FieldHemisphere, Shape: types.KindEnum},
	{Name: FieldIdentifier, Shape: types.KindScalar, Required: true},
	{Name: FieldLocation, Shape: types.KindEnum},
	{Name: FieldName, Shape: types.KindScalar, Required: true},
	{Name: FieldNotes, Shape: types.KindScalar},
	{Name: FieldPosition, Shape: types.KindUnit},
	{Name: FieldPositionReference, Shape: types.KindEnum},
}

// Fields returns the catalog in declaration order. The result is a copy;
// callers may not mutate the registry.
func Fields() []FieldSpec {
	return copySpecs(catalog)
}

func copySpecs(specs []FieldSpec) []FieldSpec {
	out := make([]FieldSpec, len(specs))
	for i, s := range specs {
		out[i] = s
		out[i].Children = copySpecs(s.Children)
	}
	return out
}

// Required returns the names of fields that must carry a non-empty value.
func Required() []string {
	var names []string
	for _, s := range catalog {
		if s.Required {
			names = append(names, s.Name)
		}
	}
	return names
}

// Check compares a loaded record against the catalog and reports fields the
// schema does not declare and fields loaded with a conflicting shape. Check
// is the strict complement to validation; the core validator does not
// consult the registry.
func Check(rec *types.Record) []types.Issue {
	return checkRecord(rec, catalog, "")
}

func checkRecord(rec *types.Record, specs []FieldSpec, prefix string) []types.Issue {
	byName := make(map[string]FieldSpec, len(specs))
	for _, s := range specs {
		byName[s.Name] = s
	}

	issues := []types.Issue{}
	for _, name := range rec.Names() {
		path := fieldPath(prefix, name)
		field, _ := rec.Field(name)

		spec, ok := byName[name]
		if !ok {
			issues = append(issues, types.Issue{
				Kind:  types.IssueUnknownField,
				Field: path,
			})
			continue
		}
		if field.Kind() != spec.Shape {
			issues = append(issues, types.Issue{
				Kind:   types.IssueShapeConflict,
				Field:  path,
				Detail: fmt.Sprintf("loaded as %s, schema declares %s", field.Kind(), spec.Shape),
			})
			continue
		}
		if comp, ok := field.(*types.CompositeField); ok {
			issues = append(issues, checkRecord(comp.Record, spec.Children, path)...)
		}
	}
	return issues
}

func fieldPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
