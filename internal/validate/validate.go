// Package validate checks loaded records against the implant-record rules.
// Validation is total: it never stops at the first finding and never
// mutates the record. Issues come back as data, in field-declaration order.
package validate

import (
	"fmt"
	"reflect"

	"github.com/neuroforge/probemeta/internal/schema"
	"github.com/neuroforge/probemeta/pkg/types"
)

// Validate walks the record and accumulates every issue found. Empty values
// count as unset and are skipped except on required fields. The identity
// consistency finding, which spans two fields, is appended after the walk.
func Validate(rec *types.Record) []types.Issue {
	issues := walkRecord(rec, "")
	issues = append(issues, requiredIssues(rec)...)
	issues = append(issues, identityIssues(rec)...)
	return issues
}

func walkRecord(rec *types.Record, prefix string) []types.Issue {
	issues := []types.Issue{}
	for _, name := range rec.Names() {
		path := fieldPath(prefix, name)
		field, _ := rec.Field(name)

		switch f := field.(type) {
		case *types.EnumField:
			issues = append(issues, enumIssues(f, path)...)
		case *types.UnitField:
			issues = append(issues, unitIssues(f, path)...)
		case *types.ArrayField:
			issues = append(issues, arrayIssues(f, path)...)
		case *types.CompositeField:
			issues = append(issues, walkRecord(f.Record, path)...)
		}
	}
	return issues
}

// enumIssues checks membership of an enum value in its alternatives. A
// sequence value is checked element by element; empty values and elements
// are unset and exempt.
func enumIssues(f *types.EnumField, path string) []types.Issue {
	if types.EmptyValue(f.Value) {
		return nil
	}
	allowed := make(map[string]bool, len(f.Allowed))
	for _, a := range f.Allowed {
		allowed[a] = true
	}

	violation := func(v any) types.Issue {
		return types.Issue{
			Kind:    types.IssueEnumViolation,
			Field:   path,
			Value:   v,
			Allowed: f.Allowed,
		}
	}

	var issues []types.Issue
	switch v := f.Value.(type) {
	case []any:
		for _, e := range v {
			if types.EmptyValue(e) {
				continue
			}
			s, ok := e.(string)
			if !ok || !allowed[s] {
				issues = append(issues, violation(e))
			}
		}
	case string:
		if !allowed[v] {
			issues = append(issues, violation(v))
		}
	default:
		// Alternatives are strings, so a non-string value can never match.
		issues = append(issues, violation(v))
	}
	return issues
}

// unitIssues reports a unit-tagged field carrying numeric data without a
// unit. A sequence value counts as numeric when any element is.
func unitIssues(f *types.UnitField, path string) []types.Issue {
	if f.Unit != "" || types.EmptyValue(f.Value) {
		return nil
	}
	numeric := false
	switch v := f.Value.(type) {
	case []any:
		for _, e := range v {
			if types.NumericValue(e) {
				numeric = true
				break
			}
		}
	default:
		numeric = types.NumericValue(v)
	}
	if !numeric {
		return nil
	}
	return []types.Issue{{
		Kind:  types.IssueMissingUnit,
		Field: path,
		Value: f.Value,
	}}
}

// arrayIssues reports sequences mixing element types, such as numbers next
// to strings.
func arrayIssues(f *types.ArrayField, path string) []types.Issue {
	classes := make(map[string]bool)
	for _, e := range f.Value {
		switch {
		case types.NumericValue(e):
			classes["numeric"] = true
		case e == nil:
			// Unset elements do not break homogeneity.
		default:
			classes[fmt.Sprintf("%T", e)] = true
		}
	}
	if len(classes) <= 1 {
		return nil
	}
	return []types.Issue{{
		Kind:  types.IssueHeterogeneousArray,
		Field: path,
		Value: f.Value,
	}}
}

// requiredIssues checks that every required field is present with a
// non-empty value. Required fields are scalars; one loaded with another
// shape has no usable value and counts as missing.
func requiredIssues(rec *types.Record) []types.Issue {
	issues := []types.Issue{}
	for _, name := range schema.Required() {
		v, ok := requiredValue(rec, name)
		if ok && !types.EmptyValue(v) {
			continue
		}
		issues = append(issues, types.Issue{
			Kind:  types.IssueMissingRequiredValue,
			Field: name,
		})
	}
	return issues
}

// identityIssues compares identifier and name, which the record convention
// keeps equal. Only fires when both carry a value.
func identityIssues(rec *types.Record) []types.Issue {
	id, okID := requiredValue(rec, schema.FieldIdentifier)
	name, okName := requiredValue(rec, schema.FieldName)
	if !okID || !okName || types.EmptyValue(id) || types.EmptyValue(name) {
		return nil
	}
	if reflect.DeepEqual(id, name) {
		return nil
	}
	return []types.Issue{{
		Kind:   types.IssueInconsistentIdentity,
		Field:  schema.FieldIdentifier,
		Value:  id,
		Detail: fmt.Sprintf("identifier %v does not match name %v", id, name),
	}}
}

// requiredValue fetches a top-level field's effective value regardless of
// scalar wrapping.
func requiredValue(rec *types.Record, name string) (any, bool) {
	f, ok := rec.Field(name)
	if !ok {
		return nil, false
	}
	sf, ok := f.(*types.ScalarField)
	if !ok {
		return nil, true
	}
	return sf.Value, true
}

func fieldPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
