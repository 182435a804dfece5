package types

import (
	"fmt"
	"strings"
)

// Validation issue kinds. Validation never fails hard; it reports issues of
// these kinds as data, accumulated in field-declaration order.
const (
	// IssueEnumViolation reports an enum value outside its alternatives.
	IssueEnumViolation = "enum_violation"
	// IssueMissingRequiredValue reports an empty or absent required field.
	IssueMissingRequiredValue = "missing_required_value"
	// IssueInconsistentIdentity reports identifier and name disagreeing.
	IssueInconsistentIdentity = "inconsistent_identity"
	// IssueMissingUnit reports a numeric unit-tagged value with no unit.
	IssueMissingUnit = "missing_unit"
	// IssueHeterogeneousArray reports an array mixing element types.
	IssueHeterogeneousArray = "heterogeneous_array"
	// IssueUnknownField reports a field absent from the schema registry.
	// Emitted only by the strict registry check.
	IssueUnknownField = "unknown_field"
	// IssueShapeConflict reports a field loaded with a different shape than
	// the registry declares. Emitted only by the strict registry check.
	IssueShapeConflict = "shape_conflict"
)

// Issue describes one validation finding on a loaded record.
type Issue struct {
	Kind    string   `json:"kind"`
	Field   string   `json:"field"`             // Dotted path, e.g. "electrophysiology.subtype".
	Value   any      `json:"value,omitempty"`   // Offending value, when one exists.
	Allowed []string `json:"allowed,omitempty"` // Alternatives for enum violations.
	Detail  string   `json:"detail,omitempty"`  // Extra context for the human-readable form.
}

// String renders the issue for terminal output.
func (i Issue) String() string {
	switch i.Kind {
	case IssueEnumViolation:
		return fmt.Sprintf("%s: value %v is not one of [%s]", i.Field, i.Value, strings.Join(i.Allowed, ", "))
	case IssueMissingRequiredValue:
		return fmt.Sprintf("%s: required value is empty", i.Field)
	case IssueInconsistentIdentity:
		return fmt.Sprintf("%s: %s", i.Field, i.Detail)
	case IssueMissingUnit:
		return fmt.Sprintf("%s: numeric value %v has no unit", i.Field, i.Value)
	case IssueHeterogeneousArray:
		return fmt.Sprintf("%s: array mixes element types", i.Field)
	case IssueUnknownField:
		return fmt.Sprintf("%s: field is not in the schema", i.Field)
	case IssueShapeConflict:
		return fmt.Sprintf("%s: %s", i.Field, i.Detail)
	default:
		return fmt.Sprintf("%s: %s", i.Field, i.Kind)
	}
}
