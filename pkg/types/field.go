package types

// Field shape kinds. Every field in a record is exactly one of these,
// discriminated once at load time.
const (
	KindScalar    = "scalar"
	KindUnit      = "unit"
	KindEnum      = "enum"
	KindArray     = "array"
	KindComposite = "composite"
)

// validKinds is the set of recognized field kinds.
var validKinds = map[string]bool{
	KindScalar:    true,
	KindUnit:      true,
	KindEnum:      true,
	KindArray:     true,
	KindComposite: true,
}

// IsValidKind reports whether the given string is a recognized field kind.
func IsValidKind(kind string) bool {
	return validKinds[kind]
}

// Field is the closed set of shapes a record field can take. Concrete
// variants are ScalarField, UnitField, EnumField, ArrayField, and
// CompositeField. Fields are built by the loader and not modified
// afterwards.
type Field interface {
	// Kind returns the shape kind constant for this variant.
	Kind() string
}

// ScalarField holds a single scalar value (string, number, or empty).
type ScalarField struct {
	Value      any    // string, int, float64, or nil when unset.
	Definition string // Optional human-readable definition.
	Wrapped    bool   // Serialized as a {value: ...} mapping rather than a bare scalar.
}

// Kind returns KindScalar.
func (f *ScalarField) Kind() string { return KindScalar }

// UnitField holds a unit-tagged value. The value is a scalar or a sequence
// of scalars measured in the given unit.
type UnitField struct {
	Unit       string
	Value      any // scalar, []any, or nil when unset.
	Definition string
}

// Kind returns KindUnit.
func (f *UnitField) Kind() string { return KindUnit }

// EnumField holds a value constrained to a declared set of alternatives.
// Serialized alternatives come in two forms, a sequence of strings or a
// mapping from code to description; the loader normalizes both into the
// ordered Allowed list, keeping Descriptions only for the mapping form.
type EnumField struct {
	Value        any      // string, []any of strings, or empty when unset.
	Allowed      []string // Allowed values, in declaration order.
	Descriptions map[string]string
	Definition   string
}

// Kind returns KindEnum.
func (f *EnumField) Kind() string { return KindEnum }

// Describe returns the description for an allowed value, or "" when the
// alternatives were declared without descriptions.
func (f *EnumField) Describe(value string) string {
	return f.Descriptions[value]
}

// ArrayField holds an ordered sequence of scalars. Elements are expected to
// be of a uniform type; the validator reports mixed sequences.
type ArrayField struct {
	Value      []any
	Definition string
	Wrapped    bool // Serialized as a {value: [...]} mapping rather than a bare sequence.
}

// Kind returns KindArray.
func (f *ArrayField) Kind() string { return KindArray }

// CompositeField holds a nested record of sub-fields, such as the
// electrophysiology block of an implant record.
type CompositeField struct {
	Record *Record
}

// Kind returns KindComposite.
func (f *CompositeField) Kind() string { return KindComposite }
