package types

import "fmt"

// Record is an ordered mapping from field name to Field. A record is built
// once by the loader and is read-only afterwards, so it may be shared across
// concurrent readers without synchronization.
type Record struct {
	names  []string
	fields map[string]Field
}

// NewRecord returns an empty record ready for Append calls.
func NewRecord() *Record {
	return &Record{fields: make(map[string]Field)}
}

// Append adds a field under the given name, preserving insertion order.
// Returns ErrDuplicateField if the name is already present. Append is part
// of record construction; callers must not append to a record after handing
// it out.
func (r *Record) Append(name string, field Field) error {
	if _, ok := r.fields[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
	r.names = append(r.names, name)
	r.fields[name] = field
	return nil
}

// Len returns the number of fields in the record.
func (r *Record) Len() int {
	return len(r.names)
}

// Names returns the field names in declaration order. The returned slice is
// a copy.
func (r *Record) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Field returns the field stored under name and whether it exists.
func (r *Record) Field(name string) (Field, bool) {
	f, ok := r.fields[name]
	return f, ok
}

// Scalar returns the value of a scalar field.
// Returns ErrFieldNotFound if the name is absent and ErrShapeMismatch if the
// field is not a ScalarField. There is no coercion between variants.
func (r *Record) Scalar(name string) (any, error) {
	f, err := r.lookup(name, KindScalar)
	if err != nil {
		return nil, err
	}
	return f.(*ScalarField).Value, nil
}

// Unit returns the value and unit of a unit-tagged field.
func (r *Record) Unit(name string) (value any, unit string, err error) {
	f, err := r.lookup(name, KindUnit)
	if err != nil {
		return nil, "", err
	}
	uf := f.(*UnitField)
	return uf.Value, uf.Unit, nil
}

// Enum returns the value of an enumerated field together with its allowed
// alternatives, in declaration order.
func (r *Record) Enum(name string) (value any, allowed []string, err error) {
	f, err := r.lookup(name, KindEnum)
	if err != nil {
		return nil, nil, err
	}
	ef := f.(*EnumField)
	allowed = make([]string, len(ef.Allowed))
	copy(allowed, ef.Allowed)
	return ef.Value, allowed, nil
}

// Array returns the element sequence of an array field.
func (r *Record) Array(name string) ([]any, error) {
	f, err := r.lookup(name, KindArray)
	if err != nil {
		return nil, err
	}
	return f.(*ArrayField).Value, nil
}

// Composite returns the nested record of a composite field.
func (r *Record) Composite(name string) (*Record, error) {
	f, err := r.lookup(name, KindComposite)
	if err != nil {
		return nil, err
	}
	return f.(*CompositeField).Record, nil
}

// lookup fetches a field by name and checks its kind.
func (r *Record) lookup(name, kind string) (Field, error) {
	f, ok := r.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	if f.Kind() != kind {
		return nil, fmt.Errorf("%w: field %q is %s, not %s", ErrShapeMismatch, name, f.Kind(), kind)
	}
	return f, nil
}
