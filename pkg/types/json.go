// Hand-rolled JSON marshaling for records and fields. encoding/json map
// output is key-sorted, which would destroy the declaration order the record
// model guarantees, so objects are written member by member.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON renders the record as a JSON object with fields in
// declaration order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, name, r.fields[name]); err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", name, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON renders a bare scalar unless the field was wrapped in a
// mapping or carries a definition.
func (f *ScalarField) MarshalJSON() ([]byte, error) {
	if !f.Wrapped && f.Definition == "" {
		return json.Marshal(f.Value)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	if f.Definition != "" {
		if err := writeMember(&buf, "definition", f.Definition); err != nil {
			return nil, err
		}
		buf.WriteByte(',')
	}
	if err := writeMember(&buf, "value", f.Value); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (f *UnitField) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if f.Definition != "" {
		if err := writeMember(&buf, "definition", f.Definition); err != nil {
			return nil, err
		}
		buf.WriteByte(',')
	}
	if err := writeMember(&buf, "unit", f.Unit); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeMember(&buf, "value", f.Value); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (f *EnumField) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.WriteString(`"alternatives":`)
	if f.Descriptions == nil {
		if err := writeValue(&buf, f.Allowed); err != nil {
			return nil, err
		}
	} else {
		// Mapping form, ordered by the Allowed list.
		buf.WriteByte('{')
		for i, code := range f.Allowed {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeMember(&buf, code, f.Descriptions[code]); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	if f.Definition != "" {
		buf.WriteByte(',')
		if err := writeMember(&buf, "definition", f.Definition); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(',')
	if err := writeMember(&buf, "value", f.Value); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON renders a bare sequence unless the field was wrapped in a
// mapping or carries a definition.
func (f *ArrayField) MarshalJSON() ([]byte, error) {
	if !f.Wrapped && f.Definition == "" {
		return json.Marshal(f.Value)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	if f.Definition != "" {
		if err := writeMember(&buf, "definition", f.Definition); err != nil {
			return nil, err
		}
		buf.WriteByte(',')
	}
	if err := writeMember(&buf, "value", f.Value); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (f *CompositeField) MarshalJSON() ([]byte, error) {
	return f.Record.MarshalJSON()
}

// writeMember writes a `"key":value` object member.
func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	return writeValue(buf, value)
}

func writeValue(buf *bytes.Buffer, value any) error {
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(v)
	return nil
}
