package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRecord assembles a small record covering every field variant.
func buildRecord(t *testing.T) *Record {
	t.Helper()

	channels := NewRecord()
	require.NoError(t, channels.Append("channel_groups", &ArrayField{
		Value:   []any{0, 1, 2, 3},
		Wrapped: true,
	}))

	rec := NewRecord()
	require.NoError(t, rec.Append("identifier", &ScalarField{Value: "implant_01"}))
	require.NoError(t, rec.Append("angle", &UnitField{Unit: "deg", Value: 12.5}))
	require.NoError(t, rec.Append("hemisphere", &EnumField{
		Value:        "L",
		Allowed:      []string{"C", "L", "R"},
		Descriptions: map[string]string{"C": "center", "L": "left", "R": "right"},
	}))
	require.NoError(t, rec.Append("electrophysiology", &CompositeField{Record: channels}))
	return rec
}

func TestRecordAppendRejectsDuplicates(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, rec.Append("identifier", &ScalarField{Value: "a"}))

	err := rec.Append("identifier", &ScalarField{Value: "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateField)
	assert.Equal(t, 1, rec.Len())
}

func TestRecordNamesPreserveOrder(t *testing.T) {
	rec := buildRecord(t)
	assert.Equal(t, []string{"identifier", "angle", "hemisphere", "electrophysiology"}, rec.Names())
}

func TestRecordAccessors(t *testing.T) {
	rec := buildRecord(t)

	t.Run("scalar", func(t *testing.T) {
		v, err := rec.Scalar("identifier")
		require.NoError(t, err)
		assert.Equal(t, "implant_01", v)
	})

	t.Run("unit", func(t *testing.T) {
		v, unit, err := rec.Unit("angle")
		require.NoError(t, err)
		assert.Equal(t, 12.5, v)
		assert.Equal(t, "deg", unit)
	})

	t.Run("enum", func(t *testing.T) {
		v, allowed, err := rec.Enum("hemisphere")
		require.NoError(t, err)
		assert.Equal(t, "L", v)
		assert.Equal(t, []string{"C", "L", "R"}, allowed)
	})

	t.Run("composite", func(t *testing.T) {
		sub, err := rec.Composite("electrophysiology")
		require.NoError(t, err)

		groups, err := sub.Array("channel_groups")
		require.NoError(t, err)
		assert.Equal(t, []any{0, 1, 2, 3}, groups)
	})
}

func TestRecordAccessorErrors(t *testing.T) {
	rec := buildRecord(t)

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{
			name: "absent field",
			call: func() error {
				_, err := rec.Scalar("missing")
				return err
			},
			wantErr: ErrFieldNotFound,
		},
		{
			name: "composite accessor on a scalar",
			call: func() error {
				_, err := rec.Composite("identifier")
				return err
			},
			wantErr: ErrShapeMismatch,
		},
		{
			name: "scalar accessor on an enum",
			call: func() error {
				_, err := rec.Scalar("hemisphere")
				return err
			},
			wantErr: ErrShapeMismatch,
		},
		{
			name: "array accessor on a unit field",
			call: func() error {
				_, err := rec.Array("angle")
				return err
			},
			wantErr: ErrShapeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEnumFieldDescribe(t *testing.T) {
	f := &EnumField{
		Allowed:      []string{"C", "L", "R"},
		Descriptions: map[string]string{"L": "left"},
	}
	assert.Equal(t, "left", f.Describe("L"))
	assert.Equal(t, "", f.Describe("C"))

	plain := &EnumField{Allowed: []string{"bregma", "lambda"}}
	assert.Equal(t, "", plain.Describe("bregma"))
}

func TestEmptyValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil", value: nil, want: true},
		{name: "empty string", value: "", want: true},
		{name: "empty sequence", value: []any{}, want: true},
		{name: "zero is set", value: 0, want: false},
		{name: "non-empty string", value: "L", want: false},
		{name: "non-empty sequence", value: []any{1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EmptyValue(tt.value))
		})
	}
}

func TestNumericValue(t *testing.T) {
	assert.True(t, NumericValue(3))
	assert.True(t, NumericValue(int64(3)))
	assert.True(t, NumericValue(-3.1))
	assert.False(t, NumericValue("3"))
	assert.False(t, NumericValue(nil))
	assert.False(t, NumericValue(true))
}
