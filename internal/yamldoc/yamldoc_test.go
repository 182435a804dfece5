package yamldoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroforge/probemeta/internal/load"
	"github.com/neuroforge/probemeta/internal/schema"
	"github.com/neuroforge/probemeta/internal/validate"
	"github.com/neuroforge/probemeta/pkg/types"
)

func readTestdata(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "flexdrive.yaml"))
	require.NoError(t, err)
	return data
}

func TestDecodePreservesKeyOrder(t *testing.T) {
	doc, err := Decode([]byte("zebra: 1\nalpha: 2\nmid: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "alpha", "mid"}, doc.Keys())
}

func TestDecodeScalarTyping(t *testing.T) {
	doc, err := Decode([]byte("i: 3\nf: -3.1\ns: bregma\nempty: ''\nnothing:\n"))
	require.NoError(t, err)

	i, _ := doc.Get("i")
	assert.Equal(t, 3, i)
	f, _ := doc.Get("f")
	assert.Equal(t, -3.1, f)
	s, _ := doc.Get("s")
	assert.Equal(t, "bregma", s)
	empty, _ := doc.Get("empty")
	assert.Equal(t, "", empty)
	nothing, _ := doc.Get("nothing")
	assert.Nil(t, nothing)
}

func TestDecodeNestedShapes(t *testing.T) {
	doc, err := Decode(readTestdata(t))
	require.NoError(t, err)

	hemisphere, ok := doc.Get("hemisphere")
	require.True(t, ok)
	hd, ok := hemisphere.(*types.Doc)
	require.True(t, ok)

	alt, ok := hd.Get("alternatives")
	require.True(t, ok)
	ad, ok := alt.(*types.Doc)
	require.True(t, ok)
	assert.Equal(t, []string{"C", "L", "R"}, ad.Keys())

	position, _ := doc.Get("position")
	pd := position.(*types.Doc)
	value, _ := pd.Get("value")
	assert.Equal(t, []any{-3.1, 4.5, 1.9}, value)
}

func TestDecodeRejectsNonMappingDocuments(t *testing.T) {
	_, err := Decode([]byte("- a\n- b\n"))
	require.Error(t, err)

	_, err = Decode([]byte("just a scalar\n"))
	require.Error(t, err)
}

func TestExampleDocumentValidatesClean(t *testing.T) {
	doc, err := Decode(readTestdata(t))
	require.NoError(t, err)

	rec, err := load.Load(doc)
	require.NoError(t, err)

	assert.Empty(t, validate.Validate(rec))
	assert.Empty(t, schema.Check(rec))
}

func TestRoundTrip(t *testing.T) {
	doc, err := Decode(readTestdata(t))
	require.NoError(t, err)

	rec, err := load.Load(doc)
	require.NoError(t, err)

	out, err := Encode(rec)
	require.NoError(t, err)

	doc2, err := Decode(out)
	require.NoError(t, err)

	rec2, err := load.Load(doc2)
	require.NoError(t, err)

	require.Equal(t, rec.Names(), rec2.Names())
	assert.Equal(t, rec, rec2)
}

func TestEncodeKeepsSerializedForms(t *testing.T) {
	doc, err := Decode(readTestdata(t))
	require.NoError(t, err)

	rec, err := load.Load(doc)
	require.NoError(t, err)

	out, err := Encode(rec)
	require.NoError(t, err)
	text := string(out)

	// Bare scalars stay bare.
	assert.Contains(t, text, "identifier: flexdrive_implant_procedure\n")
	// Mapping alternatives stay mappings, sequence alternatives stay sequences.
	assert.Contains(t, text, "L: left")
	assert.Contains(t, text, "- bregma")
}
