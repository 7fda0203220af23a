package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTestSchema builds the schema used across tests.
func makeTestSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := Create(
		IntegerField("age", 1),
		DiscreteField("city", 1),
		RealField("score", 0),
	)
	require.NoError(t, err)
	return s
}

func TestNew_EmptyFields(t *testing.T) {
	s, err := New(nil)
	require.ErrorIs(t, err, ErrNoFields)
	require.Nil(t, s)

	s, err = New([]Field{})
	require.ErrorIs(t, err, ErrNoFields)
	require.Nil(t, s)
}

func TestCreate_NoArgs(t *testing.T) {
	s, err := Create()
	require.ErrorIs(t, err, ErrNoFields)
	require.Nil(t, s)
}

func TestNew_PreservesFieldOrder(t *testing.T) {
	s := makeTestSchema(t)
	assert.Equal(t, []string{"age", "city", "score"}, s.Names())
	assert.Equal(t, 3, s.Len())
}

func TestNames_Restartable(t *testing.T) {
	s := makeTestSchema(t)
	first := s.Names()
	second := s.Names()
	assert.Equal(t, first, second)

	// Mutating a returned slice must not affect the schema.
	first[0] = "mutated"
	assert.Equal(t, []string{"age", "city", "score"}, s.Names())
}

func TestFields_SchemaOrder(t *testing.T) {
	s := makeTestSchema(t)
	fields := s.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, IntegerField("age", 1), fields[0])
	assert.Equal(t, DiscreteField("city", 1), fields[1])
	assert.Equal(t, RealField("score", 0), fields[2])
}

func TestFieldAt(t *testing.T) {
	s := makeTestSchema(t)

	f, ok := s.FieldAt(1)
	require.True(t, ok)
	assert.Equal(t, "city", f.Name())

	_, ok = s.FieldAt(5)
	assert.False(t, ok)

	_, ok = s.FieldAt(-1)
	assert.False(t, ok)
}

func TestFieldByName(t *testing.T) {
	s := makeTestSchema(t)

	f, ok := s.FieldByName("city")
	require.True(t, ok)
	assert.Equal(t, Discrete, f.Type())

	_, ok = s.FieldByName("unknown")
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	s := makeTestSchema(t)
	out, err := s.Format()
	require.NoError(t, err)

	expected := `fields:
    - name: age
      type: integer
      length: 1
    - name: city
      type: discrete
      length: 1
    - name: score
      type: real
      length: 0
`
	assert.Equal(t, expected, out)
}

func TestParse_RoundTrip(t *testing.T) {
	s := makeTestSchema(t)
	out, err := s.Format()
	require.NoError(t, err)

	parsed, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, s.Names(), parsed.Names())
	assert.Equal(t, s.Fields(), parsed.Fields())
}

func TestParse_SchemaIdentity(t *testing.T) {
	s := makeTestSchema(t)
	parsed, err := Parse(s)
	require.NoError(t, err)
	assert.Same(t, s, parsed)
}

func TestParse_Bytes(t *testing.T) {
	spec := []byte("fields:\n  - name: age\n    type: integer\n    length: 1\n")
	s, err := Parse(spec)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestParse_UnknownType(t *testing.T) {
	spec := "fields:\n  - name: city\n    type: string\n"
	_, err := Parse(spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field type")
}

func TestParse_DefaultLength(t *testing.T) {
	spec := "fields:\n  - name: age\n    type: integer\n"
	s, err := Parse(spec)
	require.NoError(t, err)

	f, ok := s.FieldByName("age")
	require.True(t, ok)
	assert.Equal(t, 1, f.Length())
}

func TestParse_ExplicitZeroLength(t *testing.T) {
	spec := "fields:\n  - name: tags\n    type: discrete\n    length: 0\n"
	s, err := Parse(spec)
	require.NoError(t, err)

	f, ok := s.FieldByName("tags")
	require.True(t, ok)
	assert.Equal(t, 0, f.Length())
}

func TestParse_EmptyFields(t *testing.T) {
	_, err := Parse("fields: []\n")
	require.ErrorIs(t, err, ErrNoFields)
}

func TestParse_UnsupportedValue(t *testing.T) {
	_, err := Parse(42)
	require.Error(t, err)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse("fields: [unclosed")
	require.Error(t, err)
}

func TestDuplicateName_ShadowsInLookup(t *testing.T) {
	s, err := Create(
		IntegerField("x", 1),
		RealField("x", 2),
	)
	require.NoError(t, err)

	// Both fields remain positionally, the later one wins name lookup.
	assert.Equal(t, 2, s.Len())
	f, ok := s.FieldByName("x")
	require.True(t, ok)
	assert.Equal(t, Real, f.Type())
	assert.Equal(t, 2, f.Length())
}

func TestEndToEnd(t *testing.T) {
	s, err := Create(
		IntegerField("age", 1),
		DiscreteField("city", 1),
		RealField("score", 0),
	)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	city, ok := s.FieldByName("city")
	require.True(t, ok)
	assert.Equal(t, Discrete, city.Type())

	_, ok = s.FieldAt(5)
	assert.False(t, ok)

	out, err := s.Format()
	require.NoError(t, err)
	parsed, err := Parse(out)
	require.NoError(t, err)

	lengths := make([]int, 0, parsed.Len())
	for _, f := range parsed.Fields() {
		lengths = append(lengths, f.Length())
	}
	assert.Equal(t, []int{1, 1, 0}, lengths)
}
