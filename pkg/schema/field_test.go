package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldConstructors(t *testing.T) {
	f := DiscreteField("city", 1)
	assert.Equal(t, "city", f.Name())
	assert.Equal(t, Discrete, f.Type())
	assert.Equal(t, 1, f.Length())

	f = IntegerField("age", 1)
	assert.Equal(t, Integer, f.Type())

	f = RealField("scores", 0)
	assert.Equal(t, Real, f.Type())
	assert.Equal(t, 0, f.Length())
}

func TestFieldNumeric(t *testing.T) {
	assert.True(t, IntegerField("age", 1).Numeric())
	assert.True(t, RealField("score", 1).Numeric())
	assert.False(t, DiscreteField("city", 1).Numeric())
}

func TestParseFieldType(t *testing.T) {
	for _, name := range []string{"integer", "real", "discrete"} {
		typ, err := ParseFieldType(name)
		require.NoError(t, err)
		assert.Equal(t, name, typ.String())
	}

	_, err := ParseFieldType("string")
	require.Error(t, err)

	_, err = ParseFieldType("")
	require.Error(t, err)
}

func TestFieldTypeNumeric(t *testing.T) {
	assert.True(t, Integer.Numeric())
	assert.True(t, Real.Numeric())
	assert.False(t, Discrete.Numeric())
}
