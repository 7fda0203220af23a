package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbxzc35/tensorfx/pkg/schema"
)

func TestLoadSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	spec := "fields:\n  - name: age\n    type: integer\n  - name: city\n    type: discrete\n"
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o644))

	s, err := loadSchemaFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "city"}, s.Names())
}

func TestLoadSchemaFile_Missing(t *testing.T) {
	_, err := loadSchemaFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestFieldTable(t *testing.T) {
	s, err := schema.Create(
		schema.IntegerField("age", 1),
		schema.DiscreteField("city", 1),
		schema.RealField("score", 0),
	)
	require.NoError(t, err)

	table := FieldTable(s)
	expected := "" +
		"NAME   TYPE      LENGTH  NUMERIC  \n" +
		"age    integer   1       true     \n" +
		"city   discrete  1       false    \n" +
		"score  real      0       true     \n"
	assert.Equal(t, expected, table)
}
