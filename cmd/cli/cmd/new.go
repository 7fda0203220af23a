package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zbxzc35/tensorfx/pkg/schema"
)

func init() {
	schemaCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newOutputPath, "output", "o", "schema.yaml", "File to write the schema specification to")
}

var newOutputPath string

var SchemaEditorTutorialBlurb = `
# TensorFX schemas are YAML documents describing the columns of raw tabular
# data before it is transformed into features.
#
# Each field has a name, a type and a length:
#
#     "integer":  whole-numbered values
#     "real":     continuous numeric values
#     "discrete": categorical values, e.g. labels or identifiers
#
#     length 1 is a single scalar, larger values a fixed-width vector, and
#     0 a variable-length sequence.
#
# This editor lets you make manual adjustments before the schema is written.


`

var (
	IntegerFieldSelector = selectPromptData{
		Name:        "Integer",
		Value:       string(schema.Integer),
		Description: "Whole-numbered values, e.g. counts or ages.",
	}
	RealFieldSelector = selectPromptData{
		Name:        "Real",
		Value:       string(schema.Real),
		Description: "Continuous numeric values, e.g. scores or measurements.",
	}
	DiscreteFieldSelector = selectPromptData{
		Name:        "Discrete",
		Value:       string(schema.Discrete),
		Description: "Categorical values, e.g. labels, cities or identifiers.",
	}
)

var fieldTypeSelectors = []selectPromptData{
	IntegerFieldSelector,
	RealFieldSelector,
	DiscreteFieldSelector,
}

func newFieldFromPrompts() (schema.Field, error) {
	name, err := TextPrompt("Field name")
	if err != nil {
		return schema.Field{}, err
	}
	if name == "" {
		return schema.Field{}, errors.New("field name must not be empty")
	}

	result, err := SelectPrompt(
		"Field type",
		"Choose the kind of values this column holds.",
		fieldTypeSelectors,
	)
	if err != nil {
		return schema.Field{}, err
	}
	typ, err := schema.ParseFieldType(result.Value)
	if err != nil {
		return schema.Field{}, err
	}

	lengthStr, err := TextPrompt("Length (0 for variable, empty for 1)")
	if err != nil {
		return schema.Field{}, err
	}
	length := 1
	if lengthStr != "" {
		length, err = strconv.Atoi(lengthStr)
		if err != nil {
			return schema.Field{}, fmt.Errorf("invalid length: %w", err)
		}
	}

	return schema.NewField(name, typ, length), nil
}

func buildSchemaFromPrompts() (*schema.Schema, error) {
	var fields []schema.Field
	for {
		field, err := newFieldFromPrompts()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		more, err := BoolPrompt("Add another field")
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}
	return schema.New(fields)
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Interactively authors a new schema specification",
	Long: `
Interactive UI for describing the columns of a dataset one field at a time.
The generated specification is opened in an editor for final adjustments
before being written out.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("")
		s, err := buildSchemaFromPrompts()
		cobra.CheckErr(err)

		spec, err := s.Format()
		cobra.CheckErr(err)

		finalizedSpec, err := EditorPrompt(SchemaEditorTutorialBlurb+spec, "yaml")
		cobra.CheckErr(err)

		// Reparse so that hand edits are validated before anything is written
		s, err = schema.Parse(finalizedSpec)
		cobra.CheckErr(err)

		out, err := s.Format()
		cobra.CheckErr(err)
		err = os.WriteFile(newOutputPath, []byte(out), 0o644)
		cobra.CheckErr(err)

		fmt.Printf("Wrote schema with %d field(s) to %s\n", s.Len(), newOutputPath)
	},
}
