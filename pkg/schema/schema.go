// Package schema describes the shape of raw tabular data before it is
// transformed into features: an ordered list of named, typed fields together
// with the YAML specification format they are exchanged in.
package schema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNoFields is returned when a schema is constructed with no fields.
var ErrNoFields = errors.New("one or more fields must be specified")

// Schema defines the structure of a dataset as an ordered set of columns.
// Schemas are immutable once constructed and safe to share across goroutines.
type Schema struct {
	fields   []Field
	fieldMap map[string]Field
}

// New creates a Schema from an ordered, non-empty list of fields.
func New(fields []Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	owned := make([]Field, len(fields))
	copy(owned, fields)

	// A later field with a duplicate name shadows the earlier one in the
	// lookup map; both still appear positionally.
	fieldMap := make(map[string]Field, len(owned))
	for _, f := range owned {
		fieldMap[f.name] = f
	}
	return &Schema{fields: owned, fieldMap: fieldMap}, nil
}

// Create creates a Schema from a sequence of individual fields.
func Create(fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	return New(fields)
}

// Wire representation of the YAML specification. Length is a pointer so that
// parsing can distinguish an absent key from an explicit zero.
type fieldSpec struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Length *int   `yaml:"length"`
}

type schemaSpec struct {
	Fields []fieldSpec `yaml:"fields"`
}

// Format serializes the schema into its YAML specification. Fields are
// emitted in schema order with their name, type and length.
func (s *Schema) Format() (string, error) {
	spec := schemaSpec{Fields: make([]fieldSpec, len(s.fields))}
	for i, f := range s.fields {
		length := f.length
		spec.Fields[i] = fieldSpec{Name: f.name, Type: string(f.typ), Length: &length}
	}
	out, err := yaml.Marshal(&spec)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Parse produces a Schema from a specification. The specification is either
// an already-constructed *Schema, which is returned unchanged, or YAML text
// (string or []byte) in the format produced by Format. A record without a
// length key defaults to a length of 1.
func Parse(spec any) (*Schema, error) {
	switch v := spec.(type) {
	case *Schema:
		return v, nil
	case string:
		return parseYAML([]byte(v))
	case []byte:
		return parseYAML(v)
	default:
		return nil, fmt.Errorf("cannot parse a schema from a value of type %T", spec)
	}
}

func parseYAML(raw []byte) (*Schema, error) {
	var spec schemaSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("unable to parse schema specification: %w", err)
	}
	fields := make([]Field, 0, len(spec.Fields))
	for _, fs := range spec.Fields {
		typ, err := ParseFieldType(fs.Type)
		if err != nil {
			return nil, err
		}
		length := 1
		if fs.Length != nil {
			length = *fs.Length
		}
		fields = append(fields, NewField(fs.Name, typ, length))
	}
	return New(fields)
}

// Names retrieves the names of the fields in schema order. The returned slice
// is a fresh copy on every call.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Fields retrieves the full field descriptors in schema order. The returned
// slice is a fresh copy on every call.
func (s *Schema) Fields() []Field {
	fields := make([]Field, len(s.fields))
	copy(fields, s.fields)
	return fields
}

// FieldAt retrieves the field at the given ordinal position. The second
// return value is false when the index is out of range.
func (s *Schema) FieldAt(index int) (Field, bool) {
	if index < 0 || index >= len(s.fields) {
		return Field{}, false
	}
	return s.fields[index], true
}

// FieldByName retrieves the field with the given name. The second return
// value is false when no field has that name.
func (s *Schema) FieldByName(name string) (Field, bool) {
	f, ok := s.fieldMap[name]
	return f, ok
}

// Len retrieves the number of fields defined.
func (s *Schema) Len() int {
	return len(s.fields)
}
