package schema

import "fmt"

// FieldType enumerates the kinds of values a schema field can hold.
type FieldType string

const (
	// Integer fields hold whole-numbered values.
	Integer FieldType = "integer"
	// Real fields hold continuous numeric values.
	Real FieldType = "real"
	// Discrete fields hold categorical (non-numeric) values.
	Discrete FieldType = "discrete"
)

// ParseFieldType maps a type name from a schema specification to its
// FieldType. The mapping is the wire contract for the "type" key and is kept
// explicit rather than derived from the constant names.
func ParseFieldType(name string) (FieldType, error) {
	switch t := FieldType(name); t {
	case Integer, Real, Discrete:
		return t, nil
	default:
		return "", fmt.Errorf("unknown field type: %q", name)
	}
}

// Numeric reports whether values of this type are numeric, i.e. integer or real.
func (t FieldType) Numeric() bool {
	return t == Integer || t == Real
}

func (t FieldType) String() string {
	return string(t)
}

// Field describes a single named and typed column within a Schema.
//
// Length is the valence of the field: 1 is a single scalar, any larger value
// a fixed-width vector, and 0 a variable-length sequence. Fields are immutable
// once constructed.
type Field struct {
	name   string
	typ    FieldType
	length int
}

// NewField creates a field with an explicit type and length.
func NewField(name string, typ FieldType, length int) Field {
	return Field{name: name, typ: typ, length: length}
}

// DiscreteField creates a field holding a categorical value.
func DiscreteField(name string, length int) Field {
	return NewField(name, Discrete, length)
}

// IntegerField creates a field holding an integer value.
func IntegerField(name string, length int) Field {
	return NewField(name, Integer, length)
}

// RealField creates a field holding a real number.
func RealField(name string, length int) Field {
	return NewField(name, Real, length)
}

// Name retrieves the name of the field.
func (f Field) Name() string {
	return f.name
}

// Type retrieves the type of the field.
func (f Field) Type() FieldType {
	return f.typ
}

// Length retrieves the valence of the field (0 implies variable length).
func (f Field) Length() int {
	return f.length
}

// Numeric reports whether the field holds numeric values.
func (f Field) Numeric() bool {
	return f.typ.Numeric()
}
