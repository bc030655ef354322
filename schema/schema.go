// Package schema defines the data types a compiled predicate may refer to.
package schema

import (
	"fmt"
	"strings"
)

// Schema defines the keys (variable names) and their data types used in a
// predicate expression. The same keys and types must be supplied in the data
// map when the predicate is tested.
type Schema struct {
	// Identifier for the schema. Useful for the hosting application; not used by arbor internally.
	ID string `json:"id,omitempty"`
	// User-friendly name for the schema
	Name string `json:"name,omitempty"`
	// A user-friendly description of the schema
	Description string `json:"description,omitempty"`
	// List of data elements supported by this schema
	Elements []DataElement `json:"elements,omitempty"`
}

func (s *Schema) String() string {
	x := strings.Builder{}
	x.WriteString(s.ID)
	if s.Name != "" {
		x.WriteString("  '" + s.Name + "'")
	}
	x.WriteString("\n")
	for _, e := range s.Elements {
		x.WriteString(e.String())
		x.WriteString("\n")
	}
	return x.String()
}

// DataElement defines a named variable in a schema
type DataElement struct {
	// Short, user-friendly name of the variable. This is the name
	// that will be used in expressions to refer to data passed in.
	Name string `json:"name"`

	// One of the Type interface defined.
	Type Type `json:"type"`

	// Optional description of the type.
	Description string `json:"description"`
}

func (e *DataElement) String() string {
	return fmt.Sprintf("  %s (%s)", e.Name, e.Type)
}

// Type defines a type in the schema type system.
type Type interface {
	String() string
}

type String struct{}
type Int struct{}
type Float struct{}
type Any struct{}
type Bool struct{}
type Duration struct{}
type Timestamp struct{}

// Proto is a protocol buffer message type. Protoname is the fully qualified
// message name and Message an instance of the generated Go type.
type Proto struct {
	Protoname string
	Message   any
}

type List struct {
	ValueType Type
}

type Map struct {
	KeyType   Type
	ValueType Type
}

func (Int) String() string       { return "int" }
func (Bool) String() string      { return "bool" }
func (String) String() string    { return "string" }
func (Any) String() string       { return "any" }
func (Duration) String() string  { return "duration" }
func (Timestamp) String() string { return "timestamp" }
func (Float) String() string     { return "float" }
func (t Proto) String() string   { return "proto(" + t.Protoname + ")" }
func (t List) String() string    { return fmt.Sprintf("[]%v", t.ValueType) }
func (t Map) String() string     { return fmt.Sprintf("map[%s]%s", t.KeyType, t.ValueType) }

// ParseElement parses a "name:type" pair, as used on command lines.
func ParseElement(s string) (DataElement, error) {
	name, typ, ok := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return DataElement{}, fmt.Errorf("element %q: want name:type", s)
	}
	t, err := ParseType(strings.TrimSpace(typ))
	if err != nil {
		return DataElement{}, fmt.Errorf("element %q: %w", s, err)
	}
	return DataElement{Name: name, Type: t}, nil
}

// ParseType parses a string that represents a type and returns the type.
// The primitive types are their lower-case names (string, int, duration, etc.)
// Maps and lists look like Go maps and slices: map[string]float and []string.
// Proto types look like this: proto(protoname)
func ParseType(t string) (Type, error) {

	if strings.HasPrefix(t, "map") {
		return parseMap(t)
	}

	if strings.HasPrefix(t, "[]") {
		return parseList(t)
	}

	if strings.HasPrefix(t, "proto(") {
		return parseProto(t)
	}

	switch t {
	case "string":
		return String{}, nil
	case "int":
		return Int{}, nil
	case "float":
		return Float{}, nil
	case "bool":
		return Bool{}, nil
	case "duration":
		return Duration{}, nil
	case "timestamp":
		return Timestamp{}, nil
	case "any":
		return Any{}, nil
	default:
		return Any{}, fmt.Errorf("unrecognized type: %s", t)
	}
}

// parseMap parses a string in the format map[<keytype>]<valuetype>.
// Example: map[string]int
func parseMap(t string) (Type, error) {
	rest, ok := strings.CutPrefix(t, "map[")
	if !ok {
		return Any{}, fmt.Errorf("bad map specification: %s", t)
	}

	keyTypeName, valueTypeName, ok := strings.Cut(rest, "]")
	if !ok || keyTypeName == "" || valueTypeName == "" {
		return Any{}, fmt.Errorf("bad map specification: %s", t)
	}

	keyType, err := ParseType(keyTypeName)
	if err != nil {
		return Any{}, err
	}

	valueType, err := ParseType(valueTypeName)
	if err != nil {
		return Any{}, err
	}

	return Map{
		KeyType:   keyType,
		ValueType: valueType,
	}, nil
}

// parseList parses a string in the format []<valuetype>
// Example: []string
func parseList(t string) (Type, error) {
	var valueTypeName string
	_, err := fmt.Sscanf(t, "[]%s", &valueTypeName)
	if err != nil {
		return Any{}, err
	}
	valueType, err := ParseType(valueTypeName)
	if err != nil {
		return Any{}, err
	}

	return List{
		ValueType: valueType,
	}, nil
}

// parseProto parses a string in the form proto(<protoname>) and returns a
// partial proto type. The Message field must be supplied later.
func parseProto(t string) (Type, error) {
	startParen := strings.Index(t, "(")
	endParen := strings.Index(t, ")")

	if startParen == -1 || endParen == -1 || startParen > endParen || endParen-startParen == 1 {
		return nil, fmt.Errorf("bad proto specification")
	}

	name := t[startParen+1 : endParen]
	return Proto{Protoname: name}, nil
}
