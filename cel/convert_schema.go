package cel

// This file contains functions that convert
//   FROM a schema.Schema
//   TO a CEL schema
//
// The resulting CEL schema is passed to the CEL compiler to validate the
// expression and perform type checking on it.

import (
	"fmt"

	celgo "github.com/google/cel-go/cel"

	"github.com/ezachrisen/arbor/schema"
)

// convertSchemaToDeclarations converts a schema to a list of CEL "EnvOption".
// Entries in this list are variables and types that CEL knows about.
func convertSchemaToDeclarations(s schema.Schema) ([]celgo.EnvOption, error) {
	opts := []celgo.EnvOption{}

	// for protocol buffer types we also have to register the type separately
	// we'll collect them in types
	types := []any{}

	for _, d := range s.Elements {
		typ, err := convertSchemaToCELType(d.Type)
		if err != nil {
			return nil, fmt.Errorf("converting element %s: %w", d.Name, err)
		}
		opts = append(opts, celgo.Variable(d.Name, typ))
		if v, ok := d.Type.(schema.Proto); ok {
			types = append(types, v.Message)
		}
	}

	if len(types) > 0 {
		opts = append(opts, celgo.Types(types...))
	}
	return opts, nil
}

// convertSchemaToCELType converts a schema type to the type CEL uses to
// represent it.
func convertSchemaToCELType(t schema.Type) (*celgo.Type, error) {

	switch v := t.(type) {
	case schema.String:
		return celgo.StringType, nil
	case schema.Int:
		return celgo.IntType, nil
	case schema.Float:
		return celgo.DoubleType, nil
	case schema.Bool:
		return celgo.BoolType, nil
	case schema.Duration:
		return celgo.DurationType, nil
	case schema.Timestamp:
		return celgo.TimestampType, nil
	case schema.Any:
		return celgo.DynType, nil
	case schema.Map:
		key, err := convertSchemaToCELType(v.KeyType)
		if err != nil {
			return nil, fmt.Errorf("setting key of %v map: %w", v.KeyType, err)
		}
		val, err := convertSchemaToCELType(v.ValueType)
		if err != nil {
			return nil, fmt.Errorf("setting value of %v map: %w", v.ValueType, err)
		}
		return celgo.MapType(key, val), nil
	case schema.List:
		val, err := convertSchemaToCELType(v.ValueType)
		if err != nil {
			return nil, fmt.Errorf("setting value of %v list: %w", v.ValueType, err)
		}
		return celgo.ListType(val), nil
	case schema.Proto:
		if v.Protoname == "" {
			return nil, fmt.Errorf("proto type without a name")
		}
		if v.Message == nil {
			return nil, fmt.Errorf("proto type %s without a message", v.Protoname)
		}
		return celgo.ObjectType(v.Protoname), nil
	default:
		return nil, fmt.Errorf("unknown schema type: %T", t)
	}
}
