package cel

import (
	"errors"
	"fmt"
	"reflect"

	celgo "github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/ezachrisen/arbor/schema"
)

// BinaryFunction describes a custom function of two arguments that
// expressions may call. The arguments are passed to Func as the native Go
// values CEL holds for the declared types (int64 for schema.Int, float64 for
// schema.Float, and so on). Func must return a value of the type declared in
// Return.
type BinaryFunction struct {
	LHS    schema.Type
	RHS    schema.Type
	Return schema.Type
	Func   func(lhs, rhs any) (any, error)
}

// ErrUnexpectedReturnType is the error a custom function call evaluates to
// when its Go implementation returns a value of the wrong type.
var ErrUnexpectedReturnType = errors.New("function returned an unexpected type")

// Function declares the binary function f under name. Pass the result to
// NewEvaluator to make the function available to every expression.
func Function(name string, f BinaryFunction) (celgo.EnvOption, error) {
	if f.Func == nil {
		return nil, fmt.Errorf("%q missing function", name)
	}

	lhs, err := convertSchemaToCELType(f.LHS)
	if err != nil {
		return nil, fmt.Errorf("%q left argument: %w", name, err)
	}

	rhs, err := convertSchemaToCELType(f.RHS)
	if err != nil {
		return nil, fmt.Errorf("%q right argument: %w", name, err)
	}

	ret, err := convertSchemaToCELType(f.Return)
	if err != nil {
		return nil, fmt.Errorf("%q return value: %w", name, err)
	}

	return celgo.Function(name,
		celgo.Overload(fmt.Sprintf("%s_%s_%s", name, f.LHS, f.RHS),
			[]*celgo.Type{lhs, rhs},
			ret,
			celgo.BinaryBinding(binaryWrapper(name, f)))), nil
}

// binaryWrapper converts between CEL values and native values around the
// call to f, checking the result against the declared return type.
func binaryWrapper(name string, f BinaryFunction) func(lhs, rhs ref.Val) ref.Val {
	want, _ := nativeType(f.Return)

	return func(lhs, rhs ref.Val) ref.Val {
		x, err := f.Func(lhs.Value(), rhs.Value())
		if err != nil {
			return types.NewErr("function %s: %v", name, err)
		}

		if want != nil && reflect.TypeOf(x) != want {
			return types.NewErr("%v: function %s, wanted %s, got %T", ErrUnexpectedReturnType, name, f.Return, x)
		}

		return types.DefaultTypeAdapter.NativeToValue(x)
	}
}

// nativeType returns the Go type a function must return for a primitive
// schema type. Other schema types are not checked.
func nativeType(t schema.Type) (reflect.Type, bool) {
	switch t.(type) {
	case schema.Bool:
		return reflect.TypeOf(false), true
	case schema.Int:
		return reflect.TypeOf(int64(0)), true
	case schema.Float:
		return reflect.TypeOf(float64(0)), true
	case schema.String:
		return reflect.TypeOf(""), true
	default:
		return nil, false
	}
}
