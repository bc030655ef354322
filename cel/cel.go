package cel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	celgo "github.com/google/cel-go/cel"
	perrors "github.com/pkg/errors"

	"github.com/ezachrisen/arbor"
	"github.com/ezachrisen/arbor/schema"
)

var (
	// ErrNotBoolean is returned by Compile when the expression does not produce
	// a boolean, and by Eval when the value produced at run time is not one.
	ErrNotBoolean = errors.New("expression does not produce a boolean")

	// ErrEmptyExpression is returned by Compile for a blank expression.
	ErrEmptyExpression = errors.New("empty expression")
)

// interruptCheckFrequency is the number of comprehension iterations between
// checks for a cancelled context.
const interruptCheckFrequency = 100

// Evaluator compiles CEL expressions into predicates.
type Evaluator struct {
	// Additional CEL environment options (custom functions, extension
	// libraries) applied to every compilation.
	opts []celgo.EnvOption
}

// NewEvaluator returns an Evaluator. The options are passed to the CEL
// environment of every expression it compiles.
func NewEvaluator(opts ...celgo.EnvOption) *Evaluator {
	return &Evaluator{opts: opts}
}

// Program is a compiled, type checked boolean expression. A Program is safe
// for concurrent use.
type Program struct {
	expr string
	prg  celgo.Program
}

// Compile parses and type checks expr against the schema, and prepares it
// for evaluation.
func (e *Evaluator) Compile(expr string, s schema.Schema) (*Program, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, ErrEmptyExpression
	}

	decls, err := convertSchemaToDeclarations(s)
	if err != nil {
		return nil, perrors.Wrapf(err, "schema %q", s.ID)
	}

	opts := append(decls, e.opts...)
	env, err := celgo.NewEnv(opts...)
	if err != nil {
		return nil, perrors.Wrap(err, "creating CEL environment")
	}

	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, perrors.Wrapf(iss.Err(), "compiling %q", expr)
	}

	out := ast.OutputType()
	if !out.IsExactType(celgo.BoolType) && !out.IsExactType(celgo.DynType) {
		return nil, fmt.Errorf("compiling %q: %w (got %s)", expr, ErrNotBoolean, out)
	}

	prg, err := env.Program(ast, celgo.InterruptCheckFrequency(interruptCheckFrequency))
	if err != nil {
		return nil, perrors.Wrapf(err, "generating program for %q", expr)
	}

	return &Program{expr: expr, prg: prg}, nil
}

// MustPredicate compiles expr with a default Evaluator and returns its
// predicate. It panics if the expression does not compile, and is intended
// for trees built from expressions known at compile time.
func MustPredicate(expr string, s schema.Schema) arbor.Predicate[map[string]any] {
	p, err := NewEvaluator().Compile(expr, s)
	if err != nil {
		panic(err)
	}
	return p.Predicate()
}

// Eval tests the expression against the data.
func (p *Program) Eval(data map[string]any) (bool, error) {
	return p.EvalContext(context.Background(), data)
}

// EvalContext tests the expression against the data. Evaluation of
// comprehensions is interrupted when ctx is done.
func (p *Program) EvalContext(ctx context.Context, data map[string]any) (bool, error) {
	val, _, err := p.prg.ContextEval(ctx, data)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", p.expr, err)
	}
	b, ok := val.Value().(bool)
	if !ok {
		return false, fmt.Errorf("evaluating %q: %w (got %T)", p.expr, ErrNotBoolean, val.Value())
	}
	return b, nil
}

// Predicate returns the program as a predicate. Predicates cannot fail, so an
// evaluation error, such as a missing variable, counts as false.
func (p *Program) Predicate() arbor.Predicate[map[string]any] {
	return func(data map[string]any) bool {
		b, err := p.Eval(data)
		return err == nil && b
	}
}

// String returns the source expression.
func (p *Program) String() string {
	return p.expr
}
