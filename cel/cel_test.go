package cel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
	"google.golang.org/protobuf/types/known/apipb"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/ezachrisen/arbor"
	"github.com/ezachrisen/arbor/cel"
	"github.com/ezachrisen/arbor/schema"
)

var orderSchema = schema.Schema{
	ID: "order",
	Elements: []schema.DataElement{
		{Name: "total", Type: schema.Float{}},
		{Name: "items", Type: schema.Int{}},
		{Name: "country", Type: schema.String{}},
		{Name: "member", Type: schema.Bool{}},
		{Name: "tags", Type: schema.List{ValueType: schema.String{}}},
		{Name: "limits", Type: schema.Map{KeyType: schema.String{}, ValueType: schema.Float{}}},
		{Name: "extra", Type: schema.Any{}},
	},
}

func order() map[string]any {
	return map[string]any{
		"total":   1250.0,
		"items":   3,
		"country": "DK",
		"member":  true,
		"tags":    []string{"gift", "express"},
		"limits":  map[string]float64{"DK": 1000, "SE": 5000},
		"extra":   true,
	}
}

func TestCompile_Errors(t *testing.T) {
	ev := cel.NewEvaluator()

	cases := map[string]struct {
		expr   string
		target error
	}{
		"empty":      {expr: "   ", target: cel.ErrEmptyExpression},
		"not a bool": {expr: `total + 1.0`, target: cel.ErrNotBoolean},
		"string":     {expr: `country`, target: cel.ErrNotBoolean},
		"syntax":     {expr: `total >`},
		"undeclared": {expr: `weight > 10.0`},
		"mismatch":   {expr: `items > "three"`},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			p, err := ev.Compile(c.expr, orderSchema)
			is.True(err != nil)
			is.Equal(p, nil)
			if c.target != nil {
				is.True(errors.Is(err, c.target))
			}
		})
	}
}

func TestCompile_BadSchema(t *testing.T) {
	is := is.New(t)

	s := schema.Schema{
		ID: "bad",
		Elements: []schema.DataElement{
			{Name: "student", Type: schema.Proto{Protoname: "school.Student"}},
		},
	}
	_, err := cel.NewEvaluator().Compile(`true`, s)
	is.True(err != nil) // a proto type needs a message
}

func TestEval(t *testing.T) {
	ev := cel.NewEvaluator()

	cases := map[string]struct {
		expr string
		want bool
	}{
		"float":      {expr: `total > 1000.0`, want: true},
		"int":        {expr: `items >= 4`, want: false},
		"string":     {expr: `country in ["DK", "SE", "NO"]`, want: true},
		"bool":       {expr: `!member`, want: false},
		"list":       {expr: `"gift" in tags && size(tags) == 2`, want: true},
		"map":        {expr: `total > limits[country]`, want: true},
		"macro":      {expr: `tags.exists(t, t.startsWith("exp"))`, want: true},
		"dyn":        {expr: `extra`, want: true},
		"constant":   {expr: `false`, want: false},
		"short-circ": {expr: `member || limits["FI"] > 0.0`, want: true},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			p, err := ev.Compile(c.expr, orderSchema)
			is.NoErr(err)
			is.Equal(p.String(), c.expr)

			got, err := p.Eval(order())
			is.NoErr(err)
			is.Equal(got, c.want)
		})
	}
}

func TestEval_Errors(t *testing.T) {
	is := is.New(t)
	ev := cel.NewEvaluator()

	p, err := ev.Compile(`limits["FI"] > 0.0`, orderSchema)
	is.NoErr(err)
	_, err = p.Eval(order())
	is.True(err != nil) // no such key

	// a dyn expression is checked for a bool when it is evaluated
	p, err = ev.Compile(`extra`, orderSchema)
	is.NoErr(err)
	data := order()
	data["extra"] = "yes"
	_, err = p.Eval(data)
	is.True(errors.Is(err, cel.ErrNotBoolean))
}

// Evaluation errors make a predicate false instead of failing the tree.
func TestPredicate(t *testing.T) {
	is := is.New(t)

	pred := cel.MustPredicate(`items > 2`, orderSchema)
	is.True(pred(order()))
	is.True(!pred(map[string]any{"items": 1}))
	is.True(!pred(map[string]any{})) // missing variable
}

func TestMustPredicate_Panics(t *testing.T) {
	is := is.New(t)
	defer func() {
		is.True(recover() != nil) // the expression does not compile
	}()
	cel.MustPredicate(`items +`, orderSchema)
}

func TestPredicate_InTree(t *testing.T) {
	is := is.New(t)

	root := arbor.NewPredicateListNode(arbor.Answer[map[string]any]("standard"))
	root.AddAction(cel.MustPredicate(`country != "DK"`, orderSchema), "export")
	root.AddAction(cel.MustPredicate(`total > limits[country]`, orderSchema), "review")
	root.AddAction(cel.MustPredicate(`member`, orderSchema), "priority")
	tree := arbor.NewTree[map[string]any, string](root)

	o := order()
	is.Equal(tree.Decide(o), "review")

	o["total"] = 10.0
	is.Equal(tree.Decide(o), "priority")

	o["member"] = false
	is.Equal(tree.Decide(o), "standard")

	o["country"] = "SE"
	got, err := tree.Eval(context.Background(), o)
	is.NoErr(err)
	is.Equal(got, "export")
}

func TestTimestamps(t *testing.T) {
	is := is.New(t)

	s := schema.Schema{
		Elements: []schema.DataElement{
			{Name: "now", Type: schema.Timestamp{}},
			{Name: "enrolled", Type: schema.Timestamp{}},
			{Name: "wait", Type: schema.Duration{}},
		},
	}
	p, err := cel.NewEvaluator().Compile(`now - enrolled > duration("4320h") && wait < duration("2h")`, s)
	is.NoErr(err)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	data := map[string]any{
		"now":      now,
		"enrolled": timestamppb.New(now.AddDate(-1, 0, 0)),
		"wait":     durationpb.New(90 * time.Minute),
	}
	got, err := p.Eval(data)
	is.NoErr(err)
	is.True(got)

	data["enrolled"] = timestamppb.New(now.AddDate(0, -1, 0))
	got, err = p.Eval(data)
	is.NoErr(err)
	is.True(!got)
}

func TestProto(t *testing.T) {
	is := is.New(t)

	s := schema.Schema{
		Elements: []schema.DataElement{
			{Name: "api", Type: schema.Proto{Protoname: "google.protobuf.Api", Message: &apipb.Api{}}},
		},
	}
	p, err := cel.NewEvaluator().Compile(`api.version == "v2" && api.methods.exists(m, m.name == "Decide")`, s)
	is.NoErr(err)

	api := &apipb.Api{
		Name:    "arbor.Router",
		Version: "v2",
		Methods: []*apipb.Method{{Name: "Route"}, {Name: "Decide"}},
	}
	got, err := p.Eval(map[string]any{"api": api})
	is.NoErr(err)
	is.True(got)

	api.Methods = api.Methods[:1]
	got, err = p.Eval(map[string]any{"api": api})
	is.NoErr(err)
	is.True(!got)
}

func TestEvalContext_Cancelled(t *testing.T) {
	is := is.New(t)

	s := schema.Schema{
		Elements: []schema.DataElement{
			{Name: "xs", Type: schema.List{ValueType: schema.Int{}}},
		},
	}
	p, err := cel.NewEvaluator().Compile(`xs.exists(x, x < 0)`, s)
	is.NoErr(err)

	xs := make([]int, 10_000)
	for i := range xs {
		xs[i] = i
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.EvalContext(ctx, map[string]any{"xs": xs})
	is.True(err != nil) // interrupted

	got, err := p.EvalContext(context.Background(), map[string]any{"xs": xs})
	is.NoErr(err)
	is.True(!got)
}

func TestFunction(t *testing.T) {
	is := is.New(t)

	divisible, err := cel.Function("divisible", cel.BinaryFunction{
		LHS:    schema.Int{},
		RHS:    schema.Int{},
		Return: schema.Bool{},
		Func: func(lhs, rhs any) (any, error) {
			d := rhs.(int64)
			if d == 0 {
				return nil, errors.New("division by zero")
			}
			return lhs.(int64)%d == 0, nil
		},
	})
	is.NoErr(err)

	s := schema.Schema{
		Elements: []schema.DataElement{{Name: "n", Type: schema.Int{}}},
	}
	p, err := cel.NewEvaluator(divisible).Compile(`divisible(n, 3)`, s)
	is.NoErr(err)

	got, err := p.Eval(map[string]any{"n": 9})
	is.NoErr(err)
	is.True(got)

	got, err = p.Eval(map[string]any{"n": 10})
	is.NoErr(err)
	is.True(!got)

	p, err = cel.NewEvaluator(divisible).Compile(`divisible(n, 0)`, s)
	is.NoErr(err)
	_, err = p.Eval(map[string]any{"n": 9})
	is.True(err != nil) // the function failed
}

func TestFunction_Errors(t *testing.T) {
	is := is.New(t)

	_, err := cel.Function("nothing", cel.BinaryFunction{LHS: schema.Int{}, RHS: schema.Int{}, Return: schema.Bool{}})
	is.True(err != nil) // no implementation

	wrong, err := cel.Function("wrong", cel.BinaryFunction{
		LHS:    schema.Int{},
		RHS:    schema.Int{},
		Return: schema.Bool{},
		Func:   func(lhs, rhs any) (any, error) { return "true", nil },
	})
	is.NoErr(err)

	s := schema.Schema{Elements: []schema.DataElement{{Name: "n", Type: schema.Int{}}}}
	p, err := cel.NewEvaluator(wrong).Compile(`wrong(n, 1)`, s)
	is.NoErr(err)
	_, err = p.Eval(map[string]any{"n": 1})
	is.True(err != nil) // returned a string, not a bool
}
