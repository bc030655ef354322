// Package cel compiles predicates for decision trees from expressions written
// in Google's Common Expression Language.
//
// See https://github.com/google/cel-go and https://opensource.google/projects/cel for more information
// about CEL. The expressions you write must conform to the CEL spec: https://github.com/google/cel-spec.
//
// # Inputs
//
// A compiled predicate takes a map[string]any as its input. The keys of the
// map are the variables declared in the schema passed to Compile, and the
// values must have the declared types:
//
//	schema.Int       int, int32, int64
//	schema.Float     float32, float64
//	schema.Bool      bool
//	schema.String    string
//	schema.Duration  time.Duration or *durationpb.Duration
//	schema.Timestamp time.Time or *timestamppb.Timestamp
//	schema.List      slices of the value type
//	schema.Map       maps of the key and value types
//	schema.Proto     the generated Go type of the message
//
// # Using predicates in trees
//
// Program.Predicate returns an arbor.Predicate, so compiled expressions can be
// used anywhere a predicate is accepted:
//
//	ev := cel.NewEvaluator()
//	big, err := ev.Compile(`order.total > 1000.0`, s)
//	...
//	n := arbor.NewPredicateListNode(arbor.Answer[map[string]any]("standard"))
//	n.AddAction(big.Predicate(), "review")
//
// Expressions are type checked against the schema when they are compiled, and
// only expressions producing a bool are accepted.
package cel
