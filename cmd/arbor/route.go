package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ezachrisen/arbor"
	"github.com/ezachrisen/arbor/cel"
	"github.com/ezachrisen/arbor/schema"
)

// ruleSeparator separates the expression from the answer in a --rule flag.
const ruleSeparator = "=>"

func newRouteCmd() *cobra.Command {
	var (
		vars     []string
		rules    []string
		def      string
		maxSteps int
	)

	cmd := &cobra.Command{
		Use:   "route name=value...",
		Short: "Route an input through an ordered list of CEL rules",
		Long: `Route builds a predicate list from the --rule flags, in the order given,
and prints the answer of the first rule whose expression is true for the input.
If no rule matches, the --default answer is printed.

  arbor route --var age:int --var member:bool \
    --rule 'age < 18 => minor' --rule 'member => member' \
    --default guest age=30 member=true`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseSchema(vars)
			if err != nil {
				return err
			}
			root, err := buildRouter(s, rules, def)
			if err != nil {
				return err
			}
			data, err := parseData(s, args)
			if err != nil {
				return err
			}

			log := loggerFrom(cmd.Context())
			log.Debug("routing", "rules", len(rules), "input", data)

			answer, err := arbor.NewTree(root).Eval(cmd.Context(), data, arbor.MaxSteps(maxSteps))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "input variable as name:type (repeatable)")
	cmd.Flags().StringArrayVar(&rules, "rule", nil, "rule as 'expression => answer' (repeatable, tested in order)")
	cmd.Flags().StringVar(&def, "default", "", "answer when no rule matches")
	cmd.Flags().IntVar(&maxSteps, "max-steps", arbor.DefaultMaxSteps, "maximum nodes visited")
	return cmd
}

func parseSchema(vars []string) (schema.Schema, error) {
	s := schema.Schema{ID: "route"}
	for _, v := range vars {
		e, err := schema.ParseElement(v)
		if err != nil {
			return s, err
		}
		s.Elements = append(s.Elements, e)
	}
	return s, nil
}

func buildRouter(s schema.Schema, rules []string, def string) (arbor.Node[map[string]any, string], error) {
	ev := cel.NewEvaluator()
	root := arbor.NewPredicateListNode(arbor.Answer[map[string]any](def))
	for _, r := range rules {
		expr, answer, ok := strings.Cut(r, ruleSeparator)
		if !ok {
			return nil, fmt.Errorf("rule %q: want 'expression %s answer'", r, ruleSeparator)
		}
		p, err := ev.Compile(strings.TrimSpace(expr), s)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r, err)
		}
		root.AddAction(p.Predicate(), strings.TrimSpace(answer))
	}
	return root, nil
}

// parseData converts name=value arguments to the types declared in the schema.
func parseData(s schema.Schema, args []string) (map[string]any, error) {
	types := map[string]schema.Type{}
	for _, e := range s.Elements {
		types[e.Name] = e.Type
	}

	data := map[string]any{}
	for _, a := range args {
		name, raw, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("argument %q: want name=value", a)
		}
		t, ok := types[name]
		if !ok {
			return nil, fmt.Errorf("argument %q: no --var named %s", a, name)
		}
		v, err := parseValue(t, raw)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", a, err)
		}
		data[name] = v
	}
	return data, nil
}

func parseValue(t schema.Type, raw string) (any, error) {
	switch t.(type) {
	case schema.Int:
		return strconv.ParseInt(raw, 10, 64)
	case schema.Float:
		return strconv.ParseFloat(raw, 64)
	case schema.Bool:
		return strconv.ParseBool(raw)
	case schema.String, schema.Any:
		return raw, nil
	case schema.Duration:
		return time.ParseDuration(raw)
	case schema.Timestamp:
		return time.Parse(time.RFC3339, raw)
	default:
		return nil, fmt.Errorf("values of type %s cannot be given on the command line", t)
	}
}
