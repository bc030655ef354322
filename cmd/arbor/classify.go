package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// defaultProbes are classified when no numbers are given.
var defaultProbes = []int{-50, -11, -10, -1, 0, 1, 10, 11, 50}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [-- numbers...]",
		Short: "Classify integers with every demo tree and compare the answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			probes, err := parseInts(args)
			if err != nil {
				return err
			}
			if len(probes) == 0 {
				probes = defaultProbes
			}

			log := loggerFrom(cmd.Context())
			all := strategies()

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetTitle("CLASSIFICATION")
			header := table.Row{"Input"}
			for _, s := range all {
				header = append(header, s.name)
			}
			header = append(header, "Agree")
			tw.AppendHeader(header)

			disagreements := 0
			for _, n := range probes {
				row := table.Row{n}
				first := all[0].decide(n)
				agree := true
				for _, s := range all {
					c := s.decide(n)
					log.Debug("decided", "strategy", s.name, "input", n, "answer", c)
					if c != first {
						agree = false
					}
					row = append(row, c)
				}
				if !agree {
					disagreements++
					log.Warn("strategies disagree", "input", n)
				}
				row = append(row, agree)
				tw.AppendRow(row)
			}

			style := table.StyleLight
			style.Format.Header = text.FormatDefault
			tw.SetStyle(style)
			tw.Render()

			if disagreements > 0 {
				return fmt.Errorf("strategies disagree on %d input(s)", disagreements)
			}
			return nil
		},
	}
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", a)
		}
		out = append(out, n)
	}
	return out, nil
}
