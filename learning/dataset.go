package learning

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Example is one labelled training example: the attributes of an input and
// the result it should produce.
type Example[L, V, R any] struct {
	Attributes Attributes[L, V]
	Result     R
}

// DataSet is an ordered collection of examples, together with the fixed list
// of attribute labels every example carries and the fixed list of results an
// example may have.
type DataSet[L, V, R any] struct {
	examples []Example[L, V, R]
	labels   []L
	results  []R
}

// NewDataSet returns an empty data set.
func NewDataSet[L, V, R any](labels []L, possibleResults []R) *DataSet[L, V, R] {
	return &DataSet[L, V, R]{
		labels:  labels,
		results: possibleResults,
	}
}

// Add appends an example.
func (d *DataSet[L, V, R]) Add(attrs Attributes[L, V], result R) {
	d.examples = append(d.examples, Example[L, V, R]{Attributes: attrs, Result: result})
}

// Labels returns the attribute labels.
func (d *DataSet[L, V, R]) Labels() []L {
	return d.labels
}

// PossibleResults returns the results an example may have.
func (d *DataSet[L, V, R]) PossibleResults() []R {
	return d.results
}

// Examples returns the examples in the order they were added.
func (d *DataSet[L, V, R]) Examples() []Example[L, V, R] {
	return d.examples
}

// Len returns the number of examples.
func (d *DataSet[L, V, R]) Len() int {
	return len(d.examples)
}

// Each calls f for each example in order, stopping early if f returns false.
func (d *DataSet[L, V, R]) Each(f func(Example[L, V, R]) bool) {
	for _, e := range d.examples {
		if !f(e) {
			return
		}
	}
}

// String renders the examples as a table, one column per label.
func (d *DataSet[L, V, R]) String() string {
	tw := table.NewWriter()
	tw.SetTitle("DATA SET")

	header := table.Row{"#"}
	for _, l := range d.labels {
		header = append(header, fmt.Sprintf("%v", l))
	}
	header = append(header, "Result")
	tw.AppendHeader(header)

	for i, e := range d.examples {
		row := table.Row{i + 1}
		for _, l := range d.labels {
			row = append(row, fmt.Sprintf("%v", e.Attributes.Attribute(l)))
		}
		row = append(row, fmt.Sprintf("%v", e.Result))
		tw.AppendRow(row)
	}

	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	return tw.Render()
}
