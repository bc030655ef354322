// Command arbor classifies values with decision trees built from each of the
// composition mechanisms in the arbor module.
//
//	arbor classify -- -50 -10 0 7 11
//	arbor bench --strategy contains --n 1000000
//	arbor route --var age:int --rule 'age < 18 => minor' --default adult age=12
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
