// Command growbench runs the growth-strategy benchmark and prints the
// elapsed seconds of the direct (duplicate-on-growth) and indirect
// (relocate-on-growth) append loops, one per line.
//
// It takes no flags and reads no environment; the workload is fixed.
package main

import (
	"log"
	"os"

	"github.com/hupe1980/growvec/bench"
)

func main() {
	if _, err := bench.Run(os.Stdout); err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}
}
