// Command flowbatch computes minimum-cost integer flows under a batch
// shipment volume: see the solver package for the underlying primal/
// dual network-simplex and branch-and-bound pipeline.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
