// Command polyskel offsets and inspects polygons read from a YAML file
// through the skeleton-simulation engine in this module.
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
