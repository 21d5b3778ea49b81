// Command lensops evaluates lensing quantities of a YAML mass model.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lensops:", err)
		os.Exit(1)
	}
}
