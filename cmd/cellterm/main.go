// Command cellterm exercises the terminal substrate: a painted demo screen and a key inspector.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cellterm: %v\n", err)
		os.Exit(1)
	}
}
