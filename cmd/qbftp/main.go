// Command qbftp solves QBF instances with prohibited triples using a genetic
// algorithm, and offers helpers to generate, inspect and score instances.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qbftp:", err)
		os.Exit(1)
	}
}
