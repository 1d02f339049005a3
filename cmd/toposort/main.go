// Command toposort prints a topological order of a directed graph.
// Without input flags it sorts the built-in demo DAG.
package main

import (
	"os"

	"github.com/katalvlaran/toposort/cmd/toposort/lib"
)

func main() {
	os.Exit(lib.Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
