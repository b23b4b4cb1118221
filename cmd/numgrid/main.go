// Package main provides the numgrid CLI.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/numgrid/numgrid/ops"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("numgrid %s\n", version)
			return
		case "ops":
			names := ops.Default.Names()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return
		}
	}

	fmt.Println("numgrid - elementwise matrix operations with multiple dispatch")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  ops        List built-in operations")
}
