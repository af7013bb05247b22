package main

import (
	"fmt"
	"os"
)

// Entry point of the application.
func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "repoversion: %v\n", err)
		os.Exit(1)
	}
}
