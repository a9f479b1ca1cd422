package main

import (
	"os"

	"github.com/katalvlaran/econlab/cmd/econ/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
