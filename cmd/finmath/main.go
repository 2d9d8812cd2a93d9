package main

import (
	"os"

	"github.com/davrios/finmath/cmd/finmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
