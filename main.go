package main

import (
	"os"

	"github.com/PolarWolf314/deary/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
