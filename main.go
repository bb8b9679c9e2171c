package main

import (
	"os"

	"github.com/mgrindal/ethica/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
