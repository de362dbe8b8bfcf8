package main

import (
	"os"

	"github.com/akyairhashvil/breathe/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
