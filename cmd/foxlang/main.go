package main

import (
	"os"

	"github.com/midbel/foxlang/cmd/foxlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
