package main

import (
	"os"

	"github.com/HeiCAD/auto-subtitle-generator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
