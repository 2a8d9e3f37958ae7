package main

import (
	"os"

	"github.com/osad-sakana/kururi-compiler/cmd/kururic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
