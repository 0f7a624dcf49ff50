package main

import (
	"os"

	"github.com/rustyeddy/bikelog/cmd/bikelog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
