package main

import (
	"os"

	"github.com/couchcryptid/chicago-health-atlas/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
