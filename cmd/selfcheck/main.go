package main

import (
	"os"

	"coffee/internal/selfcheck"
)

func main() {
	if err := selfcheck.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
