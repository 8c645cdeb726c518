package main

import (
	"os"

	"github.com/dvhoang/congdan/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
