package main

import (
	"os"

	"github.com/loxinchi/NEO-project/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
