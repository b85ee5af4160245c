// Package main runs the lazyseq command line.
package main

import (
	"os"

	"github.com/webriots/lazyseq/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
