package main

import (
	"os"

	"github.com/idilsaglam/packlist/internal/cli"
)

func main() {
	// Hand the args to the CLI runner; it maps errors to exit codes.
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
