package main

import (
	"os"

	"github.com/arthur-debert/brewboot/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.DefaultRuntime(), os.Args[1:]))
}
