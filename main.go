package main

import (
	"os"

	"github.com/museng3n/limit2d/pkg/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args))
}
