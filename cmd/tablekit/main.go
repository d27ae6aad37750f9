package main

import (
	"os"

	"github.com/Makepad-fr/tablekit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
