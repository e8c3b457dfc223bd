package main

import (
	"os"

	"github.com/zgpcy/fractime/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
