package main

import (
	"os"

	"github.com/dshills/verdict/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
