package main

import (
	"os"

	"github.com/gitpeek/gitpeek/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
