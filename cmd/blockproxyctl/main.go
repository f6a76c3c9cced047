package main

import (
	"os"

	"github.com/jroosing/blockproxy/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
