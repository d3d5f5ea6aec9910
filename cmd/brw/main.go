// Package main is the entry point for the brw CLI.
package main

import (
	"os"

	"github.com/browserware/brw/cmd/brw/commands"
)

func main() {
	os.Exit(commands.Execute())
}
