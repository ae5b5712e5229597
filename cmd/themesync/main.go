// Command themesync applies one theme across VS Code, Ghostty and Helix.
package main

import (
	"fmt"
	"os"

	"github.com/themesync/themesync/internal/cli"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cli.SetVersion(version)
	return cli.Execute()
}
