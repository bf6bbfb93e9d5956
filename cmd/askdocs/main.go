// Command askdocs answers questions about local documents using
// per-document vector collections.
package main

import (
	"fmt"
	"os"

	"github.com/askdocs/askdocs-cli/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.InitServices(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
