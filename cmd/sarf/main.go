// Command sarf derives, validates and decomposes Arabic words from
// trilateral roots and morphological schemes.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/sarf/internal/cli"
)

// Version is set at build time.
var Version = "dev"

func main() {
	if err := cli.NewRootCmd(Version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
