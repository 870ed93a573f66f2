// Command mmcif parses mmCIF files and prints their tables.
package main

import (
	"os"

	"github.com/shapestone/shape-mmcif/cmd/mmcif/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
