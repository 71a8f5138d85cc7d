// Command weft is the Weft project CLI.
package main

import (
	"os"

	"github.com/go-weft/weft/cmd/weft/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
