// Package main provides the entry point for the keymatch CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/keymatch/cmd/keymatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
