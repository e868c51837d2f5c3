// Package main provides oldcrypto-cli, a command line front end for the
// classical cipher library.
package main

import (
	"os"
)

const appName = "oldcrypto-cli"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
