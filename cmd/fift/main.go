// Command fift is the Fift interpreter CLI (spec §6.1), grounded on the
// cobra-based command layout of github.com/cwbudde/go-dws's
// cmd/dwscript/cmd package.
package main

import "os"

func main() {
	os.Exit(Execute())
}
