// Command sonic tokenizes Sonic source files and prints the resulting
// token stream, or reports the first lexical error encountered.
package main

import (
	"fmt"
	"os"

	"github.com/soniclang/sonic/cmd/sonic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
