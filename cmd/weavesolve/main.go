// Command weavesolve finds a shortest word ladder between two words.
//
// Usage:
//
//	weavesolve [flags] START STOP
//
// Examples:
//
//	weavesolve cold warm              # cold -> cord -> card -> ward -> warm
//	weavesolve -d system sheep goats  # use the host word list
//	weavesolve -j head tail           # JSON output
package main

import (
	"errors"
	"fmt"
	"os"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to process exit codes: 2 for usage errors, 1 for
// everything else.
func exitCode(err error) int {
	var uerr *usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &uerr):
		return 2
	default:
		return 1
	}
}
