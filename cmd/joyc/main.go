// Command joyc is the Joy front-end compiler CLI: lex, parse, check,
// monomorphise and emit C for a single source file, driving the pipeline
// through a cobra command tree.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !isSilent(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
