package main

import (
	"os"

	"golang.org/x/term"
)

// tristate flags accept "auto", "on", or "off"; resolveTristate collapses
// "auto" against whether fd looks like an interactive terminal.
func resolveTristate(mode string, fd uintptr) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(fd))
	}
}

func resolveColor(mode string) bool {
	return resolveTristate(mode, os.Stdout.Fd())
}

func resolveUI(mode string) bool {
	return resolveTristate(mode, os.Stderr.Fd())
}
