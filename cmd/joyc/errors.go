package main

import "errors"

// errSilent signals a run that already printed its diagnostics to stderr
// via diagfmt and should make main exit non-zero without cobra printing
// anything further on top.
var errSilent = errors.New("")

func isSilent(err error) bool {
	return err != nil && err.Error() == ""
}
