package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a returned error to the exit code §6 assigns to its
// kind; anything not produced through internal/errs is an "other"
// failure.
func exitCodeFor(err error) int {
	var e *errs.Error
	if !errors.As(err, &e) {
		return 5
	}
	switch e.Kind {
	case errs.KindInput:
		return 1
	case errs.KindCrypto:
		return 2
	case errs.KindStorage:
		return 3
	case errs.KindNode:
		return 4
	default:
		return 5
	}
}
