// Command goshared exposes the goshared helpers on the command line.
package main

import (
	"errors"
	"os"

	"github.com/randalmurphal/goshared/pkg/goshared/shell"
)

func main() {
	err := newRootCommand().Execute()
	if err == nil {
		return
	}
	var exitErr *shell.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode > 0 {
		os.Exit(exitErr.ExitCode)
	}
	os.Exit(1)
}
