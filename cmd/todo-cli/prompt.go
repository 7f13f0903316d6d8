package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// readPasswordFromTerminal prompts on w and reads a password without echo.
func readPasswordFromTerminal(w io.Writer) (string, error) {
	fmt.Fprint(w, "Password: ")

	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password")
	}

	return string(pw), nil
}
