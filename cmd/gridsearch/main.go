// Command gridsearch runs the grid puzzle solvers against their samples
// and, when present, the real inputs.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
)

//go:embed solver.go
var solverSource []byte

//go:embed default.hcl
var defaultConfig []byte

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW, errW io.Writer, args []string) error {
	cmd := newRootCmd(outW, errW)
	cmd.SetArgs(args)
	return cmd.Execute()
}
