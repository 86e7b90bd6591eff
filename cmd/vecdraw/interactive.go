package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// interactiveCmd reads commands from stdin and dispatches them through the
// root parser, so a sequence of draw operations can share one shell.
type interactiveCmd struct {
	r      *root
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func (i *interactiveCmd) Run() error {
	if i.in == nil {
		i.in, i.out, i.errOut = os.Stdin, os.Stdout, os.Stderr
	}
	fmt.Fprintln(i.out, "Enter commands (type 'exit' to quit)")
	scanner := bufio.NewScanner(i.in)
	for {
		fmt.Fprint(i.out, "> ")
		if !scanner.Scan() {
			break
		}
		if !i.dispatch(scanner.Text()) {
			break
		}
	}
	return scanner.Err()
}

// dispatch runs one line and reports whether the loop should keep going.
func (i *interactiveCmd) dispatch(line string) bool {
	args := strings.Fields(line)
	switch {
	case len(args) == 0:
		return true
	case args[0] == "exit", args[0] == "quit":
		return false
	case args[0] == "interactive":
		// A nested shell would fight this one for stdin.
		return true
	}
	if err := i.r.Run(args); err != nil {
		fmt.Fprintln(i.errOut, err)
	}
	return true
}
