package numbering

import (
	"errors"
	"fmt"
	"io"
)

// ErrConflict is returned by Parse when both numbering modes are requested.
var ErrConflict = errors.New("--number and --number-nonblank cannot be used together")

// Policy decides how each line is written.
type Policy int

const (
	Plain Policy = iota
	All
	NonBlank
)

// Counter is the running line number for a whole invocation.
type Counter int

func Parse(all, nonblank bool) (Policy, error) {
	switch {
	case all && nonblank:
		return Plain, ErrConflict
	case all:
		return All, nil
	case nonblank:
		return NonBlank, nil
	}
	return Plain, nil
}

func (p Policy) String() string {
	switch p {
	case Plain:
		return "plain"
	case All:
		return "all"
	case NonBlank:
		return "nonblank"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Write writes line to w followed by a newline, prefixed with the next value
// of n if the policy numbers it.
func (p Policy) Write(w io.Writer, line string, n *Counter) error {
	switch p {
	case All:
		return numbered(w, line, n)
	case NonBlank:
		if line == "" {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return numbered(w, line, n)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func numbered(w io.Writer, line string, n *Counter) error {
	*n++
	_, err := fmt.Fprintf(w, "%6d\t%s\n", *n, line)
	return err
}
