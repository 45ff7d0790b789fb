// Package source resolves input specifiers to line readers.
package source

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// StdinMarker is the specifier naming standard input.
const StdinMarker = "-"

var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// UnreadableError is returned by Open when a specifier cannot be opened.
type UnreadableError struct {
	Spec string
	Err  error
}

func (e *UnreadableError) Error() string {
	return e.Spec + ": " + reason(e.Err)
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// ReadError is a failure while reading an already opened source.
type ReadError struct {
	Spec string
	Err  error
}

func (e *ReadError) Error() string {
	return e.Spec + ": " + reason(e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// reason drops the "open <path>:" style prefix the os package adds, since
// callers already name the specifier.
func reason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

// Reader yields the lines of one source. It is used like bufio.Scanner but
// has no maximum line length.
type Reader struct {
	spec   string
	br     *bufio.Reader
	closer io.Closer
	line   string
	err    error
	done   bool
}

// Open resolves spec. StdinMarker reads from stdin, which is never closed by
// the returned Reader; anything else is opened as a file.
func Open(spec string, stdin io.Reader) (*Reader, error) {
	if spec == StdinMarker {
		return &Reader{spec: spec, br: bufio.NewReader(stdin)}, nil
	}
	f, err := os.Open(spec)
	if err != nil {
		return nil, &UnreadableError{Spec: spec, Err: err}
	}
	return &Reader{spec: spec, br: bufio.NewReader(f), closer: f}, nil
}

func (r *Reader) Spec() string {
	return r.spec
}

// Scan advances to the next line. The trailing "\n", and a "\r" right before
// it, are stripped. A final line without a newline is still returned.
func (r *Reader) Scan() bool {
	if r.done {
		return false
	}
	line, err := r.br.ReadString('\n')
	if err != nil {
		r.done = true
		if err != io.EOF {
			r.err = &ReadError{Spec: r.spec, Err: err}
			return false
		}
		if line == "" {
			return false
		}
	} else {
		line = strings.TrimSuffix(line[:len(line)-1], "\r")
	}
	if !utf8.ValidString(line) {
		r.done = true
		r.err = &ReadError{Spec: r.spec, Err: ErrInvalidUTF8}
		return false
	}
	r.line = line
	return true
}

func (r *Reader) Text() string {
	return r.line
}

// Err returns the first error hit by Scan, or nil at a clean end of input.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
