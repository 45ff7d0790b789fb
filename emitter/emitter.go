// Package emitter concatenates input sources to an output, numbering lines
// according to a numbering.Policy.
package emitter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/liamg/catr/numbering"
	"github.com/liamg/catr/source"
)

type Emitter struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Policy numbering.Policy
	Logger *slog.Logger
}

// Run emits every spec in order, or stdin if specs is empty. Specs that
// cannot be opened are reported to Stderr and skipped. A read error on an
// opened source stops the run and is returned after flushing what was
// already written.
func (e *Emitter) Run(specs []string) error {
	if len(specs) == 0 {
		specs = []string{source.StdinMarker}
	}
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("policy", e.Policy.String())

	out := bufio.NewWriter(e.Stdout)
	var n numbering.Counter
	for _, spec := range specs {
		r, err := source.Open(spec, e.Stdin)
		if err != nil {
			if flushErr := out.Flush(); flushErr != nil {
				return flushErr
			}
			fmt.Fprintln(e.Stderr, err)
			logger.Debug("Skipped unreadable source.", "spec", spec, "error", errors.Unwrap(err))
			continue
		}
		logger.Debug("Opened source.", "spec", spec)
		lines, err := e.emit(out, r, &n)
		if err != nil {
			if flushErr := out.Flush(); flushErr != nil {
				logger.Warn("Failed to flush output.", "error", flushErr)
			}
			return err
		}
		logger.Debug("Finished source.", "spec", spec, "lines", lines)
	}
	if err := out.Flush(); err != nil {
		return err
	}
	logger.Debug("Run complete.", "numbered", int(n))
	return nil
}

func (e *Emitter) emit(w io.Writer, r *source.Reader, n *numbering.Counter) (int, error) {
	defer r.Close()
	lines := 0
	for r.Scan() {
		if err := e.Policy.Write(w, r.Text(), n); err != nil {
			return lines, err
		}
		lines++
	}
	return lines, r.Err()
}
