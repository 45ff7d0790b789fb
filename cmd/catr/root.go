package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/liamg/catr/emitter"
	"github.com/liamg/catr/numbering"
)

// Version is set at link time.
var Version = "dev"

const logLevelEnv = "CATR_LOG_LEVEL"

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

// usageError marks errors caused by how catr was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var flagNumber, flagNumberNonBlank bool

	cmd := &cobra.Command{
		Use:     "catr [FILE]...",
		Short:   "Concatenate files to standard output",
		Long:    "Concatenate FILE(s) to standard output. With no FILE, or when FILE is -, read standard input.",
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := numbering.Parse(flagNumber, flagNumberNonBlank)
			if err != nil {
				return &usageError{err: err}
			}
			e := &emitter.Emitter{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
				Policy: policy,
				Logger: logger,
			}
			return e.Run(args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.Flags().BoolVarP(&flagNumber, "number", "n", false, "Number all output lines")
	cmd.Flags().BoolVarP(&flagNumberNonBlank, "number-nonblank", "b", false, "Number non-blank output lines")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return cmd
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	var bad bool
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = slog.LevelWarn
			bad = true
		}
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	if bad {
		logger.Warn("Ignoring invalid log level.", "env", logLevelEnv, "value", level)
	}
	return logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := newLogger(stderr, os.Getenv(logLevelEnv))

	cmd := newRootCmd(logger)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "catr: %s\n", err)

	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintln(stderr, "Try 'catr --help' for more information.")
		return exitUsage
	}
	return exitFatal
}
