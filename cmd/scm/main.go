// Command scm wires the interpreter's primitive table and REPL façade
// behind a cobra root command. The interactive loop body itself is out
// of spec.md's scope (§1) — this file only parses flags, constructs an
// interp.Interpreter, and feeds it lines from stdin or a script file.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkelchte/scm-core/internal/interp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	gcLog      bool
	scriptPath string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scm",
		Short: "A minimal Scheme-like Lisp interpreter",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.Disabled
			if gcLog {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			in := interp.New(logger)
			defer in.Close()

			var src io.Reader = os.Stdin
			if scriptPath != "" {
				f, err := os.Open(scriptPath)
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}
			return repl(cmd.OutOrStdout(), src, in, scriptPath == "")
		},
	}
	cmd.Flags().BoolVar(&gcLog, "gc-log", false, "log each heap collection cycle at debug level")
	cmd.Flags().StringVar(&scriptPath, "file", "", "run a script file non-interactively instead of reading stdin")
	return cmd
}

// repl reads one line at a time from src and delegates each to
// in.Run, printing the serialized result or the error message. When
// interactive it also prints a ">" prompt before each read.
func repl(out io.Writer, src io.Reader, in *interp.Interpreter, interactive bool) error {
	scanner := bufio.NewScanner(src)
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		result, err := in.Run(line)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			continue
		}
		fmt.Fprintln(out, result)
	}
	return scanner.Err()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
