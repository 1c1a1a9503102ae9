// Package cli wires the argh binary: one positional argument naming the
// program file, no flags, no environment. It owns the single fatal
// termination routine for interpreter errors.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thruflo/argh/internal/grid"
	"github.com/thruflo/argh/internal/interp"
	"github.com/thruflo/argh/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// fatalDiagnostic is what a failing program prints, inherited from the
// reference implementation.
const fatalDiagnostic = "argh!!"

var rootCmd = &cobra.Command{
	Use:   "argh <file>",
	Short: "Interpreter for the Argh! two-dimensional programming language",
	Long: `Argh runs programs written in the Argh! esoteric language: a
rectangular grid of characters walked by a single instruction pointer.
Each character the pointer lands on is an instruction operating on an
integer stack, on the grid itself (programs may self-modify), or on the
pointer's heading.

The only argument is the path to the program file. Print instructions
write to stdout unbuffered; input instructions read stdin one line at
a time.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runProgram,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("argh version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runProgram(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read program file: %w", err)
	}
	return runInterpreter(string(source), os.Stdin, cmd.OutOrStdout(), exitFatal)
}

// exitFatal is the termination routine shared by every fatal condition:
// the fixed diagnostic on the output stream, then exit status 1. The
// leading newline breaks out of any partial program output.
func exitFatal(out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", fatalDiagnostic)
	os.Exit(1)
}

// runInterpreter loads source into a grid and executes it against the
// given streams, invoking fatal on any interpreter error. Split from
// runProgram so tests can substitute the process exit.
func runInterpreter(source string, in io.Reader, out io.Writer, fatal func(io.Writer)) error {
	g := grid.Load(source)
	it := interp.NewWithOptions(g, interp.Options{Input: in, Output: out})

	if err := it.Run(); err != nil {
		logging.Debug("interpreter failed", "err", err, "pos", it.Position())
		fatal(out)
		return err
	}
	return nil
}
