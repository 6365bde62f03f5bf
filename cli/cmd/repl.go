package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pianohacker/scarab"
	"github.com/pianohacker/scarab/eval"
	"github.com/pianohacker/scarab/parser"
	"github.com/pianohacker/scarab/value"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	// A bare `scarab` with no subcommand drops into the REPL (spec.md §6),
	// matching the "default command" shape of a line-oriented tool.
	rootCmd.RunE = replCmd.RunE
}

// runREPL implements spec.md §6's documented REPL contract exactly: prompt
// "> ", `Error: <inspect(err)>` on a failed line, numbered results when a
// line parses to more than one form, no output for a single nil result,
// exit (return nil, causing exit code 0) on EOF.
func runREPL(in io.Reader, out io.Writer) error {
	interp := scarab.New(eval.WithLogger(logger))
	prompt := appConfig.Prompt
	if prompt == "" {
		prompt = "> "
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return nil
		}
		line := scanner.Text()

		results, err := interp.RunString(line, parser.FileRef("<stdin>"))
		if err != nil {
			fmt.Fprintf(out, "Error: %s\n", err.Error())
			continue
		}

		switch len(results) {
		case 0:
		case 1:
			if !value.IsNil(results[0]) {
				fmt.Fprintln(out, value.Inspect(results[0]))
			}
		default:
			for i, v := range results {
				fmt.Fprintf(out, "%d. %s\n", i+1, value.Inspect(v))
			}
		}
	}
}
