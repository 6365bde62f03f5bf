package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pianohacker/scarab"
	"github.com/pianohacker/scarab/eval"
	"github.com/pianohacker/scarab/parser"
	"github.com/pianohacker/scarab/value"
)

var printAll bool

var runCmd = &cobra.Command{
	Use:   "run <file>...",
	Short: "Parse and evaluate one or more scarab source files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFiles(args, os.Stdout)
	},
}

func init() {
	runCmd.Flags().BoolVar(&printAll, "print-all", false, "print every top-level form's result, not just the last")
	rootCmd.AddCommand(runCmd)
}

// runFiles parses every file up front — a parse failure in any one of them
// aborts before any evaluation happens, collected as scarab.ParseErrors —
// then evaluates them in order against one shared context.
func runFiles(paths []string, out *os.File) error {
	forms := make([]value.Value, len(paths))
	var parseErrs scarab.ParseErrors

	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		form, err := parser.ParseProgram(string(data), parser.FileRef(path))
		if err != nil {
			if perr, ok := err.(*parser.Error); ok {
				parseErrs = append(parseErrs, perr)
				continue
			}
			return err
		}
		forms[i] = form
	}

	if len(parseErrs) > 0 {
		return parseErrs
	}

	interp := scarab.New(eval.WithLogger(logger))
	for i := range paths {
		results, ok := eval.EvalAll(interp.Context(), forms[i])
		if !ok {
			return eval.ErrorFromValue(interp.Context().Error())
		}

		if printAll {
			for _, v := range results {
				fmt.Fprintln(out, value.Inspect(v))
			}
		} else if len(results) > 0 {
			fmt.Fprintln(out, value.Inspect(results[len(results)-1]))
		}
	}

	return nil
}
