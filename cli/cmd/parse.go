package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/pianohacker/scarab/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Dump the parsed form tree for a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		form, err := parser.ParseProgram(string(data), parser.FileRef(args[0]))
		if err != nil {
			return err
		}

		fmt.Println(repr.String(form, repr.Indent("  ")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
