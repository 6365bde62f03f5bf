package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/pianohacker/scarab/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream produced by scanning a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		sc := parser.NewScanner(string(data), parser.FileRef(args[0]))
		for {
			tok, err := sc.Next()
			if err != nil {
				return err
			}
			fmt.Println(repr.String(tok))
			if tok.Kind == parser.EOF {
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
