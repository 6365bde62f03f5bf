// Command scarab is the thin entrypoint over cli/cmd, exactly mirroring
// the teacher's cli/main.go's role over its own cmd package.
package main

import (
	"os"

	"github.com/pianohacker/scarab/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
