// Package cmd implements scarab's command-line surface: a cobra command
// tree mirroring the teacher's cli/cmd layout, wired to the scarab/eval/
// parser packages instead of sqlparser/sqlcode.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "scarab",
		Short:        "scarab",
		SilenceUsage: true,
		Long:         `scarab is a small homoiconic, s-expression-based scripting language.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initSession()
		},
	}

	configPath string
	verbose    bool

	appConfig Config
	sessionID uuid.UUID
	logger    logrus.FieldLogger
)

// Execute runs the root command; cmd/scarab/main.go's sole job is to call this
// and translate a non-nil error into an exit code.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return rootCmd.Execute()
}

// initSession loads the config, sets the log level and tags a session_id
// onto every log line for this process, the same correlation-id idea the
// teacher applies per migration run.
func initSession() error {
	var err error
	sessionID, err = uuid.NewV4()
	if err != nil {
		return err
	}

	appConfig, err = LoadConfig(configPath)
	if err != nil {
		return err
	}

	base := logrus.StandardLogger()
	if verbose || appConfig.Verbose {
		base.SetLevel(logrus.DebugLevel)
	}
	logger = base.WithField("session_id", sessionID.String())

	return nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scarab/config.yaml"
	}
	return filepath.Join(home, ".scarab", "config.yaml")
}
