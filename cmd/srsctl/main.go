// Command srsctl is the operator CLI: schema migrations, progress resets and
// access tokens for local testing.
//
// Configuration is read the same way as the server (CONFIG_PATH, then ENV).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-srs/internal/app"
	"github.com/heartmarshall/myenglish-srs/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "srsctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "srsctl",
		Short:         "Operate the spaced-repetition service",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if configPath != "" {
				os.Setenv("CONFIG_PATH", configPath)
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path (overrides CONFIG_PATH)")

	root.AddCommand(
		newMigrateCommand(),
		newResetCommand(),
		newTokenCommand(),
	)

	return root
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
