// Package cmd holds the command-line entry points of the API.
package cmd

import (
	"context"

	"ExpenseAPI/config/database"
	"ExpenseAPI/config/environment"
	"ExpenseAPI/logging"

	"github.com/spf13/cobra"
)

// RootCommand runs the HTTP server when invoked without a sub-command.
var RootCommand = &cobra.Command{
	Use:          "expense-api",
	Short:        "Personal expense tracking REST API",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCommand.RunE(cmd, args)
	},
}

var envFile string

func init() {
	RootCommand.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	RootCommand.AddCommand(serveCommand)
	RootCommand.AddCommand(addUserCommand)
}

// bootstrap loads configuration, sets up logging and opens the store.
func bootstrap(ctx context.Context) (environment.Config, *database.Stores, error) {
	dotenvLoaded := environment.LoadDotEnv(envFile)

	cfg, err := environment.Load()
	logging.Setup(cfg.IsProduction(), cfg.LogLevel)
	if !dotenvLoaded {
		logging.Debug().Str("file", envFile).Msg("no dotenv file loaded, using process environment")
	}
	if err != nil {
		return cfg, nil, err
	}

	stores, err := database.Open(ctx, cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, stores, nil
}
