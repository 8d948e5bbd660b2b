package cmd

import (
	"fmt"
	"strings"

	"ExpenseAPI/services"
	"ExpenseAPI/utils"

	"github.com/spf13/cobra"
)

var addUserFlags struct {
	username string
	email    string
	password string
}

var addUserCommand = &cobra.Command{
	Use:   "adduser",
	Short: "Register a user from the command line",
	Long:  "Register a user directly in the configured store, applying the same uniqueness rules as POST /api/auth/register.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(addUserFlags.username) == "" || strings.TrimSpace(addUserFlags.email) == "" {
			return fmt.Errorf("--username and --email are required")
		}
		if len(addUserFlags.password) < 6 {
			return fmt.Errorf("--password must be at least 6 characters")
		}

		cfg, stores, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer stores.Close()

		authService := services.NewAuthService(stores.Users, utils.NewTokenManager(cfg.JWTSecret))
		user, err := authService.Register(cmd.Context(), addUserFlags.username, addUserFlags.email, addUserFlags.password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	addUserCommand.Flags().StringVar(&addUserFlags.username, "username", "", "username of the new user")
	addUserCommand.Flags().StringVar(&addUserFlags.email, "email", "", "email of the new user")
	addUserCommand.Flags().StringVar(&addUserFlags.password, "password", "", "password of the new user (min 6 characters)")
}
