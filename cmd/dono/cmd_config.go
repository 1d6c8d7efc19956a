package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klabast/dono/internal/commands"
)

var tokenFromStdin bool

// setTokenCmd stores a GitHub token in the config file
var setTokenCmd = &cobra.Command{
	Use:   "set-token",
	Short: "Store a GitHub personal access token in the config file",
	Long: `Prompts for a GitHub personal access token with masked input and stores
it as github_user_token. With --stdin the token is read from standard input,
for example: echo "$TOKEN" | dono set-token --stdin`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		return commands.SetToken(path, commands.SetTokenOptions{
			FromStdin: tokenFromStdin,
			Stdin:     os.Stdin,
			Stdout:    cmd.OutOrStdout(),
		})
	},
}

func initSetTokenFlags() {
	setTokenCmd.Flags().BoolVar(&tokenFromStdin, "stdin", false, "Read the token from standard input")
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration with the token masked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok, err := loadConfig(cmd)
		if err != nil || !ok {
			return err
		}
		if err := cfg.ValidateDisplay(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}
		return cfg.Redacted().Encode(cmd.OutOrStdout())
	},
}
