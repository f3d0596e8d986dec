package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/tansell/minishell/core/config"
)

var cfgPath string

// loadConfig loads the configuration directory, falling back to the
// embedded defaults when no config.yaml exists.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "minishell",
	Short: "A minimal interactive command shell.",
	Long: `A minimal interactive command shell with pipelines, environment
variable substitution and a small set of built-in commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation starts an interactive session.
		return runShell(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
