package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tansell/minishell/core/host"
	"github.com/tansell/minishell/core/logger"
	"github.com/tansell/minishell/core/shell"
)

func runShell(cmd *cobra.Command) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	appLog, err := cfg.OpenAppLog()
	if err != nil {
		return err
	}
	defer appLog.Close()

	sh, err := shell.New(host.System(), cfg, shell.Options{
		Log: logger.NewJSONLines(appLog).NewSession(),
	})
	if err != nil {
		return err
	}
	defer sh.Close()

	return sh.Run()
}

// runCmd starts an interactive session on the local terminal.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive shell session.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
