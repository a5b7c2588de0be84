package cmd

import (
	"os"

	"spendlog/internal/config"
	"spendlog/internal/session"
	"spendlog/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagUser    string
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "spendlog",
	Short: "Personal expense tracking CLI",
	Long:  "Track daily expenses by category, set monthly limits, and get spending reports.",
	RunE:  runSession,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "Username the expense file is kept under")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding per-user expense files")
}

func runSession(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	user := flagUser
	if user == "" {
		user = cfg.General.DefaultUser
	}
	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = cfg.General.DataDir
	}

	st := store.New(dataDir)
	return session.New(user, st, os.Stdin, os.Stdout).Run()
}
