package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"spendlog/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to spendlog!")
	fmt.Println()

	// 1. Default username
	fmt.Println("  1. Default username")
	fmt.Println("     Your expenses are kept in one file per username.")
	fmt.Printf("     Current: %s\n", cfg.General.DefaultUser)
	fmt.Print("     > ")
	user, _ := reader.ReadString('\n')
	user = strings.TrimSpace(user)
	if user != "" {
		cfg.General.DefaultUser = user
	}
	fmt.Println()

	// 2. Data directory
	fmt.Println("  2. Data directory")
	fmt.Println("     Where the per-user expense files live.")
	fmt.Printf("     Current: %s\n", cfg.General.DataDir)
	fmt.Print("     > ")
	dir, _ := reader.ReadString('\n')
	dir = strings.TrimSpace(dir)
	if dir != "" {
		cfg.General.DataDir = dir
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `spendlog setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
