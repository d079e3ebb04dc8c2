// Package cli provides the command-line interface for bearlint.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/bearlint/internal/config"
	"github.com/leapstack-labs/bearlint/pkg/lint"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bearlint",
		Short: "bearlint - bug-likelihood checks for Python syntax trees",
		Long: `bearlint runs a set of bug-likelihood and compatibility checks over
Python syntax trees exported as JSON (ast2json layout). It does not parse
Python itself; pair it with any exporter that dumps the standard ast module's
tree shape.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: bearlint.yaml)")
	rootCmd.PersistentFlags().StringSlice("extend-select", nil, "force-enable rules disabled by default")
	rootCmd.PersistentFlags().StringSlice("extend-ignore", nil, "force-disable rules by code")
	rootCmd.PersistentFlags().Int("max-complexity", 0, "complexity threshold for C901 (0 disables)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose diagnostics on stderr")

	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewRulesCommand())

	return rootCmd
}

// Execute runs the root command and returns its exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// engineConfig resolves the effective engine configuration for a command,
// merging config file, environment and flags.
func engineConfig(cmd *cobra.Command) (*lint.Config, error) {
	fileCfg, _, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
	if err != nil {
		return nil, err
	}
	return fileCfg.ToLint()
}

// commandLogger builds the diagnostics logger for a command run.
func commandLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
