// Command shrdlite is the CLI front end for the blocks-world planner: it
// reads a world snapshot and one or more candidate parse trees, runs the
// Interpreter/Planner/Renderer pipeline once per parse, and prints the
// resulting action stream (spec.md §6, §2's process boundary).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shrdlite/internal/config"
	"shrdlite/internal/logging"
)

var (
	verbose    bool
	configPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shrdlite",
	Short: "Shrdlite - a natural-language blocks-world planner",
	Long: `shrdlite resolves referring expressions against a blocks-world
snapshot, compiles a parsed command into a goal formula, searches for a
cost-optimal sequence of arm moves that satisfies it, and renders that
sequence as primitive actions interleaved with human-readable utterances.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if cfg, err := config.Load(configPath); err == nil {
			level = cfg.Logging.Level
		}
		lg, err := logging.New(level, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = lg
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "raise logging to debug level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config overriding cost/timeout defaults")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)
}

// version is overwritten at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shrdlite version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(version)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseTimeout turns a --timeout seconds flag into a time.Duration,
// defaulting to 0 (meaning "use the config/compiled-in default") when unset.
func parseTimeout(seconds float64) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}
