package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shrdlite/internal/config"
	"shrdlite/internal/interpret"
	"shrdlite/internal/plan"
	"shrdlite/internal/world"
)

var (
	worldPath   string
	commandPath string
	timeoutSecs float64
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan and render an action stream for one or more candidate parses",
	Long: `Reads a world snapshot and one or more candidate parse trees (a single
JSON object or a JSON array), interprets and plans each candidate, and
prints the resulting action stream of the first interpretation that
produced a plan. If every candidate fails to interpret or plan, the first
error encountered is reported (spec.md §6.3, §7 batch semantics).`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&worldPath, "world", "", "path to the world snapshot JSON (required)")
	planCmd.Flags().StringVar(&commandPath, "command", "", "path to the parse tree JSON, or '-' for stdin (required)")
	planCmd.Flags().Float64Var(&timeoutSecs, "timeout", 0, "search wall-clock timeout in seconds (overrides config)")
	_ = planCmd.MarkFlagRequired("world")
	_ = planCmd.MarkFlagRequired("command")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	snap, err := readWorld(worldPath)
	if err != nil {
		return err
	}
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("invalid world: %w", err)
	}

	cmds, err := readCommands(commandPath)
	if err != nil {
		return err
	}

	opts := plan.Options{
		Costs:   cfg.CostModel(),
		Timeout: cfg.Timeout(),
		Logger:  logger,
	}
	if timeoutSecs > 0 {
		opts.Timeout = parseTimeout(timeoutSecs)
	}

	outcomes, err := plan.Run(cmds, snap, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return err
	}
	if len(outcomes) == 0 {
		return fmt.Errorf("no commands given")
	}

	for _, tok := range outcomes[0].Tokens {
		fmt.Println(tok)
	}
	return nil
}

func readWorld(path string) (world.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return world.Snapshot{}, fmt.Errorf("reading world file: %w", err)
	}
	var snap world.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return world.Snapshot{}, fmt.Errorf("parsing world JSON: %w", err)
	}
	return snap, nil
}

// readCommands reads either a single parse-tree JSON object or a JSON array
// of them from path (or stdin when path is "-"), per spec.md §6.1's "a
// request file may contain either a single parse tree or an array".
func readCommands(path string) ([]interpret.Command, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading command file: %w", err)
	}

	var cmds []interpret.Command
	if err := json.Unmarshal(data, &cmds); err == nil {
		return cmds, nil
	}

	var single interpret.Command
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("parsing command JSON: %w", err)
	}
	return []interpret.Command{single}, nil
}
