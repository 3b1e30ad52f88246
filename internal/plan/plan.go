// Package plan orchestrates the full pipeline of spec.md §2: one or more
// parse trees plus a world snapshot go in, the rendered action stream comes
// out, applying the batch semantics of spec.md §6.3/§7 across every
// candidate parse.
package plan

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"shrdlite/internal/interpret"
	"shrdlite/internal/planner"
	"shrdlite/internal/render"
	"shrdlite/internal/world"
)

// Options configures one Run call; zero-value Options uses spec.md's
// compiled-in defaults.
type Options struct {
	Costs   planner.CostModel
	Timeout time.Duration
	Logger  *zap.Logger // defaults to a no-op logger when nil
}

// DefaultOptions returns the cost model and timeout spec.md §4.2/§4.3 name.
func DefaultOptions() Options {
	return Options{Costs: planner.DefaultCostModel(), Timeout: 60 * time.Second, Logger: zap.NewNop()}
}

// Outcome is one candidate parse's fully-rendered result.
type Outcome struct {
	Tokens []string
	Result planner.Result
}

// Run interprets every candidate parse against snap, plans each successful
// interpretation in turn, and returns every outcome that produced a
// plan — empty or rendered — stopping at the first one a caller wants to
// use is the CLI's decision, not this package's (spec.md §6.3: "the
// pipeline returns every successful interpretation"). Only when nothing
// interprets or nothing plans is the first error surfaced.
func Run(cmds []interpret.Command, snap world.Snapshot, opts Options) ([]Outcome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Costs == (planner.CostModel{}) {
		opts.Costs = planner.DefaultCostModel()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	formulas, err := interpret.InterpretAll(cmds, snap)
	if err != nil {
		logger.Info("no interpretation", zap.Int("parses", len(cmds)), zap.Error(err))
		return nil, err
	}

	var outcomes []Outcome
	var errs error
	for _, f := range formulas {
		res, err := planner.Plan(snap, f, opts.Costs, opts.Timeout)
		if err != nil {
			if pe, ok := err.(*planner.Error); ok && pe.Kind == planner.KindAlreadyTrue {
				logger.Info("goal already satisfied")
				outcomes = append(outcomes, Outcome{Tokens: []string{render.AlreadyTrue}})
				continue
			}
			logger.Info("interpretation discarded", zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		logger.Info("plan found",
			zap.Int("states_examined", res.Examined),
			zap.Float64("cost", res.Cost),
			zap.Int("actions", len(res.Actions)))
		tokens := render.Render(snap.Objects, res.Actions, res.States)
		outcomes = append(outcomes, Outcome{Tokens: tokens, Result: res})
	}

	if len(outcomes) > 0 {
		return outcomes, nil
	}
	if errs != nil {
		logger.Info("no plan found for any interpretation", zap.Error(errs))
		return nil, multierr.Errors(errs)[0]
	}
	return nil, nil
}
