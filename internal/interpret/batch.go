package interpret

import (
	"go.uber.org/multierr"

	"shrdlite/internal/dnf"
	"shrdlite/internal/world"
)

// InterpretAll runs Interpret over every candidate parse and accumulates
// the results, implementing the batch semantics of spec.md §7: if at least
// one parse yields an interpretation, every error is silently dropped;
// otherwise the first error encountered is reported.
func InterpretAll(cmds []Command, snap world.Snapshot) ([]dnf.Formula, error) {
	var results []dnf.Formula
	var errs error
	for _, cmd := range cmds {
		f, err := Interpret(cmd, snap)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		results = append(results, f)
	}
	if len(results) > 0 {
		return results, nil
	}
	if errs != nil {
		return nil, multierr.Errors(errs)[0]
	}
	return nil, nil
}
