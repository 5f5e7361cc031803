package seed

import (
	"context"
	"fmt"
	"log/slog"
)

// Step is one unit of the setup sequence. Compensate undoes Run; steps with
// nothing to undo (verification, schema setup) leave it nil.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Runner executes steps in order. On failure it walks the steps that already
// succeeded in reverse and issues their compensations; a compensation that
// itself fails is logged and skipped so the remaining ones still run. The
// original step error is always returned to the caller.
type Runner struct {
	logger *slog.Logger
}

func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

func (r *Runner) Run(ctx context.Context, steps []Step) error {
	var done []Step

	for _, step := range steps {
		r.logger.Info("running step", "step", step.Name)

		if err := step.Run(ctx); err != nil {
			r.logger.Error("step failed, compensating", "step", step.Name, "error", err)
			r.rollback(ctx, done)
			return fmt.Errorf("seed: step %q: %w", step.Name, err)
		}

		done = append(done, step)
	}

	return nil
}

func (r *Runner) rollback(ctx context.Context, done []Step) {
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Compensate == nil {
			continue
		}

		r.logger.Info("compensating step", "step", step.Name)

		if err := step.Compensate(ctx); err != nil {
			r.logger.Error("compensation failed, skipping", "step", step.Name, "error", err)
		}
	}
}
