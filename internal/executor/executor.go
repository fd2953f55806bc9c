// Package executor runs an ordered load plan against the external importer,
// one JVM invocation at a time. Later steps depend on data committed by
// earlier ones, so there is no concurrency and no retry: the first non-zero
// exit abandons the remaining plan.
package executor

import (
	"context"
	"fmt"

	"github.com/vk/studyloadgo/internal/ctxlog"
	"github.com/vk/studyloadgo/internal/plan"
)

// Executor drives a plan through a Runner with a fixed argument prefix.
type Executor struct {
	runner Runner
	prefix []string
}

// New creates an Executor. The prefix is prepended to every step's arguments
// (profile selector, classpath, jar location).
func New(runner Runner, prefix []string) *Executor {
	return &Executor{runner: runner, prefix: prefix}
}

// Run executes the plan's steps strictly in order, blocking on each until the
// external program exits. On the first failure the remaining plan is
// abandoned; effects of already-completed steps stand.
func (e *Executor) Run(ctx context.Context, p *plan.Plan) error {
	logger := ctxlog.FromContext(ctx)

	for i, step := range p.Steps {
		stepLogger := logger.With("step", i+1, "of", len(p.Steps), "entryPoint", step.EntryPoint)
		stepLogger.Info("▶️ Starting import step")

		args := make([]string, 0, len(e.prefix)+1+len(step.Args))
		args = append(args, e.prefix...)
		args = append(args, step.EntryPoint)
		args = append(args, step.Args...)

		if err := e.runner.Run(ctx, args...); err != nil {
			stepLogger.Error("Import step failed, abandoning remaining plan.", "error", err)
			return fmt.Errorf("step %d of %d (%s) failed: %w", i+1, len(p.Steps), step.EntryPoint, err)
		}
		stepLogger.Info("✅ Finished import step")
	}
	return nil
}
