package app

import (
	"context"
	"fmt"

	"github.com/vk/studyloadgo/internal/ctxlog"
	"github.com/vk/studyloadgo/internal/executor"
	"github.com/vk/studyloadgo/internal/fsutil"
	"github.com/vk/studyloadgo/internal/plan"
	"github.com/vk/studyloadgo/internal/study"
)

// Run executes the pipeline: build the plan for the selected mode, locate the
// importer jar, then drive the external program through the ordered steps.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	loadPlan, err := a.buildPlan(ctx)
	if err != nil {
		return err
	}

	jarPath, err := executor.LocateJar(a.settings.JarPath, a.settings.PortalHome)
	if err != nil {
		return err
	}
	a.logger.Debug("Importer jar located.", "jar", jarPath)

	prefix := executor.ArgPrefix(a.settings.SpringProfile, a.settings.PropertiesPath, jarPath)

	a.logger.Info("🚀 Starting study import.", "steps", len(loadPlan.Steps))
	exec := executor.New(a.runner, prefix)
	if err := exec.Run(ctx, loadPlan); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	a.logger.Info("🏁 Study import finished.")

	a.logger.Debug("App.Run method finished.")
	return nil
}

// buildPlan is the load-mode selector: which directory argument was supplied
// decides the mode, and nothing downstream re-derives it.
func (a *App) buildPlan(ctx context.Context) (*plan.Plan, error) {
	switch {
	case a.opts.RemoveStudy != "":
		studyID, err := a.resolveStudyID(ctx, a.opts.RemoveStudy)
		if err != nil {
			return nil, err
		}
		a.logger.Info("Planning study removal.", "studyId", studyID)
		return plan.Removal(studyID), nil

	case a.opts.StudyDirectory != "":
		a.logger.Info("Planning full study load.", "dir", a.opts.StudyDirectory)
		inv, err := study.Classify(ctx, a.opts.StudyDirectory)
		if err != nil {
			return nil, err
		}
		return plan.Build(ctx, inv, plan.FullLoad)

	default:
		a.logger.Info("Planning incremental load.", "dir", a.opts.DataDirectory)
		inv, err := study.Classify(ctx, a.opts.DataDirectory)
		if err != nil {
			return nil, err
		}
		return plan.Build(ctx, inv, plan.IncrementalLoad)
	}
}

// resolveStudyID accepts either a literal study id or a study directory whose
// meta_study.txt names the id.
func (a *App) resolveStudyID(ctx context.Context, arg string) (string, error) {
	if !fsutil.IsDir(arg) {
		return arg, nil
	}
	inv, err := study.Classify(ctx, arg)
	if err != nil {
		return "", err
	}
	if inv.StudyID == "" {
		return "", fmt.Errorf("directory %s holds no meta_study.txt to name the study to remove", arg)
	}
	return inv.StudyID, nil
}
