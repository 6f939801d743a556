package diagnose

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

// Service runs the checks against a target project and hands the finished
// report to its sinks.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Checks         []ports.Check
	Sinks          []ports.ReportSink
	Logger         ports.Logger
	Progress       ports.ProgressReporter
}

// StepSolutions is the progress step name for solution derivation.
const StepSolutions = "solutions"

// Run diagnoses the project at basePath. The returned error is reserved for
// setup failures (configuration, path resolution); once checks start, Run
// always returns the report accumulated so far, partial or not.
func (s *Service) Run(ctx context.Context, basePath string, extraSinks ...ports.ReportSink) (*domain.Report, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", basePath, err)
	}

	report := domain.NewReport(abs)
	report.RunID = uuid.NewString()
	fields := map[string]interface{}{"run_id": report.RunID, "base_path": abs}
	s.Logger.Debug("diagnostic started", fields)
	progress := s.progress()
	progress.RunStarted(abs)

	s.runChecks(ctx, cfg, report)
	progress.StepStarted(StepSolutions)
	report.Solutions = DeriveSolutions(report.Issues, cfg.Layout)
	progress.StepFinished(StepSolutions)

	sinks := append(append([]ports.ReportSink{}, s.Sinks...), extraSinks...)
	s.publish(context.WithoutCancel(ctx), report, sinks)

	s.Logger.Debug("diagnostic finished", map[string]interface{}{
		"run_id":   report.RunID,
		"issues":   len(report.Issues),
		"warnings": len(report.Warnings),
		"info":     len(report.Info),
		"partial":  report.Partial,
	})
	return report, nil
}

// runChecks is the failure boundary of a run. Cancellation is honoured
// between checks; a panic stops the remaining checks and is logged with its
// stack, never recorded as a finding.
func (s *Service) runChecks(ctx context.Context, cfg domain.Config, report *domain.Report) {
	defer func() {
		if r := recover(); r != nil {
			report.Partial = true
			s.Logger.Error("unexpected error during diagnostic", fmt.Errorf("%v", r), map[string]interface{}{
				"run_id": report.RunID,
				"stack":  string(debug.Stack()),
			})
		}
	}()

	for _, check := range s.Checks {
		if err := ctx.Err(); err != nil {
			report.Partial = true
			s.Logger.Warn("diagnostic interrupted", map[string]interface{}{
				"run_id":     report.RunID,
				"next_check": check.Name(),
			})
			return
		}
		s.Logger.Debug("running check", map[string]interface{}{"run_id": report.RunID, "check": check.Name()})
		s.runCheck(ctx, cfg, report, check)
	}
}

// runCheck brackets one check with progress events; the finish event fires
// even when the check panics.
func (s *Service) runCheck(ctx context.Context, cfg domain.Config, report *domain.Report, check ports.Check) {
	progress := s.progress()
	progress.StepStarted(check.Name())
	defer progress.StepFinished(check.Name())
	check.Run(ctx, cfg, report)
}

func (s *Service) progress() ports.ProgressReporter {
	if s.Progress == nil {
		return noProgress{}
	}
	return s.Progress
}

type noProgress struct{}

func (noProgress) RunStarted(string)   {}
func (noProgress) StepStarted(string)  {}
func (noProgress) StepFinished(string) {}

// publish delivers the report to every sink. A failing sink is reported on
// the operator channel and does not stop the others.
func (s *Service) publish(ctx context.Context, report *domain.Report, sinks []ports.ReportSink) {
	for _, sink := range sinks {
		if err := publishOne(ctx, sink, report); err != nil {
			s.Logger.Error("could not publish report", err, map[string]interface{}{
				"run_id": report.RunID,
				"sink":   sink.Name(),
			})
		}
	}
}

func publishOne(ctx context.Context, sink ports.ReportSink, report *domain.Report) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sink panicked: %v", r)
		}
	}()
	return sink.Publish(ctx, report)
}
