package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/3-lines-studio/bottletags/internal/core"
)

type BatchInput struct {
	NamesFile string
	Settings  core.RenderSettings
	// Workers above one renders several names at once. Main always
	// precedes schrift within a name.
	Workers int
}

type BatchOutput struct {
	RunID   string
	Names   []string
	Summary core.Summary
	Error   error
}

type BatchService struct {
	renderer Renderer
	fs       FileSystem
	cli      CLIOutput
	logger   *zap.Logger

	mu sync.Mutex
}

func NewBatchService(renderer Renderer, fs FileSystem, cli CLIOutput, logger *zap.Logger) *BatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchService{
		renderer: renderer,
		fs:       fs,
		cli:      cli,
		logger:   logger,
	}
}

func (s *BatchService) RenderBatch(ctx context.Context, input BatchInput) BatchOutput {
	runID := uuid.NewString()
	logger := s.logger.With(zap.String("run_id", runID))

	names, err := loadNames(s.fs, input.NamesFile)
	if err != nil {
		return BatchOutput{RunID: runID, Error: err}
	}

	if err := s.fs.MkdirAll(input.Settings.OutDir, 0755); err != nil {
		return BatchOutput{
			RunID: runID,
			Names: names,
			Error: fmt.Errorf("failed to create output dir: %w", err),
		}
	}

	workers := input.Workers
	if workers < 1 {
		workers = 1
	}

	jobs := core.NewJobs(names)
	logger.Info("starting batch",
		zap.String("names_file", input.NamesFile),
		zap.Int("names", len(jobs)),
		zap.Int("workers", workers),
	)

	results := make([]core.InvocationResult, len(jobs)*len(core.Variants))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, job := range jobs {
		if err := gctx.Err(); err != nil {
			skipJob(input.Settings, job, err, results)
			continue
		}
		g.Go(func() error {
			s.renderJob(gctx, logger, input.Settings, job, results)
			return nil
		})
	}
	_ = g.Wait()

	summary := core.Summarize(len(jobs), results)
	logger.Info("batch finished",
		zap.Int("invocations", summary.Invocations),
		zap.Int("failures", summary.Failures),
	)

	return BatchOutput{
		RunID:   runID,
		Names:   names,
		Summary: summary,
	}
}

// renderJob runs both variants of a job and stores them at the job's slots.
func (s *BatchService) renderJob(ctx context.Context, logger *zap.Logger, settings core.RenderSettings, job core.Job, results []core.InvocationResult) {
	if err := ctx.Err(); err != nil {
		skipJob(settings, job, err, results)
		return
	}

	s.print(func() { s.cli.PrintStep("Creating %s", job.Name) })
	logger.Debug("rendering name",
		zap.String("name", job.Name),
		zap.Int("index", job.Index),
		zap.Bool("needs_offset", job.NeedsOffset),
		zap.Bool("has_ascender", core.HasAscender(job.Name)),
	)

	for i, variant := range core.Variants {
		inv := core.BuildInvocation(settings, job, variant)
		result := s.renderer.Render(ctx, inv)
		results[job.Index*len(core.Variants)+i] = result

		if !result.Failed() {
			continue
		}
		err := result.Error()
		logger.Warn("render failed",
			zap.String("name", job.Name),
			zap.Stringer("variant", variant),
			zap.Int("exit_code", result.ExitCode),
			zap.Error(err),
		)
		s.print(func() { s.cli.PrintWarning("%v", err) })
	}
}

// skipJob records both variants of a job as skipped without rendering them.
func skipJob(settings core.RenderSettings, job core.Job, err error, results []core.InvocationResult) {
	for i, variant := range core.Variants {
		results[job.Index*len(core.Variants)+i] = core.InvocationResult{
			Invocation: core.BuildInvocation(settings, job, variant),
			Err:        err,
			Skipped:    true,
		}
	}
}

func (s *BatchService) print(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}
