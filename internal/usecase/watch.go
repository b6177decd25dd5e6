package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const DefaultDebounce = 300 * time.Millisecond

type WatchInput struct {
	Batch    BatchInput
	Debounce time.Duration
	// OnBatch receives every finished batch, the initial one included.
	OnBatch func(BatchOutput)
}

type WatchService struct {
	batch  *BatchService
	logger *zap.Logger
}

func NewWatchService(batch *BatchService, logger *zap.Logger) *WatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WatchService{
		batch:  batch,
		logger: logger,
	}
}

// Watch renders once, then again after every change to the names file,
// until ctx is done. The parent directory is watched so editors that
// replace the file on save are still noticed.
func (s *WatchService) Watch(ctx context.Context, input WatchInput) error {
	debounce := input.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	target, err := filepath.Abs(input.Batch.NamesFile)
	if err != nil {
		return fmt.Errorf("failed to resolve names file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	s.run(ctx, input)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.logger.Debug("names file changed", zap.String("op", event.Op.String()))
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			s.run(ctx, input)
		}
	}
}

func (s *WatchService) run(ctx context.Context, input WatchInput) {
	output := s.batch.RenderBatch(ctx, input.Batch)
	if output.Error != nil {
		s.logger.Error("batch failed", zap.Error(output.Error))
	}
	if input.OnBatch != nil {
		input.OnBatch(output)
	}
}
