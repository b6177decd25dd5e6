package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/3-lines-studio/bottletags/internal/adapters/fs"
	"github.com/3-lines-studio/bottletags/internal/usecase"
)

func watchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Render, then render again whenever the names file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.output.PrintHeader("Bottle Tags (watching " + a.cfg.Names + ")")

			batch := usecase.NewBatchService(a.newRenderer(), fs.NewOSFileSystem(), a.output, a.logger)
			watcher := usecase.NewWatchService(batch, a.logger)

			return watcher.Watch(cmd.Context(), usecase.WatchInput{
				Batch:    a.batchInput(),
				Debounce: a.cfg.Watch.Debounce,
				OnBatch: func(result usecase.BatchOutput) {
					if result.Error != nil {
						a.output.PrintError("%v", result.Error)
						return
					}
					if err := a.report(result); err != nil {
						a.logger.Debug("batch had failures", zap.String("run_id", result.RunID))
					}
				},
			})
		},
	}
}
