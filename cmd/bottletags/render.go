package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/bottletags/internal/adapters/cli"
	"github.com/3-lines-studio/bottletags/internal/adapters/fs"
	"github.com/3-lines-studio/bottletags/internal/adapters/process"
	"github.com/3-lines-studio/bottletags/internal/usecase"
)

func renderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render both STL files for every name",
		Args:  cobra.NoArgs,
		RunE:  a.runRender,
	}
}

func (a *app) newRenderer() *process.Renderer {
	return process.NewRenderer(
		a.cfg.Binary,
		process.WithTimeout(a.cfg.Timeout),
		process.WithLogger(a.logger),
	)
}

func (a *app) batchInput() usecase.BatchInput {
	return usecase.BatchInput{
		NamesFile: a.cfg.Names,
		Settings:  a.cfg.RenderSettings(),
		Workers:   a.cfg.Workers,
	}
}

func (a *app) runRender(cmd *cobra.Command, args []string) error {
	a.output.PrintHeader("Bottle Tags")

	renderer := a.newRenderer()
	if _, err := renderer.Resolve(); err != nil {
		a.output.PrintWarning("%v", err)
	}

	service := usecase.NewBatchService(renderer, fs.NewOSFileSystem(), a.output, a.logger)
	result := service.RenderBatch(cmd.Context(), a.batchInput())
	if result.Error != nil {
		return result.Error
	}

	return a.report(result)
}

func (a *app) report(result usecase.BatchOutput) error {
	report := cli.NewBatchReport(a.output, a.output.Writer(), a.cfg.Out)
	report.Record(result.Summary)
	report.Render()

	if report.HasFailures() {
		return errRendersFailed
	}
	return nil
}
