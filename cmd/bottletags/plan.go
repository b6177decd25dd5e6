package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/bottletags/internal/adapters/fs"
	"github.com/3-lines-studio/bottletags/internal/core"
	"github.com/3-lines-studio/bottletags/internal/usecase"
)

type planDocument struct {
	Binary      string      `yaml:"binary"`
	Model       string      `yaml:"model"`
	Names       int         `yaml:"names"`
	Invocations []planEntry `yaml:"invocations"`
}

type planEntry struct {
	Index       int          `yaml:"index"`
	Name        string       `yaml:"name"`
	Variant     core.Variant `yaml:"variant"`
	NeedsOffset bool         `yaml:"needs_offset"`
	Output      string       `yaml:"output"`
	Command     []string     `yaml:"command,flow"`
}

func planCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print every renderer call as YAML without running it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := a.cfg.RenderSettings()

			result := usecase.NewPlanService(fs.NewOSFileSystem()).Plan(usecase.PlanInput{
				NamesFile: a.cfg.Names,
				Settings:  settings,
			})
			if result.Error != nil {
				return result.Error
			}

			doc := planDocument{
				Binary:      settings.Binary,
				Model:       settings.Model,
				Names:       len(result.Jobs),
				Invocations: make([]planEntry, 0, len(result.Invocations)),
			}
			for _, inv := range result.Invocations {
				doc.Invocations = append(doc.Invocations, planEntry{
					Index:       inv.Job.Index,
					Name:        inv.Job.Name,
					Variant:     inv.Variant,
					NeedsOffset: inv.Job.NeedsOffset,
					Output:      inv.OutputPath,
					Command:     inv.Command(settings.Binary),
				})
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("failed to encode plan: %w", err)
			}
			return encoder.Close()
		},
	}
}
