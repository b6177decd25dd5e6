package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/bottletags/internal/adapters/fs"
	"github.com/3-lines-studio/bottletags/internal/templates"
	"github.com/3-lines-studio/bottletags/internal/usecase"
)

func initCmd(a *app) *cobra.Command {
	var (
		force        bool
		templateName string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter config and name list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir := "."
			if len(args) > 0 {
				projectDir = args[0]
			}

			absProjectDir, err := filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("failed to resolve project directory: %w", err)
			}

			service := usecase.NewInitService(fs.NewOSFileSystem(), a.output)
			result := service.InitProject(usecase.InitInput{
				ProjectDir: absProjectDir,
				Template:   templateName,
				NamesFile:  filepath.Base(a.cfg.Names),
				Model:      a.cfg.Model,
				Force:      force,
			})
			return result.Error
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	cmd.Flags().StringVar(&templateName, "template", "starter",
		"template to use ("+strings.Join(templates.ValidTemplates(), ", ")+")")

	return cmd
}
